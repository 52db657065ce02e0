package storage

import "fmt"

type (
	Buckets struct {
		Videos   string `yaml:"videos" env:"STORAGE_BUCKET_VIDEOS" env-default:"videos"`
		Trailers string `yaml:"trailers" env:"STORAGE_BUCKET_TRAILERS" env-default:"trailers"`
		Artworks string `yaml:"artworks" env:"STORAGE_BUCKET_ARTWORKS" env-default:"artworks"`
		Captions string `yaml:"captions" env:"STORAGE_BUCKET_CAPTIONS" env-default:"captions"`
		Legal    string `yaml:"legal" env:"STORAGE_BUCKET_LEGAL" env-default:"legal-docs"`
	}

	// Config describes how to reach the S3 compatible object store
	// which holds all uploaded media.
	Config struct {
		Endpoint  string `yaml:"endpoint" env:"STORAGE_ENDPOINT" env-default:"localhost:9000"`
		AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY" env-required:"true"`
		SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY" env-required:"true"`
		UseSSL    bool   `yaml:"use_ssl" env:"STORAGE_USE_SSL" env-default:"false"`
		Region    string `yaml:"region" env:"STORAGE_REGION"`

		// PublicURL is the base URL clients use to fetch objects. If empty,
		// a URL is derived from the endpoint.
		PublicURL string  `yaml:"public_url" env:"STORAGE_PUBLIC_URL"`
		Buckets   Buckets `yaml:"buckets"`
	}
)

func (b Buckets) All() []string {
	return []string{b.Videos, b.Trailers, b.Artworks, b.Captions, b.Legal}
}

// String omits the secret key so the config can be logged.
func (c Config) String() string {
	secret := ""
	if c.SecretKey != "" {
		secret = "[redacted]"
	}

	return fmt.Sprintf("{Endpoint:%s AccessKey:%s SecretKey:%s UseSSL:%t Region:%s PublicURL:%s Buckets:%+v}",
		c.Endpoint, c.AccessKey, secret, c.UseSSL, c.Region, c.PublicURL, c.Buckets)
}

func (c Config) GoString() string { return "storage.Config" + c.String() }
