package client

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID      `json:"id"`
		Email        string         `json:"email"`
		Phone        string         `json:"phone,omitempty"`
		NewEmail     string         `json:"new_email,omitempty"`
		UserMetadata map[string]any `json:"user_metadata"`
		CreatedAt    time.Time      `json:"created_at"`
	}

	// AuthSession holds the tokens issued by the identity provider.
	AuthSession struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
		ExpiresAt    int64  `json:"expires_at,omitempty"`
	}

	Profile struct {
		UserID      uuid.UUID `json:"user_id"`
		Email       *string   `json:"email"`
		FirstName   *string   `json:"first_name"`
		LastName    *string   `json:"last_name"`
		Phone       *string   `json:"phone"`
		ChannelName *string   `json:"channel_name"`
		Bio         *string   `json:"bio"`
		AvatarURL   *string   `json:"avatar_url"`
		Role        string    `json:"role"`
	}

	AuthResult struct {
		User    *User        `json:"user"`
		Session *AuthSession `json:"session"`
		Profile *Profile     `json:"profile,omitempty"`
	}

	UserProfile struct {
		User    *User    `json:"user"`
		Profile *Profile `json:"profile"`
	}

	SignupRequest struct {
		Email     string `json:"email"`
		Token     string `json:"token"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Phone     string `json:"phone"`
	}
)

// Wizard steps, as reported by the server in next_step.
const (
	StepDetails      = "details"
	StepMedia        = "media"
	StepMonetization = "monetization"
	StepPublish      = "publish"
	StepDone         = "done"
)

type (
	Video struct {
		ID          uuid.UUID  `json:"id"`
		OwnerID     uuid.UUID  `json:"owner_id"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Category    string     `json:"category"`
		Synopsis    *string    `json:"synopsis"`
		Visibility  string     `json:"visibility"`
		Is18Plus    bool       `json:"is_18_plus"`
		Rating      *string    `json:"rating"`
		TrailerPath *string    `json:"trailer_path"`
		VideoPath   *string    `json:"video_path"`
		Status      string     `json:"status"`
		PublishedAt *time.Time `json:"published_at"`
		NextStep    string     `json:"next_step"`
	}

	CrewMember struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}

	Caption struct {
		ID       uuid.UUID `json:"id"`
		Language string    `json:"language"`
		FileName string    `json:"file_name"`
		FilePath string    `json:"file_path"`
	}

	Artwork struct {
		ID        uuid.UUID `json:"id"`
		Width     int       `json:"width"`
		Height    int       `json:"height"`
		FilePath  string    `json:"file_path"`
		PublicURL *string   `json:"public_url"`
	}

	Monetization struct {
		ID               uuid.UUID `json:"id"`
		Type             string    `json:"type"`
		AdType           *string   `json:"ad_type"`
		AdDuration       *int      `json:"ad_duration"`
		SubscriptionType *string   `json:"subscription_type"`
	}

	Legal struct {
		Ownership   bool    `json:"ownership"`
		NoCopyright bool    `json:"no_copyright"`
		Consent     bool    `json:"consent"`
		FilePath    *string `json:"file_path"`
	}

	// VideoDetails is a video along with everything attached to it.
	VideoDetails struct {
		Video
		Genres       []string      `json:"genres"`
		Cast         []string      `json:"cast"`
		Crew         []CrewMember  `json:"crew"`
		Captions     []*Caption    `json:"captions"`
		Artworks     []*Artwork    `json:"artworks"`
		Monetization *Monetization `json:"monetization"`
		Legal        *Legal        `json:"legal"`
	}

	Basics struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Visibility  string  `json:"visibility,omitempty"`
		Is18Plus    bool    `json:"is_18_plus"`
		Rating      *string `json:"rating,omitempty"`
	}

	// CatalogLink places the video as an episode of a show season, or as a
	// track of an album.
	CatalogLink struct {
		ShowID        *uuid.UUID `json:"show_id,omitempty"`
		SeasonNumber  int        `json:"season_number,omitempty"`
		EpisodeNumber int        `json:"episode_number,omitempty"`
		AlbumID       *uuid.UUID `json:"album_id,omitempty"`
		TrackNumber   int        `json:"track_number,omitempty"`
	}

	Details struct {
		Synopsis *string      `json:"synopsis,omitempty"`
		Genres   []string     `json:"genres"`
		Cast     []string     `json:"cast"`
		Crew     []CrewMember `json:"crew"`
		Catalog  *CatalogLink `json:"catalog,omitempty"`
	}

	MonetizationRequest struct {
		Type             string  `json:"type"`
		AdType           *string `json:"ad_type,omitempty"`
		AdDuration       *int    `json:"ad_duration,omitempty"`
		SubscriptionType *string `json:"subscription_type,omitempty"`
	}
)
