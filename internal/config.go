package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/hbomb79/Marquee/internal/api"
	"github.com/hbomb79/Marquee/internal/auth"
	"github.com/hbomb79/Marquee/internal/broker"
	"github.com/hbomb79/Marquee/internal/database"
	"github.com/hbomb79/Marquee/internal/http/identity"
	"github.com/hbomb79/Marquee/internal/storage"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"
)

const DefaultConfigPath = "~/.config/marquee/config.yaml"

// MarqueeConfig is the struct used to contain the
// various user config supplied by file, environment, or
// manually inside the code.
type MarqueeConfig struct {
	Rest        api.RestConfig          `yaml:"rest"`
	Identity    identity.Config         `yaml:"identity"`
	Database    database.DatabaseConfig `yaml:"database"`
	Storage     storage.Config          `yaml:"storage"`
	Broker      broker.Config           `yaml:"broker"`
	Auth        auth.Config             `yaml:"auth"`
	FrontendURL string                  `yaml:"frontend_url" env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	LogLevel    string                  `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// LoadConfig populates the config from the YAML file at the path
// given (a leading '~' is expanded), with environment variables taking
// precedence. If the file does not exist, only the environment is used.
func LoadConfig(configPath string) (*MarqueeConfig, error) {
	config := &MarqueeConfig{}

	path, err := homedir.Expand(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %s: %w", configPath, err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Emit(logger.INFO, "No config file found at %s, reading configuration from environment\n", path)
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
	}

	return config, nil
}
