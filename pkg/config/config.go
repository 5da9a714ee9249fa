package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/showscope/showscope/pkg/catalog"
	"github.com/showscope/showscope/pkg/omdb"
)

type Config struct {
	DetailConcurrency int
	Hostname          string
	OMDbAPIKey        string
	OMDbBaseURL       string
	RequestTimeout    time.Duration
	ServerHost        string
	ServerPort        int
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DetailConcurrency: catalog.DefaultDetailConcurrency,
		Hostname:          hostname,
		OMDbBaseURL:       omdb.DefaultBaseURL,
		RequestTimeout:    omdb.DefaultTimeout,
		ServerPort:        3720,
	}

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		if err := loadProductionConfig(cfg); err != nil {
			return nil, err
		}
	}

	loadOverrides(cfg)

	return cfg, nil
}

// loadOverrides applies env var overrides common to all environments.
func loadOverrides(cfg *Config) {
	if key := os.Getenv("OMDB_API_KEY"); key != "" {
		cfg.OMDbAPIKey = key
	}
	if base := os.Getenv("OMDB_BASE_URL"); base != "" {
		cfg.OMDbBaseURL = base
	}
}
