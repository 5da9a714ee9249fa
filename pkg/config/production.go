package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func loadProductionConfig(cfg *Config) error {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	if os.Getenv("OMDB_API_KEY") == "" {
		return errors.New("OMDB_API_KEY is required in production")
	}

	return nil
}
