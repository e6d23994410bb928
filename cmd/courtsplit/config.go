package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the tool's settings, read from the environment. A local .env
// file is loaded first if present.
type Config struct {
	// DataPath is where the ledger lives: a database file for the sqlite
	// engine, a directory for the badger engine.
	DataPath string `envconfig:"COURTSPLIT_DATA" default:"./data/courtsplit.db"`

	// Engine selects the storage backend: "sqlite" or "badger".
	Engine string `envconfig:"COURTSPLIT_ENGINE" default:"sqlite"`

	// Currency is the prefix used when rendering amounts.
	Currency string `envconfig:"COURTSPLIT_CURRENCY" default:"S$"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"COURTSPLIT_LOG_LEVEL" default:"warn"`
}

func loadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}
