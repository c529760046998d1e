package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Storage selects the document store backing the workspace.
type Storage string

const (
	StorageFile     Storage = "file"
	StoragePostgres Storage = "postgres"
	StorageMemory   Storage = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	Environment        string  `validate:"required"`
	Port               string  `validate:"required"`
	Storage            Storage `validate:"required,oneof=file postgres memory"`
	DataFile           string  `validate:"required_if=Storage file"`
	DatabaseURL        string  `validate:"required_if=Storage postgres"`
	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables. Outside production it
// first attempts to load a .env file; a missing .env is not an error because
// production relies on system environment variables only.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		Storage:     Storage(os.Getenv("STORAGE")),
		DataFile:    os.Getenv("DATA_FILE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Storage == "" {
		cfg.Storage = StorageFile
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "data.json"
	}

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000,http://localhost:5173"
	}
	cfg.CORSAllowedOrigins = strings.Split(origins, ",")

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
