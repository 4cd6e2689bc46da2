package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/takak2166/notion-snippets/internal/apperror"
)

// Environment variables read by Load
const (
	EnvAPIKey          = "NOTION_API_KEY"
	EnvDatabaseID      = "SNIPPET_DATABASE_ID"
	EnvDefaultLanguage = "DEFAULT_LANGUAGE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFile         = "LOG_FILE"
)

// DatabaseIDLength is the length of a Notion database ID without dashes
const DatabaseIDLength = 32

// Config is read once at startup and passed to the components that need it.
// Nothing is validated here; the repository checks what each call needs.
type Config struct {
	APIKey          string
	DatabaseID      string
	DefaultLanguage string
	LogLevel        string
	LogFile         string
}

// Load reads envFile (when it exists) into the environment, then builds a
// Config from it. Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		APIKey:          strings.TrimSpace(os.Getenv(EnvAPIKey)),
		DatabaseID:      strings.TrimSpace(os.Getenv(EnvDatabaseID)),
		DefaultLanguage: os.Getenv(EnvDefaultLanguage),
		LogLevel:        os.Getenv(EnvLogLevel),
		LogFile:         os.Getenv(EnvLogFile),
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "javascript"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// CheckDatabase verifies the settings needed to read or write the snippet database
func (c *Config) CheckDatabase() error {
	if c.APIKey == "" || c.DatabaseID == "" {
		return apperror.Configuration(fmt.Sprintf("please configure %s and %s (see `snippets setup`)", EnvAPIKey, EnvDatabaseID))
	}
	if len(c.DatabaseID) != DatabaseIDLength {
		return apperror.Configuration(fmt.Sprintf("database ID must be exactly %d characters; use `snippets setup` to extract it from your database URL", DatabaseIDLength))
	}
	return nil
}

// CheckAPIKey verifies the settings needed to update a single page
func (c *Config) CheckAPIKey() error {
	if c.APIKey == "" {
		return apperror.Configuration(fmt.Sprintf("please configure %s", EnvAPIKey))
	}
	return nil
}
