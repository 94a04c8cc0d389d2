// Package config loads runtime settings from the environment and an
// optional .env file. Command-line flags override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/i18n"
	"github.com/abhisek/hangman/internal/llm"
	"github.com/abhisek/hangman/internal/vocab"
)

// Config holds all application configuration.
type Config struct {
	DBPath   string
	LogFile  string
	LogLevel string

	Language hangman.Language
	TimeMode hangman.TimeMode

	Words        vocab.Config
	FetchTimeout time.Duration
}

// Load reads .env files and then the environment. Variables already set
// in the environment win over .env values.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:   getEnv("HANGMAN_DB", ""),
		LogFile:  getEnv("HANGMAN_LOG_FILE", ""),
		LogLevel: getEnv("HANGMAN_LOG_LEVEL", "info"),
		Words: vocab.Config{
			Kind:   getEnv("HANGMAN_SOURCE", vocab.KindAPI),
			APIURL: getEnv("HANGMAN_API_URL", vocab.DefaultAPIURL),
			LLM:    llm.ConfigFromEnv(),
		},
		FetchTimeout: time.Duration(getEnvInt("HANGMAN_FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	cfg.Language = i18n.DetectEnv()
	if v := os.Getenv("HANGMAN_LANG"); v != "" {
		lang, err := hangman.ParseLanguage(v)
		if err != nil {
			return nil, fmt.Errorf("HANGMAN_LANG: %w", err)
		}
		cfg.Language = lang
	}

	mode, err := hangman.ParseTimeMode(getEnv("HANGMAN_MODE", string(hangman.TimeModeNormal)))
	if err != nil {
		return nil, fmt.Errorf("HANGMAN_MODE: %w", err)
	}
	cfg.TimeMode = mode

	return cfg, nil
}

// LoadDotEnv loads ./.env and then $XDG_CONFIG_HOME/hangman/.env. Missing
// files are skipped.
func LoadDotEnv() error {
	paths := []string{".env"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "hangman", ".env"))
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
