package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	ioutils "github.com/handiism/define/internal/io"
)

// PathEnv overrides the config file location.
const PathEnv = "DEFINE_CONFIG"

// Settings holds all configuration options.
//
// Values come from the JSON config file; environment variables override
// them, and env-default fills fields the file leaves empty.
type Settings struct {
	// Wordnik
	APIKey  string `json:"api_key" env:"WORDNIK_API_KEY"`
	BaseURL string `json:"base_url" env:"DEFINE_BASE_URL" env-default:"https://api.wordnik.com/v4/word.json"`

	// Audio playback
	PlayerCommand          string `json:"player_command" env:"DEFINE_PLAYER" env-default:"mpg123 -q -"`
	PlaybackTimeoutSeconds int    `json:"playback_timeout_seconds" env:"DEFINE_PLAYBACK_TIMEOUT" env-default:"30"`

	// Logging
	LogLevel  string `json:"log_level" env:"DEFINE_LOG_LEVEL" env-default:"warn"`
	LogFormat string `json:"log_format" env:"DEFINE_LOG_FORMAT" env-default:"text"`
}

// DefaultSettings returns settings with default values and an empty API key.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:                "https://api.wordnik.com/v4/word.json",
		PlayerCommand:          "mpg123 -q -",
		PlaybackTimeoutSeconds: 30,
		LogLevel:               "warn",
		LogFormat:              "text",
	}
}

// DefaultPath returns the config file location: $DEFINE_CONFIG if set,
// otherwise define/config.json under the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(dir, "define", "config.json"), nil
}

// Load reads settings from a JSON file and the environment.
// Priority: ENV > file > defaults.
//
// A missing file is created with DefaultSettings so the user has something
// to edit.
func Load(path string) (*Settings, error) {
	exists, err := ioutils.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if !exists {
		if err := DefaultSettings().Save(path); err != nil {
			return nil, fmt.Errorf("config: create %s: %w", path, err)
		}
	}

	var s Settings
	if err := cleanenv.ReadConfig(path, &s); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &s, nil
}

// Save writes settings to a JSON file. The file is readable only by its
// owner since it holds the API key.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return ioutils.WriteFile(path, append(data, '\n'), 0o600)
}

// Validate checks that every field holds a usable value.
func (s *Settings) Validate() error {
	var errs []error
	if s.PlaybackTimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("playback_timeout_seconds must be positive, got %d", s.PlaybackTimeoutSeconds))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, s.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", s.LogLevel))
	}
	if !slices.Contains([]string{"text", "json"}, s.LogFormat) {
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", s.LogFormat))
	}
	return errors.Join(errs...)
}

// PlaybackTimeout returns the playback budget as a Duration.
func (s *Settings) PlaybackTimeout() time.Duration {
	return time.Duration(s.PlaybackTimeoutSeconds) * time.Second
}
