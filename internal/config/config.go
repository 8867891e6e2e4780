/*
Package config loads optional shell settings from a YAML file.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/minish/internal/adapters/inputparsing"
	"gopkg.in/yaml.v3"
)

// FileInfo groups settings for the fi command.
type FileInfo struct {
	ShowSize     bool `yaml:"showSize"`
	ShowContents bool `yaml:"showContents"`
}

// Config holds every user-tunable setting. The zero value reproduces the
// default shell behavior.
type Config struct {
	// Prompt overrides the prompt when set. nil means "pick by terminal".
	Prompt   *string  `yaml:"prompt"`
	Split    string   `yaml:"split"`
	Color    bool     `yaml:"color"`
	LogLevel string   `yaml:"logLevel"`
	FileInfo FileInfo `yaml:"fileInfo"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Split: string(inputparsing.ModeSingle)}
}

// Load reads the YAML file at path. A missing or empty file yields Default().
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments decodes to EOF.
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := inputparsing.ParseMode(c.Split); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
