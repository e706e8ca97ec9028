// Package config provides configuration loading for gosh using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Prompt settings
type Prompt struct {
	Text string `toml:"text"`
}

// History settings
type History struct {
	Circular bool `toml:"circular"` // wrap recall at the ends instead of clamping
	Limit    int  `toml:"limit"`    // max retained entries, 0 = unlimited
	Persist  bool `toml:"persist"`  // save history between sessions
}

// Config is the main configuration struct
type Config struct {
	Prompt  Prompt  `toml:"prompt"`
	History History `toml:"history"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Prompt: Prompt{
			Text: "> ",
		},
		History: History{
			Circular: true,
			Limit:    500,
			Persist:  true,
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gosh"), nil
}

// Path returns the path to the user's config file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil // Return defaults if we can't determine path
	}
	return loadFrom(path)
}

// loadFrom decodes the TOML file at path over the defaults, so any key
// the file doesn't set keeps its default value.
func loadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // Return defaults if no user config
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config from %s: %w", path, err)
	}
	return cfg, nil
}

// FormatError returns a hint shown alongside config load failures.
func FormatError(err error) string {
	path, perr := Path()
	if perr != nil {
		path = "~/.config/gosh/config.toml"
	}
	return fmt.Sprintf("Check %s for syntax errors, or delete it to start from defaults.", path)
}

// DefaultTOML returns the default configuration rendered as a TOML file.
// Generate with: gosh --init-config > ~/.config/gosh/config.toml
func DefaultTOML() string {
	return `# gosh configuration
# Save to ~/.config/gosh/config.toml and customize

[prompt]
# Text printed before every input line.
text = "> "

[history]
# Wrap up/down recall around the ends of the log instead of clamping.
circular = true

# Maximum number of retained entries (0 = unlimited).
limit = 500

# Save history to ~/.config/gosh/history.json between sessions.
persist = true
`
}
