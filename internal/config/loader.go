package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from ~/.config/folio/config.yaml. A missing or
// invalid file yields the defaults.
func Load() Config {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(home, ".config", "folio", "config.yaml"))
	if err != nil {
		return cfg
	}

	parsed := cfg
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg
	}
	return parsed
}

// DataDir returns the directory for persistent state, ~/.local/share/folio.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "folio")
}
