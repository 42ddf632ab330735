// Package config handles the orca configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all orca configuration.
type Config struct {
	Agency     AgencyConfig     `toml:"agency"`
	Export     ExportConfig     `toml:"export"`
	Appearance AppearanceConfig `toml:"appearance"`
	Defaults   DefaultsConfig   `toml:"defaults"`
}

// AgencyConfig holds the branding printed on proposals.
type AgencyConfig struct {
	Name    string `toml:"name"`
	Tagline string `toml:"tagline"`
}

// ExportConfig holds proposal export settings.
type ExportConfig struct {
	OutputDir string `toml:"output_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultsConfig overrides the per-agent unit prices seeded into fresh
// drafts. Existing drafts are never touched; the coupon table is not
// configurable.
type DefaultsConfig struct {
	ImplementationValue *float64 `toml:"implementation_value,omitempty"`
	MaintenanceValue    *float64 `toml:"maintenance_value,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Agency: AgencyConfig{
			Name:    "Agência Gand",
			Tagline: "Soluções em IA",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "orca")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "orca")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
