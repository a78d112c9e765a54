// Package config loads horde world configuration from YAML files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plus3/spritehorde/horde"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// FileName is the name looked up in the user and local config directories.
const FileName = "horde.yaml"

// Default returns the embedded default configuration.
func Default() (horde.Config, error) {
	cfg := horde.DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return horde.Config{}, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load resolves and parses a configuration file.
// Search order: customPath -> ~/.spritehorde/horde.yaml -> ./configs/horde.yaml -> embedded default.
// Fields missing from the file keep their default values. The result is validated.
func Load(customPath string) (horde.Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		return cfg, path, err
	}

	cfg, err := Default()
	if err != nil {
		return cfg, "", err
	}
	return cfg, "", cfg.Validate()
}

// LoadFile parses the configuration at path on top of the defaults.
func LoadFile(path string) (horde.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return horde.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML data on top of the defaults and validates the result. name
// is only used in error messages.
func Parse(data []byte, name string) (horde.Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return horde.Config{}, fmt.Errorf("failed to parse config %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return horde.Config{}, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spritehorde", filename)
}
