// Package config reads the optional server configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server settings. Zero values mean "use the default".
type Config struct {
	Port       string `yaml:"port"`
	PresetsDir string `yaml:"presets_dir"`
	GinMode    string `yaml:"gin_mode"`
}

// Load reads path if it exists and applies defaults and the PORT
// environment override. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{Port: "8080"}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return cfg, nil
}
