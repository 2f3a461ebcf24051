package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DataDir returns ~/.meteors, or "" when the home directory is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".meteors")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// Parse decodes YAML on top of the defaults, so partial files are allowed,
// and validates the result.
func Parse(data []byte) (MeteorsConfig, error) {
	cfg := DefaultMeteorsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadMeteors loads the meteors configuration.
// Search order: customPath -> ~/.meteors/configs/meteors.yaml -> ./configs/meteors.yaml -> embedded default
// Only a broken customPath is an error; other unusable files are skipped.
func LoadMeteors(customPath string) (MeteorsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMeteorsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultMeteorsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("meteors.yaml"),
		filepath.Join("configs", "meteors.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMeteorsYAML)
	if err != nil {
		return DefaultMeteorsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}
