package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"maxcolours/pkg/colourset"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/maxcolours"
	projectConfigDir = ".maxcolours"
	configFileName   = "config.yaml"
)

var validOutputs = []string{"table", "json", "yaml"}

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			// Optional layer; report and carry on
			fmt.Fprintf(os.Stderr, "Warning: Could not determine %s config path: %v\n", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		config = mergeConfigs(config, overlay)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfigFrom loads a single file over the built-in defaults.
func LoadConfigFrom(path string) (Config, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Defaults.Count != 0 {
		merged.Defaults.Count = overlay.Defaults.Count
	}
	if overlay.Defaults.Seed != "" {
		merged.Defaults.Seed = overlay.Defaults.Seed
	}
	if overlay.Defaults.Output != "" {
		merged.Defaults.Output = overlay.Defaults.Output
	}
	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}

// Validate checks values that would otherwise only fail at generation time.
func (c Config) Validate() error {
	if c.Defaults.Count < colourset.MinCount || c.Defaults.Count > colourset.MaxCount {
		return fmt.Errorf("invalid defaults.count %d: must be between %d and %d",
			c.Defaults.Count, colourset.MinCount, colourset.MaxCount)
	}
	if !contains(validOutputs, c.Defaults.Output) {
		return fmt.Errorf("invalid defaults.output %q: must be one of %s",
			c.Defaults.Output, strings.Join(validOutputs, ", "))
	}
	if c.Defaults.Seed != "" {
		if _, err := colourset.ParseHex(c.Defaults.Seed); err != nil {
			return fmt.Errorf("invalid defaults.seed: %w", err)
		}
	}
	if c.Update.Repository != "" && strings.Count(c.Update.Repository, "/") != 1 {
		return fmt.Errorf("invalid update.repository %q: want owner/name", c.Update.Repository)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
