package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/config"
	"github.com/Rshep3087/fintui/dashboard"
)

const appName = "fintui"

// configFilePaths returns the places a config file is looked for, first
// found wins.
func configFilePaths() []string {
	paths := []string{appName + ".toml"}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, appName, "config.toml"))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, "."+appName+".toml"),
			filepath.Join(homeDir, ".config", appName, "config.toml"),
		)
	}

	return append(paths, filepath.Join("/etc", appName, "config.toml"))
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	for _, path := range configFilePaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// defaultConfigPath is where config init writes when no path is given.
func defaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, appName, "config.toml"), nil
}

func defaultConfig() config.Config {
	return config.Config{
		BaseURL:  api.DefaultBaseURL,
		Currency: dashboard.DefaultCurrency,
	}
}

func loadConfigFromFile(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse TOML config file %s: %w", path, err)
	}
	return cfg, nil
}

// writeConfigFile writes cfg as TOML. An existing file is only replaced when
// force is set.
func writeConfigFile(path string, cfg config.Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file %s: %w", path, err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// the file may hold a token
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
