// ABOUTME: StepUp configuration with XDG paths and a store factory.
// ABOUTME: Handles data directory override and the weekly goal setting.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stepup/internal/kv"
)

// DefaultWeeklyGoalMinutes is the weekly activity goal used when the
// config does not set one.
const DefaultWeeklyGoalMinutes = 150

// Config stores stepup tool configuration.
type Config struct {
	// DataDir is the root directory for the key-value store.
	// Supports ~ expansion. Defaults to ~/.local/share/stepup.
	DataDir string `json:"data_dir,omitempty"`

	// WeeklyGoalMinutes is the activity goal shown on the dashboard.
	WeeklyGoalMinutes int `json:"weekly_goal_minutes,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetWeeklyGoalMinutes returns the configured goal, defaulting when unset.
func (c *Config) GetWeeklyGoalMinutes() int {
	if c.WeeklyGoalMinutes <= 0 {
		return DefaultWeeklyGoalMinutes
	}
	return c.WeeklyGoalMinutes
}

// OpenStore opens the key-value store under the configured data directory.
func (c *Config) OpenStore() (*kv.BadgerStore, error) {
	store, err := kv.Open(filepath.Join(c.GetDataDir(), "kv"))
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}
	return store, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "stepup")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "stepup", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
