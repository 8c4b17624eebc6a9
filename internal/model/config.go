package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultChecklistTitle is the title of the daily checklist.
const DefaultChecklistTitle = "Modelo de Check-list Diário para Processos de Engenharia"

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DatabasePath locates the SQLite database file.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`

	// LogPath locates the application log file. The TUI owns stdout,
	// so diagnostics go to a file.
	LogPath string `mapstructure:"log_path" yaml:"log_path"`

	// Title overrides the checklist title shown in the header.
	Title string `mapstructure:"title" yaml:"title"`

	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// configDir returns the directory holding the config file, database,
// and log, located at ~/.config/checklist.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "checklist")
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/checklist/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		DatabasePath: filepath.Join(dir, "checklist.db"),
		LogPath:      filepath.Join(dir, "checklist.log"),
		Title:        DefaultChecklistTitle,
		Display: DisplayConfig{
			Theme: "default",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default
// configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := defaultAppConfig()
	v.SetDefault("database_path", defaults.DatabasePath)
	v.SetDefault("log_path", defaults.LogPath)
	v.SetDefault("title", defaults.Title)
	v.SetDefault("display.theme", defaults.Display.Theme)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database_path", cfg.DatabasePath)
	v.Set("log_path", cfg.LogPath)
	v.Set("title", cfg.Title)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
