// Package config loads the tasks configuration through viper.
//
// Values come, in order of precedence, from command-line flags bound
// by the cmd package, TASKS_* environment variables, a YAML config
// file, and the defaults registered by SetDefaultsOn.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete tasks configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig controls the terminal UI
type UIConfig struct {
	// Title is shown above the input row
	Title string `mapstructure:"title"`
	// Placeholder is shown in the empty input field
	Placeholder string `mapstructure:"placeholder"`
	// CharLimit caps the input length in runes (0 = unlimited)
	CharLimit int `mapstructure:"char_limit"`
	// AltScreen runs the UI in the terminal's alternate screen buffer
	AltScreen bool `mapstructure:"alt_screen"`
	// Mouse enables clicking the Add Task and Delete controls
	Mouse bool `mapstructure:"mouse"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Enabled turns on file logging. The terminal is owned by the UI,
	// so logs never go to stdout or stderr.
	Enabled bool `mapstructure:"enabled"`
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log file path (default: <config dir>/tasks.log)
	File string `mapstructure:"file"`
	// Console is the minimum level echoed to stderr while the UI is not
	// on screen, or "off"
	Console string `mapstructure:"console"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Title:       "Simple Todo App",
			Placeholder: "Enter a task",
			CharLimit:   0,
			AltScreen:   true,
			Mouse:       true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    filepath.Join(ConfigDir(), "tasks.log"),
			Console: "warn",
		},
	}
}

// SetDefaultsOn registers default values with v
func SetDefaultsOn(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("ui.title", defaults.UI.Title)
	v.SetDefault("ui.placeholder", defaults.UI.Placeholder)
	v.SetDefault("ui.char_limit", defaults.UI.CharLimit)
	v.SetDefault("ui.alt_screen", defaults.UI.AltScreen)
	v.SetDefault("ui.mouse", defaults.UI.Mouse)

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.console", defaults.Logging.Console)
}

// LoadFrom reads the configuration from v and validates it
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tasks")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tasks"
	}
	return filepath.Join(home, ".config", "tasks")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
