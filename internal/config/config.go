// Package config loads growgroove settings with viper from a YAML file,
// GROWGROOVE_* environment variables and command line flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	constants "github.com/ImGajeed76/growgroove/internal"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	"github.com/spf13/viper"
)

// Config is the complete configuration.
type Config struct {
	UI      UIConfig               `mapstructure:"ui"`
	Themes  map[string]theme.Theme `mapstructure:"themes"`
	Logging LoggingConfig          `mapstructure:"logging"`
	Export  ExportConfig           `mapstructure:"export"`
	Publish PublishConfig          `mapstructure:"publish"`
}

// UIConfig controls the interactive site.
type UIConfig struct {
	// DefaultTab is the page shown when no tab is given or remembered.
	DefaultTab string `mapstructure:"default_tab"`
	Mouse      bool   `mapstructure:"mouse"`
	AltScreen  bool   `mapstructure:"alt_screen"`
	// RememberTab stores the last viewed tab in the system keyring.
	RememberTab bool `mapstructure:"remember_tab"`
}

// LoggingConfig controls the debug log. The terminal belongs to the UI, so
// logs only ever go to File.
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ExportConfig controls `growgroove print --markdown`.
type ExportConfig struct {
	Style string `mapstructure:"style"`
	Width int    `mapstructure:"width"`
}

// PublishConfig controls `growgroove publish`.
type PublishConfig struct {
	Encoding   string        `mapstructure:"encoding"`
	KnownHosts string        `mapstructure:"known_hosts"`
	KeyFile    string        `mapstructure:"key_file"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			DefaultTab:  tabs.About,
			Mouse:       true,
			AltScreen:   true,
			RememberTab: true,
		},
		Themes: map[string]theme.Theme{},
		Logging: LoggingConfig{
			File:  "",
			Level: "info",
		},
		Export: ExportConfig{
			Style: "auto",
			Width: 80,
		},
		Publish: PublishConfig{
			Encoding: "UTF-8",
			Timeout:  10 * time.Second,
		},
	}
}

// SetDefaults registers every default on v so they apply without a
// config file.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// UI defaults
	v.SetDefault("ui.default_tab", defaults.UI.DefaultTab)
	v.SetDefault("ui.mouse", defaults.UI.Mouse)
	v.SetDefault("ui.alt_screen", defaults.UI.AltScreen)
	v.SetDefault("ui.remember_tab", defaults.UI.RememberTab)

	// Logging defaults
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Export defaults
	v.SetDefault("export.style", defaults.Export.Style)
	v.SetDefault("export.width", defaults.Export.Width)

	// Publish defaults
	v.SetDefault("publish.encoding", defaults.Publish.Encoding)
	v.SetDefault("publish.known_hosts", defaults.Publish.KnownHosts)
	v.SetDefault("publish.key_file", defaults.Publish.KeyFile)
	v.SetDefault("publish.timeout", defaults.Publish.Timeout)
}

// Load reads v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return cfg, nil
}

// Registry returns the theme registry with the configured overrides.
func (c *Config) Registry() *theme.Registry {
	return theme.NewRegistry(c.Themes)
}

// ConfigDir returns the directory the config file is looked up in first.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.ServiceName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + constants.ServiceName
	}
	return filepath.Join(home, ".config", constants.ServiceName)
}

// ConfigFile returns the path of the default config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
