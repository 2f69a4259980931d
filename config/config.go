// Package config provides configuration types, defaults and loading for linedit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/linedit/input"
)

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// envPrefix namespaces environment overrides, e.g. LINEDIT_EDITOR_QUIT_TIMES
const envPrefix = "LINEDIT"

// Config holds all configuration options for linedit.
type Config struct {
	Backend string            `mapstructure:"backend"` // "ansi" (default) or "tcell"
	Editor  EditorConfig      `mapstructure:"editor"`
	UI      UIConfig          `mapstructure:"ui"`
	Log     LogConfig         `mapstructure:"log"`
	Keys    map[string]string `mapstructure:"keys"` // key name → action name overrides
}

// EditorConfig holds editing behavior options.
type EditorConfig struct {
	QuitTimes     int  `mapstructure:"quit_times"`     // Ctrl-Q presses to discard unsaved changes
	CreateMissing bool `mapstructure:"create_missing"` // Open a missing path as a new file
}

// UIConfig holds presentation options.
type UIConfig struct {
	Welcome   string `mapstructure:"welcome"` // "%s" is replaced with the version
	StatusBar bool   `mapstructure:"status_bar"`
	Filler    string `mapstructure:"filler"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Backend: BackendANSI,
		Editor: EditorConfig{
			QuitTimes:     3,
			CreateMissing: false,
		},
		UI: UIConfig{
			Welcome:   "linedit -- version %s",
			StatusBar: true,
			Filler:    "~",
		},
	}
}

// Load reads configuration from path, or from the default locations when path is empty
// A missing default config file is not an error; a missing explicit one is
func Load(path string) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("backend", d.Backend)
	v.SetDefault("editor.quit_times", d.Editor.QuitTimes)
	v.SetDefault("editor.create_missing", d.Editor.CreateMissing)
	v.SetDefault("ui.welcome", d.UI.Welcome)
	v.SetDefault("ui.status_bar", d.UI.StatusBar)
	v.SetDefault("ui.filler", d.UI.Filler)
	v.SetDefault("log.debug", d.Log.Debug)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}
	return cfg, nil
}

// searchDirs lists the default config directories, most specific first
func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "linedit"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "linedit"))
	}
	return dirs
}

// Validate checks option values and key bindings
func (c Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("backend: unknown %q (want %q or %q)", c.Backend, BackendANSI, BackendTcell)
	}
	if c.Editor.QuitTimes < 0 {
		return fmt.Errorf("editor.quit_times: must not be negative, got %d", c.Editor.QuitTimes)
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	return nil
}

// Keymap returns the default bindings with the [keys] overrides applied
func (c Config) Keymap() (input.Keymap, error) {
	override, err := input.ParseKeymap(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeymap(input.DefaultKeymap(), override), nil
}

// WelcomeText renders the banner for version
func (u UIConfig) WelcomeText(version string) string {
	if strings.Contains(u.Welcome, "%s") {
		return fmt.Sprintf(u.Welcome, version)
	}
	return u.Welcome
}
