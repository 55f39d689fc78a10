package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/flipdeck/internal/render"
)

// Keys used across the app.
const (
	KeyRenderStyle = "render.style"
	KeyWordWrap    = "render.word_wrap"
	KeyShuffleSeed = "shuffle.seed"
	KeyLogFile     = "log.file"
	KeyAltScreen   = "tui.alt_screen"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: KeyRenderStyle, Default: render.DefaultStyle, Comment: "Glamour style for card text (ascii, dark, dracula, light, notty, pink, tokyo-night)"},
		{Key: KeyWordWrap, Default: 72, Comment: "Maximum column width for rendered card text"},
		{Key: KeyShuffleSeed, Default: 0, Comment: "Seed for shuffle; 0 picks a new seed every run"},
		{Key: KeyLogFile, Default: "", Comment: "Append logs to this file; empty disables logging"},
		{Key: KeyAltScreen, Default: true, Comment: "Run the viewer in the terminal's alternate screen"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "flipdeck"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "flipdeck"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file on the search path is fine; a named file must exist and parse.
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: FLIPDECK_* (highest among these sources)
	v.SetEnvPrefix("flipdeck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.Set(KeyLogFile, expandHome(strings.TrimSpace(v.GetString(KeyLogFile))))
	return nil
}

// CheckConfigValidity reports every invalid option at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error
	if style := v.GetString(KeyRenderStyle); !render.ValidStyle(style) {
		errs = append(errs, fmt.Errorf("%s %q is not a known style", KeyRenderStyle, style))
	}
	if v.GetInt(KeyWordWrap) <= 0 {
		errs = append(errs, fmt.Errorf("%s must be greater than 0", KeyWordWrap))
	}
	if v.GetInt64(KeyShuffleSeed) < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyShuffleSeed))
	}
	return errors.Join(errs...)
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "flipdeck", "config.toml")
}

// Expand ~ for convenience
func expandHome(p string) string {
	if len(p) > 0 && p[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
