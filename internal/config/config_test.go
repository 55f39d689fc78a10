package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	applyDefaults(v)

	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set(KeyRenderStyle, "sepia")
	v.Set(KeyWordWrap, 0)
	v.Set(KeyShuffleSeed, -3)

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}

	msg := err.Error()
	expected := []string{
		`render.style "sepia" is not a known style`,
		"render.word_wrap must be greater than 0",
		"shuffle.seed must not be negative",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg := filepath.Join(dir, "config.toml")
	content := "[render]\nstyle = \"ascii\"\nword_wrap = 50\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))
	t.Setenv("FLIPDECK_RENDER_WORD_WRAP", "33")

	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, Load(context.Background(), v))

	require.Equal(t, "ascii", v.GetString(KeyRenderStyle))
	require.Equal(t, 33, v.GetInt(KeyWordWrap))
	require.True(t, v.GetBool(KeyAltScreen))
	require.Equal(t, int64(0), v.GetInt64(KeyShuffleSeed))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, Load(context.Background(), v))
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	require.Equal(t, "dracula", v.GetString(KeyRenderStyle))
	require.Equal(t, 72, v.GetInt(KeyWordWrap))
	require.NoError(t, CheckConfigValidity(v))
}

func TestRenderDefaultTOMLRoundTrips(t *testing.T) {
	out := RenderDefaultTOML()
	require.Contains(t, out, "[render]")
	require.Contains(t, out, "style = \"dracula\"")

	cfg := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(out), 0o600))
	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, v.ReadInConfig())
	require.Equal(t, 72, v.GetInt(KeyWordWrap))
	require.Equal(t, true, v.GetBool(KeyAltScreen))
	require.Equal(t, "", v.GetString(KeyLogFile))
}
