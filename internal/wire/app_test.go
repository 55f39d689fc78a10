package wire

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/flipdeck/internal/config"
)

func newConfig(t *testing.T) *viper.Viper {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	v := viper.New()
	require.NoError(t, config.Load(context.Background(), v))
	return v
}

func TestBuildAppWritesLogFile(t *testing.T) {
	v := newConfig(t)
	logPath := filepath.Join(t.TempDir(), "logs", "flipdeck.log")
	v.Set(config.KeyLogFile, logPath)

	app, err := BuildApp(context.Background(), v)
	require.NoError(t, err)
	app.Log.Printf("hello")
	require.NoError(t, app.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "flipdeck ")
	require.Contains(t, string(data), "hello")
}

func TestBuildAppRejectsInvalidConfig(t *testing.T) {
	v := newConfig(t)
	v.Set(config.KeyWordWrap, -1)

	_, err := BuildApp(context.Background(), v)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid config")
}

func TestNewDeckUsesSeed(t *testing.T) {
	v := newConfig(t)
	v.Set(config.KeyShuffleSeed, 7)
	app, err := BuildApp(context.Background(), v)
	require.NoError(t, err)
	defer app.Close()

	raw := `[{"sideA":"1"},{"sideA":"2"},{"sideA":"3"},{"sideA":"4"},{"sideA":"5"},{"sideA":"6"},{"sideA":"7"},{"sideA":"8"}]`
	a, b := app.NewDeck(), app.NewDeck()
	require.NoError(t, a.Load(raw))
	require.NoError(t, b.Load(raw))
	a.Shuffle()
	b.Shuffle()
	require.Equal(t, a.Cards(), b.Cards())
}
