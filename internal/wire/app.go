package wire

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mithrel/flipdeck/internal/config"
	"github.com/mithrel/flipdeck/internal/deck"
	"github.com/mithrel/flipdeck/internal/render"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg      *viper.Viper
	Log      *log.Logger
	Renderer *render.Renderer

	logFile io.Closer
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	r, err := render.New(v.GetString(config.KeyRenderStyle), v.GetInt(config.KeyWordWrap))
	if err != nil {
		return nil, err
	}
	app := &App{Cfg: v, Renderer: r}

	var out io.Writer = io.Discard
	if path := v.GetString(config.KeyLogFile); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		app.logFile = f
	}
	app.Log = log.New(out, "flipdeck ", log.LstdFlags)
	return app, nil
}

// NewDeck returns an empty deck seeded from shuffle.seed.
func (a *App) NewDeck() *deck.Deck {
	return deck.NewSeeded(a.Cfg.GetInt64(config.KeyShuffleSeed))
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}
