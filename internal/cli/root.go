package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/flipdeck/internal/config"
	"github.com/mithrel/flipdeck/internal/present/tui"
	"github.com/mithrel/flipdeck/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		file    string
		start   bool
	)

	cmd := &cobra.Command{
		Use:           "flipdeck",
		Short:         "Flashcards in your terminal",
		Long:          "Paste a JSON array of {\"sideA\", \"sideB\"} cards, then flip, step and shuffle through them.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, map[string]string{
				"style": config.KeyRenderStyle,
				"wrap":  config.KeyWordWrap,
				"seed":  config.KeyShuffleSeed,
			})
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app, ok := cmd.Context().Value(appKey).(*wire.App); ok {
				return app.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			in, err := readDeckInput(cmd, file)
			if err != nil {
				return err
			}
			if file != "" {
				app.Log.Printf("input from %s (%d bytes)", file, len(in.text))
			}
			return tui.Run(cmd.Context(), app.NewDeck(), app.Renderer, app.Log, tui.Options{
				Input:     in.text,
				Start:     start,
				AltScreen: app.Cfg.GetBool(config.KeyAltScreen),
				InputTTY:  in.piped,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")
	cmd.PersistentFlags().String("style", "", "glamour style for card text (overrides render.style)")
	cmd.PersistentFlags().Int("wrap", 0, "word wrap for card text (overrides render.word_wrap)")
	cmd.PersistentFlags().Int64("seed", 0, "shuffle seed (overrides shuffle.seed)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "pre-fill the input with this JSON file")
	cmd.Flags().BoolVar(&start, "start", false, "load the input immediately instead of waiting for ctrl+s")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
