package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/flipdeck/internal/present"
)

func newRenderCmd() *cobra.Command {
	var (
		file   string
		index  int
		back   bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one face of one card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := present.ParseMode(output)
			if !ok {
				return fmt.Errorf("invalid --output %q (want pretty, plain, json or ndjson)", output)
			}
			d, err := loadDeck(cmd, file)
			if err != nil {
				return err
			}
			if !d.Seek(index - 1) {
				return fmt.Errorf("card %d out of range (deck has %d)", index, d.Len())
			}
			if back {
				d.Flip()
			}
			c, _ := d.Current()
			return present.RenderCard(cmd.OutOrStdout(), getApp(cmd).Renderer, c, d.Face(), present.Options{Mode: mode})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "deck JSON file (default: stdin)")
	cmd.Flags().IntVarP(&index, "index", "i", 1, "1-based card number")
	cmd.Flags().BoolVar(&back, "back", false, "render sideB instead of sideA")
	cmd.Flags().StringVarP(&output, "output", "o", "pretty", "output format: pretty|plain|json|ndjson")
	return cmd
}
