package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/flipdeck/internal/present"
)

func newExportCmd() *cobra.Command {
	var (
		file    string
		output  string
		headers bool
		shuffle bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a deck with assigned ids (plain|json|ndjson)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := present.ParseMode(output)
			if !ok || mode == present.ModePretty {
				return fmt.Errorf("invalid --output %q (want plain, json or ndjson)", output)
			}
			d, err := loadDeck(cmd, file)
			if err != nil {
				return err
			}
			if shuffle {
				d.Shuffle()
			}
			return present.RenderCards(cmd.OutOrStdout(), d.Cards(), present.Options{
				Mode:       mode,
				JSONIndent: true,
				Headers:    headers,
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "deck JSON file (default: stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: plain|json|ndjson")
	cmd.Flags().BoolVar(&headers, "headers", false, "print a header row (plain only)")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle before printing")
	return cmd
}
