package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a deck and print its size and fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, file)
			if err != nil {
				return err
			}
			getApp(cmd).Log.Printf("check cards=%d fingerprint=%s", d.Len(), d.Fingerprint())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cards: %d\nfingerprint: %s\n", d.Len(), d.Fingerprint())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "deck JSON file (default: stdin)")
	return cmd
}
