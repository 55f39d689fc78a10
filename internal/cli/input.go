package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mithrel/flipdeck/internal/deck"
)

type deckInput struct {
	text string
	// piped is set when the text came from a non-terminal stdin.
	piped bool
}

// readDeckInput reads deck text from file, or from stdin when it is not a terminal.
// With neither, the input is empty and the user pastes it in the viewer.
func readDeckInput(cmd *cobra.Command, file string) (deckInput, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return deckInput{}, fmt.Errorf("read deck: %w", err)
		}
		return deckInput{text: string(b)}, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return deckInput{}, nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return deckInput{}, fmt.Errorf("read stdin: %w", err)
	}
	return deckInput{text: string(b), piped: true}, nil
}

// loadDeck reads and parses deck input for the non-interactive commands.
func loadDeck(cmd *cobra.Command, file string) (*deck.Deck, error) {
	in, err := readDeckInput(cmd, file)
	if err != nil {
		return nil, err
	}
	d := getApp(cmd).NewDeck()
	if err := d.Load(in.text); err != nil {
		return nil, err
	}
	return d, nil
}
