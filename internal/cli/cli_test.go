package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/flipdeck/internal/deck"
)

const sampleDeck = `[{"id": 9, "sideA": "**Question 1**", "sideB": "Answer 1"}, {"sideA": "Q2", "sideB": "A2"}]`

// isolate points config discovery at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeDeck(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheckFromFile(t *testing.T) {
	dir := isolate(t)
	path := writeDeck(t, dir, sampleDeck)

	out, err := run(t, "", "check", "-f", path)
	require.NoError(t, err, out)

	cards, _ := deck.Parse(sampleDeck)
	require.Contains(t, out, "cards: 2")
	require.Contains(t, out, "fingerprint: "+deck.Fingerprint(cards))
}

func TestCheckFromStdin(t *testing.T) {
	isolate(t)
	out, err := run(t, sampleDeck, "check")
	require.NoError(t, err, out)
	require.Contains(t, out, "cards: 2")
}

func TestCheckRejectsBadInput(t *testing.T) {
	isolate(t)
	for _, raw := range []string{"not json", "{}", "[]"} {
		_, err := run(t, raw, "check")
		require.Error(t, err)
		require.ErrorIs(t, err, deck.ErrInputFormat)
	}
}

func TestExportAssignsIDs(t *testing.T) {
	isolate(t)
	out, err := run(t, sampleDeck, "export", "-o", "json")
	require.NoError(t, err, out)

	var cards []deck.Card
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	require.Len(t, cards, 2)
	require.Equal(t, 1, cards[0].ID)
	require.Equal(t, 2, cards[1].ID)
	require.Equal(t, "**Question 1**", cards[0].SideA)
}

func TestExportShuffleKeepsCards(t *testing.T) {
	isolate(t)
	out, err := run(t, sampleDeck, "--seed", "5", "export", "-o", "ndjson", "--shuffle")
	require.NoError(t, err, out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
}

func TestExportRejectsPretty(t *testing.T) {
	isolate(t)
	_, err := run(t, sampleDeck, "export", "-o", "pretty")
	require.Error(t, err)
}

func TestRenderBackFace(t *testing.T) {
	isolate(t)
	out, err := run(t, sampleDeck, "--style", "ascii", "render", "--index", "2", "--back")
	require.NoError(t, err, out)
	require.Contains(t, out, "A2")
	require.NotContains(t, out, "Q2")
}

func TestRenderStrongIsPlain(t *testing.T) {
	isolate(t)
	out, err := run(t, sampleDeck, "--style", "ascii", "render")
	require.NoError(t, err, out)
	require.Contains(t, out, "Question 1")
	require.NotContains(t, out, "**")
}

func TestRenderOutOfRange(t *testing.T) {
	isolate(t)
	_, err := run(t, sampleDeck, "render", "--index", "3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestInvalidStyleFlag(t *testing.T) {
	isolate(t)
	_, err := run(t, sampleDeck, "--style", "sepia", "check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "render.style")
}

func TestConfigGenerate(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "out", "config.toml")

	out, err := run(t, "", "config", "generate", "-o", target)
	require.NoError(t, err, out)
	require.Contains(t, out, "Wrote "+target)

	_, err = run(t, "", "config", "generate", "-o", target)
	require.Error(t, err)

	out, err = run(t, "", "config", "generate", "-o", target, "--overwrite")
	require.NoError(t, err, out)
	require.Contains(t, out, "Backup: "+target+".bak")

	// The generated file drives the next run.
	out, err = run(t, sampleDeck, "--config", target, "check")
	require.NoError(t, err, out)
}

func TestConfigFileSelectsStyle(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[render]\nstyle = \"ascii\"\n"), 0o600))

	out, err := run(t, sampleDeck, "--config", cfg, "render", "-o", "pretty")
	require.NoError(t, err, out)
	require.Contains(t, out, "Question 1")
	require.NotContains(t, out, "**")
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "completion", "generate", "bash")
	require.NoError(t, err)
	require.Contains(t, out, "flipdeck")
}
