package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDraftPathUsesRuntimeDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	path, err := DraftPath()
	if err != nil {
		t.Fatalf("DraftPath error: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(dir, "flipdeck")) {
		t.Fatalf("DraftPath=%q not under runtime dir", path)
	}
	if filepath.Ext(path) != ".json" {
		t.Fatalf("DraftPath ext=%q", filepath.Ext(path))
	}
}

func TestPrepareAndReadDraft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deck.json")
	if err := PrepareAt(path, []byte("[{\"sideA\":\"Q\"}]\n\n")); err != nil {
		t.Fatalf("PrepareAt: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm=%v want 0600", perm)
	}

	got, err := ReadDraft(path)
	if err != nil {
		t.Fatalf("ReadDraft: %v", err)
	}
	if got != "[{\"sideA\":\"Q\"}]" {
		t.Fatalf("ReadDraft=%q", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("draft not removed: %v", err)
	}
}

func TestCommandHonorsEditorFlags(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "code --wait")
	cmd, err := Command("/tmp/deck.json")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if filepath.Base(cmd.Path) != "sh" {
		t.Fatalf("expected shell wrapper, got %q", cmd.Path)
	}
	var sawCmd, sawPath bool
	for _, kv := range cmd.Env {
		sawCmd = sawCmd || kv == "EDITORCMD=code --wait"
		sawPath = sawPath || kv == "FILEPATH=/tmp/deck.json"
	}
	if !sawCmd || !sawPath {
		t.Fatalf("missing editor env: %v", cmd.Env)
	}
}
