package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// PreferredEditor finds a suitable editor from env or common defaults.
func PreferredEditor() (string, error) {
	if v := os.Getenv("VISUAL"); v != "" {
		return v, nil
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e, nil
	}
	for _, cand := range []string{"nvim", "vim", "vi", "nano"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no editor found; set $EDITOR or $VISUAL")
}

// DraftPath returns the file used to edit deck input for this process.
func DraftPath() (string, error) {
	name := fmt.Sprintf("deck-%d.json", os.Getpid())
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, "flipdeck", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "flipdeck", "edit", name), nil
}

func ensureDirSecure(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o700)
}

func writeFile0600(path string, data []byte) error {
	if err := ensureDirSecure(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, fs.FileMode(0o600))
}

// PrepareAt writes the initial content to the given path with secure perms.
func PrepareAt(path string, initial []byte) error {
	return writeFile0600(path, initial)
}

// Command builds the editor invocation for path. VISUAL/EDITOR may carry
// flags (e.g. "code --wait"), so those run through a shell wrapper.
// Stdio is left unset; the caller attaches the terminal.
func Command(path string) (*exec.Cmd, error) {
	ed := os.Getenv("VISUAL")
	if ed == "" {
		ed = os.Getenv("EDITOR")
	}
	if strings.TrimSpace(ed) != "" {
		cmd := exec.Command("sh", "-c", "$EDITORCMD \"$FILEPATH\"")
		cmd.Env = append(os.Environ(), "EDITORCMD="+ed, "FILEPATH="+path)
		return cmd, nil
	}
	prog, err := PreferredEditor()
	if err != nil {
		return nil, err
	}
	return exec.Command(prog, path), nil
}

// ReadDraft reads the edited file back and removes it.
func ReadDraft(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	_ = os.Remove(path)
	return strings.TrimRight(string(b), "\n"), nil
}
