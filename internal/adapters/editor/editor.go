package editor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/core/ports"
)

const (
	defaultEditor = "vi"
	shellPath     = "/bin/sh"
)

// ShellEditor implements the Editor interface by running the user's editor through the shell,
// so editor settings such as "code --wait" work unchanged.
type ShellEditor struct {
	editor string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewShellEditor creates a new ShellEditor attached to the process's terminal.
// An empty editor falls back to $VISUAL, then $EDITOR, then vi.
func NewShellEditor(editor string) ports.Editor {
	return &ShellEditor{
		editor: editor,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (e *ShellEditor) command() string {
	if e.editor != "" {
		return e.editor
	}
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return defaultEditor
}

// Edit opens paths in the editor and waits for it to exit.
func (e *ShellEditor) Edit(paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files to edit")
	}
	editorCmd := e.command()

	// "$@" expands to the paths, so file names are never re-split by the shell.
	args := append([]string{"-c", editorCmd + ` "$@"`, editorCmd}, paths...)
	cmd := exec.Command(shellPath, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	var errBuf bytes.Buffer
	cmd.Stderr = io.MultiWriter(e.stderr, &errBuf)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor '%s': %w. Stderr: %s", editorCmd, err, strings.TrimSpace(errBuf.String()))
	}
	return nil
}
