package aliasstore

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
)

const (
	// headerLines is the shebang plus the metadata line.
	headerLines   = 2
	commentPrefix = "#"
	// backupSuffix marks editor backup files (foo~) left in the aliases directory.
	backupSuffix    = "~"
	defaultShell    = "/bin/bash"
	scriptFileMode  = fs.FileMode(0o744)
	aliasesDirMode  = fs.FileMode(0o755)
	metadataPrefix  = "# alias: "
	templateCommand = `echo "Hello I'm %s alias "%s" and my args are:" $1`
)

// findShell resolves the interpreter written into new scripts.
func findShell() string {
	if path, err := exec.LookPath("bash"); err == nil {
		return path
	}
	return defaultShell
}

// skipEntry reports whether a directory entry is not an alias script.
func skipEntry(path string, entry fs.DirEntry) bool {
	if strings.HasSuffix(entry.Name(), backupSuffix) {
		return true
	}
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err != nil || info.IsDir()
	}
	return false
}

/*
readCommandLine returns the first significant content line of a script:
the shebang and metadata lines are skipped, as are comment and blank lines.
It returns alias.ErrMalformedAlias if no such line exists.
*/
func readCommandLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}
		line := scanner.Text()
		if strings.HasPrefix(line, commentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error scanning alias script: %w", err)
	}
	return "", alias.ErrMalformedAlias
}

// checkCommand rejects a command that readCommandLine could not read back
// from the written script, or that resolves to an empty command.
func checkCommand(cmd string) error {
	line, err := readCommandLine(strings.NewReader(strings.Repeat("\n", headerLines) + cmd))
	if err != nil {
		return err
	}
	if strings.TrimSpace(strings.TrimSuffix(line, command.Splat)) == "" {
		return alias.ErrMalformedAlias
	}
	return nil
}

func header(shell, host, name string) string {
	return fmt.Sprintf("#! %s\n%s%s %s\n", shell, metadataPrefix, host, name)
}

// encodeScript renders a script whose command line is exactly cmd.
func encodeScript(shell, host, name, cmd string) []byte {
	var b strings.Builder
	b.WriteString(header(shell, host, name))
	fmt.Fprintf(&b, "#:  * `%s` [args...]\n", name)
	fmt.Fprintf(&b, "#:    `%s %s` is an alias for `%s`\n", host, name, strings.TrimSuffix(firstLine(cmd), command.Splat))
	b.WriteString(cmd)
	if !strings.HasSuffix(cmd, "\n") {
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// encodeTemplate renders the placeholder script opened when editing a new alias.
func encodeTemplate(shell, host, name string) []byte {
	var b strings.Builder
	b.WriteString(header(shell, host, name))
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# This is a %s alias script. It'll be called when the user\n", host)
	fmt.Fprintf(&b, "# types `%s %s`. Any remaining arguments are passed to\n", host, name)
	b.WriteString("# this script. You can retrieve those with $*, or only the first\n")
	b.WriteString("# one with $1. Please keep your script on one line.\n")
	b.WriteString("# Replace the line below with your script.\n")
	fmt.Fprintf(&b, templateCommand+"\n", host, name)
	return []byte(b.String())
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}

// validFileName reports whether name can be used as a single path component.
func validFileName(name string) bool {
	if name == "" || name == "." || name == ".." || strings.HasSuffix(name, backupSuffix) {
		return false
	}
	return !strings.ContainsAny(name, `/\`+"\x00")
}
