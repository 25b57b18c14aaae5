// Package command converts between the command line stored in an alias
// script and the canonical form shown to the user.
package command

import "strings"

const (
	// DefaultHost is the package-manager CLI aliases are created for.
	DefaultHost = "brew"
	// Splat is appended to stored command lines so extra arguments pass through.
	Splat = " $*"
	// ShellMarker prefixes a resolved command that runs in the shell.
	ShellMarker = "!"
	// altShellMarker is accepted on input as a synonym for ShellMarker.
	altShellMarker = "%"
)

// Normalizer resolves script command lines for a given host CLI.
type Normalizer struct {
	Host string
}

func (n Normalizer) prefix() string {
	host := n.Host
	if host == "" {
		host = DefaultHost
	}
	return host + " "
}

/*
Normalize turns the first content line of an alias script into its resolved
command: a trailing splat is dropped, then a leading "<host> " is stripped for
subcommands, otherwise the line is marked as a shell command with "!".

Example:

	Normalizer{Host: "brew"}.Normalize("brew info foo $*") // "info foo"
	Normalizer{Host: "brew"}.Normalize("ls -la")           // "!ls -la"
*/
func (n Normalizer) Normalize(line string) string {
	cmd := strings.TrimSuffix(line, Splat)
	if rest, ok := strings.CutPrefix(cmd, n.prefix()); ok {
		return rest
	}
	return ShellMarker + cmd
}

/*
ScriptLine is the inverse used when creating an alias from user input.
A command starting with "!" or "%" runs in the shell as-is; anything else is
a subcommand of the host. The splat is always appended.

Example:

	Normalizer{Host: "brew"}.ScriptLine("info foo") // "brew info foo $*"
	Normalizer{Host: "brew"}.ScriptLine("!ls -la")  // "ls -la $*"
*/
func (n Normalizer) ScriptLine(userCommand string) string {
	trimmed := strings.TrimSpace(userCommand)
	if strings.HasPrefix(trimmed, ShellMarker) || strings.HasPrefix(trimmed, altShellMarker) {
		return trimmed[1:] + Splat
	}
	return n.prefix() + trimmed + Splat
}

// Normalize resolves line for the default host.
func Normalize(line string) string {
	return Normalizer{Host: DefaultHost}.Normalize(line)
}
