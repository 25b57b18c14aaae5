/*
Package alias defines the core domain entity for an alias.
*/
package alias

import "errors"

var (
	// ErrAlreadyExists is returned when a script already exists for the alias name.
	ErrAlreadyExists = errors.New("alias already exists")
	// ErrNotFound is returned when neither a script nor a symlink exists for the alias name.
	ErrNotFound = errors.New("alias not found")
	// ErrMalformedAlias is returned when a script has no command line after its header.
	ErrMalformedAlias = errors.New("malformed alias script")
	// ErrReservedName is returned when the name belongs to a built-in command.
	ErrReservedName = errors.New("reserved command name")
	// ErrInvalidName is returned when the name cannot be used as a file name.
	ErrInvalidName = errors.New("invalid alias name")
	// ErrCommandExists is returned when an external command with the same name is already on PATH.
	ErrCommandExists = errors.New("command already exists")
)

/*
Alias is one user-defined short name, the script backing it and the symlink
that makes it invocable. Command is only set when the alias is being written;
Resolved is only set when the alias was read back from its script.
*/
type Alias struct {
	Name        string
	ScriptPath  string
	SymlinkPath string
	Command     string
	Resolved    string
}
