package ports

import (
	"io"
	"iter"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
)

/*
AliasStore defines the contract for the directory of alias scripts.
This is a driven port, implemented by a repository that owns the aliases
directory and the symlinks pointing into it.
*/
type AliasStore interface {
	// Init creates the aliases directory if it does not exist.
	Init() error

	// Add writes a new alias script. It fails with alias.ErrAlreadyExists
	// if a script for name is already present.
	Add(name, command string) (alias.Alias, error)

	// Write creates or overwrites the alias script for name.
	Write(name, command string) (alias.Alias, error)

	// WriteTemplate creates a placeholder script for name unless one exists.
	WriteTemplate(name string) (alias.Alias, error)

	// Remove deletes the script and the symlink for name.
	Remove(name string) error

	/*
	   Enumerate yields every alias in the directory, restricted to only when
	   it is non-empty. Each iteration rescans the directory.
	*/
	Enumerate(only ...string) iter.Seq2[alias.Alias, error]

	// Show writes a display line for each alias in names and links it.
	Show(w io.Writer, names ...string) error

	// Lookup returns the on-disk paths for name without touching the filesystem.
	Lookup(name string) alias.Alias

	// Exists reports whether a script for name is present.
	Exists(name string) bool

	// ScriptPaths returns the path of every alias script.
	ScriptPaths() ([]string, error)
}
