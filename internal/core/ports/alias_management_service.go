package ports

import (
	"io"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
)

// AliasManagementService defines the contract for managing host CLI aliases.
type AliasManagementService interface {
	// Init prepares the aliases directory.
	Init() error

	// AddAlias validates name and creates an alias running userCommand.
	// A userCommand starting with "!" runs in the shell, anything else is a host subcommand.
	AddAlias(name, userCommand string) (alias.Alias, error)

	// RemoveAlias deletes the alias and its symlink.
	RemoveAlias(name string) error

	// ShowAliases prints the named aliases, or all of them, and links them.
	ShowAliases(w io.Writer, names ...string) error

	// ListAliases returns every alias sorted by name.
	ListAliases() ([]alias.Alias, error)

	// EditAlias optionally rewrites the alias with userCommand and opens it in the editor.
	EditAlias(name, userCommand string) error

	// EditAll opens every alias script in the editor.
	EditAll() error
}
