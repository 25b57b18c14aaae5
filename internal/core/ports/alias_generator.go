package ports

import "github.com/AntonioJCosta/brewalias/internal/core/domain/history"

/*
AliasGenerator turns history frequencies into alias suggestions.
This is a driven port, representing a domain capability.
*/
type AliasGenerator interface {
	// GenerateSuggestions proposes aliases for invocations run at least
	// minFrequency times. taken maps existing alias names to their resolved
	// commands; neither the names nor the commands are suggested again.
	GenerateSuggestions(commands []history.CommandFrequency, taken map[string]string, minFrequency int) []history.Suggestion
}
