package ports

import "github.com/AntonioJCosta/brewalias/internal/core/domain/history"

type HistoryProvider interface {
	// CommandFrequencies counts distinct lines among the last scanLimit history
	// entries, most frequent first. A non-positive scanLimit uses $HISTSIZE or a default.
	CommandFrequencies(scanLimit int) ([]history.CommandFrequency, error)
	SourceIdentifier() string
}
