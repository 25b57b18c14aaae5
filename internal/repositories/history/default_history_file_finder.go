package history

import "github.com/AntonioJCosta/brewalias/internal/core/ports"

// DefaultHistoryFileFinder locates the shell history file, preferring a configured path.
type DefaultHistoryFileFinder struct {
	configured string
}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile(d.configured)
}

// NewDefaultHistoryFileFinder creates a finder. configured may be empty.
func NewDefaultHistoryFileFinder(configured string) ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{configured: configured}
}
