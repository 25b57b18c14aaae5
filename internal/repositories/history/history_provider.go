package history

import (
	"fmt"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
	"github.com/AntonioJCosta/brewalias/internal/core/ports"
	"github.com/AntonioJCosta/brewalias/internal/logging"
)

/*
HistoryProvider reads command frequencies from a bash or zsh history file.
It implements the ports.HistoryProvider interface.
*/
type HistoryProvider struct {
	HistoryFile      string
	sourceIdentifier string
}

func (hp *HistoryProvider) SourceIdentifier() string {
	return hp.sourceIdentifier
}

// NewHistoryProvider creates a provider. A missing history file is not an
// error here; CommandFrequencies reports it when suggestions are requested.
func NewHistoryProvider(fileFinder ports.HistoryFileFinder) ports.HistoryProvider {
	histFilePath, err := fileFinder.Find()
	if err != nil {
		logger := logging.GetLogger("history")
		logger.Debug().Err(err).Msg("no history file found")
		return &HistoryProvider{sourceIdentifier: "history file not found or configured"}
	}

	return &HistoryProvider{
		HistoryFile:      histFilePath,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(histFilePath)),
	}
}

// CommandFrequencies implements the ports.HistoryProvider interface.
func (hp *HistoryProvider) CommandFrequencies(scanLimit int) ([]history.CommandFrequency, error) {
	if hp.HistoryFile == "" {
		return nil, fmt.Errorf("history file not found or configured. Set HISTFILE or history_file in the config")
	}
	return hp.getHistoryFrequencies(determineScanCount(scanLimit))
}
