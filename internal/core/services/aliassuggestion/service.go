package aliassuggestion

import (
	"fmt"

	"github.com/AntonioJCosta/brewalias/internal/core/ports"
	"github.com/AntonioJCosta/brewalias/internal/logging"
)

type service struct {
	historyProvider ports.HistoryProvider
	aliasGenerator  ports.AliasGenerator
	store           ports.AliasStore
}

// NewService creates a new alias suggestion service.
// It panics if any dependency is nil.
func NewService(hp ports.HistoryProvider, ag ports.AliasGenerator, store ports.AliasStore) ports.AliasSuggestionService {
	if hp == nil {
		panic("historyProvider cannot be nil")
	}
	if ag == nil {
		panic("aliasGenerator cannot be nil")
	}
	if store == nil {
		panic("store cannot be nil")
	}
	return &service{historyProvider: hp, aliasGenerator: ag, store: store}
}

// GetSuggestions proposes at most outputLimit aliases for host invocations
// found at least minFrequency times in the last scanLimit history entries.
// Existing aliases are never suggested again, by name or by command.
func (s *service) GetSuggestions(minFrequency, scanLimit, outputLimit int) (ports.SuggestionResult, error) {
	var result ports.SuggestionResult
	logger := logging.GetLogger("suggest")
	defer logging.LogOperationStart(logger, "suggest")()

	taken, err := s.existingAliases()
	if err != nil {
		return result, fmt.Errorf("failed to get existing aliases for suggestion generation: %w", err)
	}

	frequencies, err := s.historyProvider.CommandFrequencies(scanLimit)
	if err != nil {
		return result, fmt.Errorf("failed to get command frequencies: %w", err)
	}
	logger.Debug().Int("distinct_commands", len(frequencies)).Int("existing_aliases", len(taken)).Msg("history scanned")

	suggestions := s.aliasGenerator.GenerateSuggestions(frequencies, taken, minFrequency)
	if outputLimit > 0 && len(suggestions) > outputLimit {
		suggestions = suggestions[:outputLimit]
	}

	result.Suggestions = suggestions
	result.SourceDetails = s.historyProvider.SourceIdentifier() + " (suggestions from command history)"
	return result, nil
}

// existingAliases maps every readable alias name to its resolved command.
func (s *service) existingAliases() (map[string]string, error) {
	taken := make(map[string]string)
	for a, err := range s.store.Enumerate() {
		if err != nil {
			return nil, err
		}
		taken[a.Name] = a.Resolved
	}
	return taken, nil
}
