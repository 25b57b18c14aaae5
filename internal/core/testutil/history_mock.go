package testutil

import (
	"errors"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
)

// MockHistoryFileFinder is a mock implementation of ports.HistoryFileFinder.
type MockHistoryFileFinder struct {
	FindFunc func() (string, error)
}

func (m *MockHistoryFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", errors.New("MockHistoryFileFinder: FindFunc not implemented")
}

// MockHistoryProvider is a mock implementation of ports.HistoryProvider.
type MockHistoryProvider struct {
	CommandFrequenciesFunc func(scanLimit int) ([]history.CommandFrequency, error)
	SourceIdentifierFunc   func() string
}

func (m *MockHistoryProvider) CommandFrequencies(scanLimit int) ([]history.CommandFrequency, error) {
	if m.CommandFrequenciesFunc != nil {
		return m.CommandFrequenciesFunc(scanLimit)
	}
	return nil, nil
}

func (m *MockHistoryProvider) SourceIdentifier() string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc()
	}
	return "mock history"
}

// MockAliasGenerator is a mock implementation of ports.AliasGenerator.
// LastTaken records the taken map of the most recent call.
type MockAliasGenerator struct {
	GenerateSuggestionsFunc func(commands []history.CommandFrequency, taken map[string]string, minFrequency int) []history.Suggestion
	LastTaken               map[string]string
}

func (m *MockAliasGenerator) GenerateSuggestions(commands []history.CommandFrequency, taken map[string]string, minFrequency int) []history.Suggestion {
	m.LastTaken = taken
	if m.GenerateSuggestionsFunc != nil {
		return m.GenerateSuggestionsFunc(commands, taken, minFrequency)
	}
	return nil
}
