package ports

import "github.com/AntonioJCosta/brewalias/internal/core/domain/history"

// SuggestionResult holds the suggestions and where they came from.
type SuggestionResult struct {
	Suggestions   []history.Suggestion
	SourceDetails string
}

// AliasSuggestionService proposes aliases based on the user's shell history.
type AliasSuggestionService interface {
	GetSuggestions(minFrequency, scanLimit, outputLimit int) (SuggestionResult, error)
}
