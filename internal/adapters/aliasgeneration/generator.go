package aliasgeneration

import (
	"cmp"
	"slices"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
	"github.com/AntonioJCosta/brewalias/internal/core/ports"
)

// Minimum non-space characters of a command worth aliasing.
const minCommandEffectiveLength = 4

// AliasGenerator generates alias suggestions from host invocations found in history.
type AliasGenerator struct {
	analyzer  ports.CommandAnalyzer
	validator ports.AliasNameValidator
}

// NewAliasGenerator creates a new AliasGenerator.
// It panics if analyzer or validator is nil.
func NewAliasGenerator(analyzer ports.CommandAnalyzer, validator ports.AliasNameValidator) ports.AliasGenerator {
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if validator == nil {
		panic("validator cannot be nil")
	}
	return &AliasGenerator{analyzer: analyzer, validator: validator}
}

/*
GenerateSuggestions creates alias suggestions using two strategies, most
frequent candidates first so they get the shortest names:

 1. Subcommand: every invocation of a subcommand counts towards one alias
    for it ("brew upgrade", "brew upgrade --greedy" -> "up" = "upgrade").
 2. Exact invocation: a subcommand with its arguments
    ("brew install --cask firefox" -> "icf" = "install --cask firefox").
*/
func (g *AliasGenerator) GenerateSuggestions(
	commands []history.CommandFrequency,
	taken map[string]string,
	minFrequency int,
) []history.Suggestion {
	run := newGenerationRun(taken)

	for _, c := range g.aggregateBySubcommand(commands) {
		if c.count < minFrequency {
			continue
		}
		for _, name := range subcommandAliasNames(c.analyzed.Subcommand) {
			if g.tryAccept(run, name, c) {
				break
			}
		}
	}

	for _, c := range g.exactCandidates(commands) {
		if c.count < minFrequency {
			continue
		}
		g.tryAccept(run, exactCommandAliasName(c.analyzed), c)
	}

	slices.SortFunc(run.suggestions, func(a, b history.Suggestion) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return run.suggestions
}

// tryAccept records a suggestion for c under name if the name is usable.
func (g *AliasGenerator) tryAccept(run *generationRun, name string, c candidate) bool {
	if !run.isProposedNameValid(name, c.analyzed.Subcommand) {
		return false
	}
	if run.commandTaken(c.analyzed.Command) {
		return false
	}
	if err := g.validator.Validate(name); err != nil {
		return false
	}
	run.accept(history.Suggestion{Name: name, Command: c.analyzed.Command, Count: c.count})
	return true
}
