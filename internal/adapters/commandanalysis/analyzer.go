package commandanalysis

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
	"github.com/AntonioJCosta/brewalias/internal/core/ports"
)

// BasicAnalyzer recognizes invocations of one host CLI in history lines.
type BasicAnalyzer struct {
	host string
}

// NewBasicAnalyzer creates a new BasicAnalyzer for host; empty means brew.
func NewBasicAnalyzer(host string) ports.CommandAnalyzer {
	if host == "" {
		host = command.DefaultHost
	}
	return &BasicAnalyzer{host: host}
}

// Analyze breaks a history line into the host subcommand and its arguments.
func (a *BasicAnalyzer) Analyze(line string) (command.AnalyzedCommand, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return command.AnalyzedCommand{}, false
	}

	args := a.parseArguments(trimmed)
	if len(args) < 2 || filepath.Base(args[0]) != a.host {
		return command.AnalyzedCommand{}, false
	}
	// Global flags such as "brew --prefix" have no subcommand to alias.
	if strings.HasPrefix(args[1], "-") {
		return command.AnalyzedCommand{}, false
	}

	analyzed := command.AnalyzedCommand{
		Original:   line,
		Subcommand: args[1],
		Command:    strings.TrimLeftFunc(strings.TrimLeftFunc(trimmed, isNotSpace), unicode.IsSpace),
		IsComplex:  a.determineComplexity(trimmed, args),
	}
	if len(args) > 2 {
		analyzed.Args = args[2:]
	}
	return analyzed, true
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
