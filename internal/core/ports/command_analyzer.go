package ports

import "github.com/AntonioJCosta/brewalias/internal/core/domain/command"

/*
CommandAnalyzer decides whether a history line invokes the host CLI and
breaks it into subcommand and arguments. ok is false for any other line.
*/
type CommandAnalyzer interface {
	Analyze(line string) (analyzed command.AnalyzedCommand, ok bool)
}
