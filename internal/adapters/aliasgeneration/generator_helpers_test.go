package aliasgeneration

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
)

func TestSubcommandAliasNames(t *testing.T) {
	tests := []struct {
		subcommand string
		want       []string
	}{
		{subcommand: "upgrade", want: []string{"up", "upg", "upgr"}},
		{subcommand: "bundle-dump", want: []string{"bd", "bu", "bun", "bund"}},
		{subcommand: "Info", want: []string{"in", "inf"}},
		{subcommand: "ls", want: nil},
	}
	for _, tt := range tests {
		if got := subcommandAliasNames(tt.subcommand); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("subcommandAliasNames(%q) = %v, want %v", tt.subcommand, got, tt.want)
		}
	}
}

func TestExactCommandAliasName(t *testing.T) {
	tests := []struct {
		name     string
		analyzed command.AnalyzedCommand
		want     string
	}{
		{
			name:     "long flag and formula",
			analyzed: command.AnalyzedCommand{Subcommand: "install", Args: []string{"--cask", "firefox"}},
			want:     "icf",
		},
		{
			name:     "short flag",
			analyzed: command.AnalyzedCommand{Subcommand: "list", Args: []string{"-1"}},
			want:     "l1",
		},
		{
			name:     "tap qualified",
			analyzed: command.AnalyzedCommand{Subcommand: "tap", Args: []string{"homebrew/cask-fonts"}},
			want:     "tc",
		},
		{
			name:     "at most three argument initials",
			analyzed: command.AnalyzedCommand{Subcommand: "install", Args: []string{"a", "b", "c", "d"}},
			want:     "iabc",
		},
		{
			name:     "bare dashes add nothing",
			analyzed: command.AnalyzedCommand{Subcommand: "info", Args: []string{"--"}},
			want:     "",
		},
		{
			name:     "no subcommand",
			analyzed: command.AnalyzedCommand{},
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exactCommandAliasName(tt.analyzed); got != tt.want {
				t.Errorf("exactCommandAliasName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerationRun_IsProposedNameValid(t *testing.T) {
	run := newGenerationRun(map[string]string{"ll": "list"})
	run.accept(history.Suggestion{Name: "up", Command: "upgrade"})

	tests := []struct {
		name       string
		proposed   string
		subcommand string
		want       bool
	}{
		{name: "fresh name", proposed: "in", subcommand: "install", want: true},
		{name: "too short", proposed: "i", subcommand: "install", want: false},
		{name: "same as subcommand", proposed: "info", subcommand: "info", want: false},
		{name: "uppercase", proposed: "In", subcommand: "install", want: false},
		{name: "existing alias", proposed: "ll", subcommand: "list", want: false},
		{name: "generated in this run", proposed: "up", subcommand: "update", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run.isProposedNameValid(tt.proposed, tt.subcommand); got != tt.want {
				t.Errorf("isProposedNameValid(%q) = %v, want %v", tt.proposed, got, tt.want)
			}
		})
	}
	if !run.commandTaken("list") || !run.commandTaken("upgrade") || run.commandTaken("install") {
		t.Error("commandTaken() does not reflect taken and accepted commands")
	}
}
