package commandanalysis

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
)

func TestNewBasicAnalyzer(t *testing.T) {
	analyzer := NewBasicAnalyzer("")
	basic, ok := analyzer.(*BasicAnalyzer)
	if !ok {
		t.Fatalf("NewBasicAnalyzer() did not return a *BasicAnalyzer, got %T", analyzer)
	}
	if basic.host != "brew" {
		t.Errorf("host = %q, want brew", basic.host)
	}
}

func TestBasicAnalyzer_Analyze(t *testing.T) {
	analyzer := NewBasicAnalyzer("brew")
	tests := []struct {
		name   string
		line   string
		want   command.AnalyzedCommand
		wantOK bool
	}{
		{
			name:   "subcommand only",
			line:   "brew upgrade",
			want:   command.AnalyzedCommand{Original: "brew upgrade", Subcommand: "upgrade", Command: "upgrade"},
			wantOK: true,
		},
		{
			name: "subcommand with args",
			line: "brew install --cask firefox",
			want: command.AnalyzedCommand{
				Original:   "brew install --cask firefox",
				Subcommand: "install",
				Args:       []string{"--cask", "firefox"},
				Command:    "install --cask firefox",
			},
			wantOK: true,
		},
		{
			name: "host given by path",
			line: "/opt/homebrew/bin/brew list",
			want: command.AnalyzedCommand{
				Original:   "/opt/homebrew/bin/brew list",
				Subcommand: "list",
				Command:    "list",
			},
			wantOK: true,
		},
		{
			name: "quoted argument",
			line: `brew search "visual studio"`,
			want: command.AnalyzedCommand{
				Original:   `brew search "visual studio"`,
				Subcommand: "search",
				Args:       []string{"visual studio"},
				Command:    `search "visual studio"`,
			},
			wantOK: true,
		},
		{
			name: "pipeline is complex",
			line: "brew list | grep python",
			want: command.AnalyzedCommand{
				Original:   "brew list | grep python",
				Subcommand: "list",
				Args:       []string{"|", "grep", "python"},
				Command:    "list | grep python",
				IsComplex:  true,
			},
			wantOK: true,
		},
		{
			name: "many arguments are complex",
			line: "brew install a b c d e",
			want: command.AnalyzedCommand{
				Original:   "brew install a b c d e",
				Subcommand: "install",
				Args:       []string{"a", "b", "c", "d", "e"},
				Command:    "install a b c d e",
				IsComplex:  true,
			},
			wantOK: true,
		},
		{name: "other command", line: "git status"},
		{name: "host alone", line: "brew"},
		{name: "global flag", line: "brew --prefix"},
		{name: "host as substring", line: "brewery list"},
		{name: "empty", line: "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := analyzer.Analyze(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Analyze(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Analyze(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestBasicAnalyzer_CustomHost(t *testing.T) {
	analyzer := NewBasicAnalyzer("port")
	if _, ok := analyzer.Analyze("brew list"); ok {
		t.Error("Analyze() accepted a brew line for host port")
	}
	got, ok := analyzer.Analyze("port installed")
	if !ok || got.Subcommand != "installed" {
		t.Errorf("Analyze() = %+v, %v", got, ok)
	}
}

func TestBasicAnalyzer_ParseArguments(t *testing.T) {
	a := &BasicAnalyzer{host: "brew"}
	tests := []struct {
		input string
		want  []string
	}{
		{input: `brew info wget`, want: []string{"brew", "info", "wget"}},
		{input: `brew  info   wget`, want: []string{"brew", "info", "wget"}},
		{input: `brew search 'a b'`, want: []string{"brew", "search", "a b"}},
		{input: `brew search "it's"`, want: []string{"brew", "search", "it's"}},
		{input: `brew search a\ b`, want: []string{"brew", "search", "a b"}},
		{input: `brew search 'a\b'`, want: []string{"brew", "search", `a\b`}},
	}
	for _, tt := range tests {
		if got := a.parseArguments(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseArguments(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBasicAnalyzer_CommandKeepsSpacing(t *testing.T) {
	got, ok := NewBasicAnalyzer("brew").Analyze("  brew   info  wget ")
	if !ok || got.Command != "info  wget" {
		t.Errorf("Analyze() Command = %q, %v; want %q", got.Command, ok, "info  wget")
	}
}
