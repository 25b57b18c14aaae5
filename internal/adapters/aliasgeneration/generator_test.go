package aliasgeneration

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/brewalias/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
	"github.com/AntonioJCosta/brewalias/internal/core/testutil"
)

var sampleHistory = []history.CommandFrequency{
	{Command: "git status", Count: 10},
	{Command: "brew list | grep python", Count: 5},
	{Command: "brew install --cask firefox", Count: 4},
	{Command: "brew upgrade", Count: 3},
	{Command: "brew upgrade --greedy", Count: 2},
	{Command: "brew info wget", Count: 1},
}

func TestNewAliasGenerator_PanicsOnNil(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil analyzer", func() { NewAliasGenerator(nil, &testutil.MockAliasNameValidator{}) }},
		{"nil validator", func() { NewAliasGenerator(commandanalysis.NewBasicAnalyzer("brew"), nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("NewAliasGenerator did not panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestAliasGenerator_GenerateSuggestions(t *testing.T) {
	tests := []struct {
		name         string
		taken        map[string]string
		minFrequency int
		validate     func(name string) error
		want         []history.Suggestion
	}{
		{
			name:         "both strategies",
			taken:        map[string]string{},
			minFrequency: 3,
			want: []history.Suggestion{
				{Name: "up", Command: "upgrade", Count: 5},
				{Name: "icf", Command: "install --cask firefox", Count: 4},
				{Name: "in", Command: "install", Count: 4},
			},
		},
		{
			name:         "taken name falls back to a longer prefix",
			taken:        map[string]string{"up": "doctor"},
			minFrequency: 3,
			want: []history.Suggestion{
				{Name: "upg", Command: "upgrade", Count: 5},
				{Name: "icf", Command: "install --cask firefox", Count: 4},
				{Name: "in", Command: "install", Count: 4},
			},
		},
		{
			name:         "already aliased command is skipped",
			taken:        map[string]string{"ff": "install --cask firefox", "u": "upgrade"},
			minFrequency: 3,
			want: []history.Suggestion{
				{Name: "in", Command: "install", Count: 4},
			},
		},
		{
			name:         "validator rejection tries the next name",
			taken:        nil,
			minFrequency: 4,
			validate: func(name string) error {
				if name == "in" {
					return alias.ErrReservedName
				}
				return nil
			},
			want: []history.Suggestion{
				{Name: "up", Command: "upgrade", Count: 5},
				{Name: "icf", Command: "install --cask firefox", Count: 4},
				{Name: "ins", Command: "install", Count: 4},
			},
		},
		{
			name:         "low frequencies are ignored",
			minFrequency: 6,
			want:         nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewAliasGenerator(
				commandanalysis.NewBasicAnalyzer("brew"),
				&testutil.MockAliasNameValidator{ValidateFunc: tt.validate},
			)
			got := g.GenerateSuggestions(sampleHistory, tt.taken, tt.minFrequency)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateSuggestions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAliasGenerator_MergesHostPaths(t *testing.T) {
	g := NewAliasGenerator(commandanalysis.NewBasicAnalyzer("brew"), &testutil.MockAliasNameValidator{})
	got := g.GenerateSuggestions([]history.CommandFrequency{
		{Command: "brew outdated --cask", Count: 2},
		{Command: "/opt/homebrew/bin/brew outdated --cask", Count: 2},
	}, nil, 4)
	want := []history.Suggestion{
		{Name: "oc", Command: "outdated --cask", Count: 4},
		{Name: "ou", Command: "outdated", Count: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateSuggestions() = %+v, want %+v", got, want)
	}
}
