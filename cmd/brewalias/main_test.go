package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/brewalias/internal/config"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	return config.Config{
		AliasesDir: filepath.Join(root, "aliases"),
		BinDir:     filepath.Join(root, "bin"),
		Host:       "brew",
		Reserved:   []string{"secret"},
	}
}

func TestNewServices_Management(t *testing.T) {
	services, err := newServices(testConfig(t))
	if err != nil {
		t.Fatalf("newServices() error = %v", err)
	}
	svc := services.Management

	for _, name := range []string{"install", "alias", "secret"} {
		if _, err := svc.AddAlias(name, "list"); !errors.Is(err, alias.ErrReservedName) {
			t.Errorf("AddAlias(%q) error = %v, want %v", name, err, alias.ErrReservedName)
		}
	}
	if _, err := svc.AddAlias("ll", "list"); err != nil {
		t.Errorf("AddAlias(\"ll\") unexpected error = %v", err)
	}
}

func TestNewServices_Suggestions(t *testing.T) {
	cfg := testConfig(t)
	cfg.HistoryFile = filepath.Join(t.TempDir(), "history")
	lines := "brew upgrade\nbrew upgrade\nbrew upgrade\nbrew doctor\nbrew doctor\nbrew doctor\n"
	if err := os.WriteFile(cfg.HistoryFile, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}

	services, err := newServices(cfg)
	if err != nil {
		t.Fatalf("newServices() error = %v", err)
	}
	if _, err := services.Management.AddAlias("doc", "doctor"); err != nil {
		t.Fatalf("AddAlias() unexpected error = %v", err)
	}

	result, err := services.Suggestions.GetSuggestions(3, 100, 10)
	if err != nil {
		t.Fatalf("GetSuggestions() unexpected error = %v", err)
	}
	// "up" is a built-in brew alias.
	want := []history.Suggestion{{Name: "upg", Command: "upgrade", Count: 3}}
	if len(result.Suggestions) != 1 || result.Suggestions[0] != want[0] {
		t.Errorf("GetSuggestions() = %+v, want %+v", result.Suggestions, want)
	}
}

func TestNewServices_InvalidConfig(t *testing.T) {
	if _, err := newServices(config.Config{}); err == nil {
		t.Error("newServices() with empty config expected an error")
	}
}
