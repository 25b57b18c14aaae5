package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/brewalias/internal/adapters/aliasgeneration"
	"github.com/AntonioJCosta/brewalias/internal/adapters/aliasnaming"
	"github.com/AntonioJCosta/brewalias/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/brewalias/internal/adapters/editor"
	"github.com/AntonioJCosta/brewalias/internal/adapters/reservednames"
	"github.com/AntonioJCosta/brewalias/internal/config"
	"github.com/AntonioJCosta/brewalias/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/brewalias/internal/core/services/aliassuggestion"
	"github.com/AntonioJCosta/brewalias/internal/handlers/cli"
	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
	"github.com/AntonioJCosta/brewalias/internal/repositories/aliasstore"
	"github.com/AntonioJCosta/brewalias/internal/repositories/history"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, newServices)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// newServices wires the store, name validation, editor and history for cfg.
func newServices(cfg config.Config) (cli.Services, error) {
	store, err := aliasstore.NewStore(cfg.AliasesDir, cfg.BinDir, cfg.Host)
	if err != nil {
		return cli.Services{}, fmt.Errorf("error initializing alias store: %w", err)
	}

	reservedProvider := reservednames.NewYAMLProvider(cfg.Reserved...)
	if cfg.ReservedFile != "" {
		reservedProvider, err = reservednames.NewYAMLFileProvider(cfg.ReservedFile, cfg.Reserved...)
		if err != nil {
			return cli.Services{}, fmt.Errorf("error initializing reserved names: %w", err)
		}
	}

	validator := aliasnaming.NewValidator(cfg.Host, cfg.AliasesDir, reservedProvider)
	shellEditor := editor.NewShellEditor(cfg.Editor)

	historyProvider := history.NewHistoryProvider(history.NewDefaultHistoryFileFinder(cfg.HistoryFile))
	generator := aliasgeneration.NewAliasGenerator(commandanalysis.NewBasicAnalyzer(cfg.Host), validator)

	return cli.Services{
		Management:  aliasmanagement.NewService(cfg.Host, store, validator, shellEditor),
		Suggestions: aliassuggestion.NewService(historyProvider, generator, store),
	}, nil
}
