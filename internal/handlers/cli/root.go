package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/brewalias/internal/config"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/ports"
	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
	"github.com/AntonioJCosta/brewalias/internal/logging"
	"github.com/spf13/cobra"
)

// Services are the core services the commands drive.
type Services struct {
	Management  ports.AliasManagementService
	Suggestions ports.AliasSuggestionService
}

// ServiceFactory builds the services once configuration is known.
type ServiceFactory func(cfg config.Config) (Services, error)

// rootOptions carries persistent flags and the service built from them.
type rootOptions struct {
	configPath string
	aliasesDir string
	binDir     string
	verbosity  int

	cfg         config.Config
	service     ports.AliasManagementService
	suggestions ports.AliasSuggestionService
}

func NewRootCommand(version string, newService ServiceFactory) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "brewalias",
		Short: "brewalias manages aliases for brew subcommands and shell commands.",
		Long: `brewalias stores each alias as a small script in an aliases directory and links it
into a bin directory as brew-NAME, so "brew NAME" runs it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.aliasesDir != "" {
				cfg.AliasesDir = opts.aliasesDir
			}
			if opts.binDir != "" {
				cfg.BinDir = opts.binDir
			}
			opts.cfg = cfg

			if newService == nil {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}
			services, err := newService(cfg)
			if err != nil {
				return fmt.Errorf("could not initialize alias management: %w", err)
			}
			opts.service = services.Management
			opts.suggestions = services.Suggestions
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", fmt.Sprintf("Config file (default %s).", config.DefaultPath()))
	flags.StringVar(&opts.aliasesDir, "aliases-dir", "", "Directory holding the alias scripts.")
	flags.StringVar(&opts.binDir, "bin-dir", "", "Directory receiving the brew-NAME symlinks.")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase log verbosity (repeatable).")

	rootCmd.AddCommand(NewInitCommand(opts))
	rootCmd.AddCommand(NewAddCommand(opts))
	rootCmd.AddCommand(NewRemoveCommand(opts))
	rootCmd.AddCommand(NewShowCommand(opts))
	rootCmd.AddCommand(NewListCommand(opts))
	rootCmd.AddCommand(NewEditCommand(opts))
	rootCmd.AddCommand(NewSuggestCommand(opts))

	return rootCmd
}

// reportNotFound turns alias.ErrNotFound into a warning; any other error is returned unchanged.
func reportNotFound(w io.Writer, err error) error {
	if errors.Is(err, alias.ErrNotFound) {
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("Warning: %v", err)))
		return nil
	}
	return err
}
