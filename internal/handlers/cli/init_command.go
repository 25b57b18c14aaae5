package cli

import (
	"fmt"

	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the 'init' subcommand.
func NewInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the aliases directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.service.Init(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Aliases directory ready: %s", opts.cfg.AliasesDir)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("Aliases are linked into the bin directory. Ensure it is on your PATH, e.g. in ~/.zshrc or ~/.bashrc:"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.CodeColor(fmt.Sprintf(`   export PATH="%s:$PATH"`, opts.cfg.BinDir)))
			return nil
		},
	}
}
