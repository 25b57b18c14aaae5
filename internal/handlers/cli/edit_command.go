package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEditCommand creates the 'edit' subcommand.
func NewEditCommand(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "edit [NAME [COMMAND...]] | edit --all",
		Short: "Open an alias script, or all of them, in your editor.",
		Long: `Opens the alias script in $VISUAL or $EDITOR (or the editor from the config file).
With a COMMAND, the script is rewritten first. Editing an alias that does not
exist creates it from a template. Without a NAME, every alias is opened.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("--all does not take alias names")
			}
			if all || len(args) == 0 {
				return reportNotFound(cmd.ErrOrStderr(), opts.service.EditAll())
			}
			name, userCommand := splitAliasArgs(args)
			return opts.service.EditAlias(name, userCommand)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Edit every alias script at once.")
	return cmd
}
