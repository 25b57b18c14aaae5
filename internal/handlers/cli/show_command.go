package cli

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [NAME...]",
		Short: "Print aliases as brew alias NAME='COMMAND' and link them.",
		Long: `Prints one line per alias. Aliases without a brew-NAME symlink in the bin
directory are linked as they are shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(cmd, args, opts)
		},
	}
	return cmd
}

func runShowCmd(cmd *cobra.Command, names []string, opts *rootOptions) error {
	err := opts.service.ShowAliases(cmd.OutOrStdout(), names...)
	return reportNotFound(cmd.ErrOrStderr(), err)
}
