package cli

import (
	"fmt"

	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List existing aliases in a table.",
		Long:  `Displays the aliases found in the aliases directory, sorted by name. Unlike 'show', it never creates symlinks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, opts)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, _ []string, opts *rootOptions) error {
	aliases, err := opts.service.ListAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases found in %s.", opts.cfg.AliasesDir)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases in %s:", opts.cfg.AliasesDir)))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias Name", "Command", "Type"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Resolved, aliasKind(a.Resolved)})
	}
	table.Render()
	return nil
}

func aliasKind(resolved string) string {
	if len(resolved) > 0 && resolved[0] == '!' {
		return "shell"
	}
	return "subcommand"
}
