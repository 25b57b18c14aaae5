package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [NAME...]",
		Aliases: []string{"unalias", "rm"},
		Short:   "Delete aliases and their symlinks.",
		Long: `Deletes the alias scripts and their brew-NAME symlinks. Without a NAME, choose
aliases interactively. Uses fzf for selection if available, otherwise falls back to numeric input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(cmd, args, opts)
		},
	}
	return cmd
}

func runRemoveCmd(cmd *cobra.Command, names []string, opts *rootOptions) error {
	if len(names) == 0 {
		selected, err := selectAliasesToRemove(cmd, opts)
		if err != nil || len(selected) == 0 {
			return err
		}
		names = selected
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	var firstErr error
	for _, name := range names {
		err := opts.service.RemoveAlias(name)
		switch {
		case err == nil:
			fmt.Fprintf(out, "%s alias '%s %s'\n", ui.SuccessColor("Removed"), opts.cfg.Host, name)
		case errors.Is(err, alias.ErrNotFound):
			fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("Warning: %v", err)))
		default:
			fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Error removing alias '%s': %v", name, err)))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func selectAliasesToRemove(cmd *cobra.Command, opts *rootOptions) ([]string, error) {
	aliases, err := opts.service.ListAliases()
	if err != nil {
		return nil, fmt.Errorf("could not list aliases: %w", err)
	}
	if len(aliases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("No aliases to remove."))
		return nil, nil
	}

	selector := newAliasSelector(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.cfg.Host, "remove")
	selected, err := selector.selectAliases(aliases)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("No aliases selected."))
		return nil, nil
	}

	names := make([]string, 0, len(selected))
	for _, a := range selected {
		names = append(names, a.Name)
	}
	return names, nil
}
