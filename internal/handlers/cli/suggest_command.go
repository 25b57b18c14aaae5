package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	defaultMinFrequency = 3
	defaultOutputLimit  = 10
)

// NewSuggestCommand creates the 'suggest' subcommand.
func NewSuggestCommand(opts *rootOptions) *cobra.Command {
	var (
		minFrequency int
		scanLimit    int
		outputLimit  int
		add          bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest aliases for brew commands you run often.",
		Long: `Scans your shell history for brew invocations and suggests short aliases for the
most frequent ones. With --add, choose suggestions to create. Uses fzf for
selection if available, otherwise falls back to numeric input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minFrequency <= 0 {
				minFrequency = defaultMinFrequency
			}
			if outputLimit <= 0 {
				outputLimit = defaultOutputLimit
			}
			return runSuggestCmd(cmd, opts, minFrequency, scanLimit, outputLimit, add)
		},
	}

	cmd.Flags().IntVarP(&minFrequency, "min-frequency", "f", 0, "Minimum frequency for a command to be considered for an alias (default 3).")
	cmd.Flags().IntVarP(&scanLimit, "scan-limit", "s", 0, "Number of recent history entries to scan (default $HISTSIZE or 500).")
	cmd.Flags().IntVarP(&outputLimit, "output-limit", "o", 0, "Maximum number of alias suggestions to show (default 10).")
	cmd.Flags().BoolVarP(&add, "add", "a", false, "Choose suggestions to create as aliases.")
	return cmd
}

func runSuggestCmd(cmd *cobra.Command, opts *rootOptions, minFrequency, scanLimit, outputLimit int, add bool) error {
	if opts.suggestions == nil {
		return fmt.Errorf("alias suggestion service not initialized for command %s", cmd.Name())
	}

	result, err := opts.suggestions.GetSuggestions(minFrequency, scanLimit, outputLimit)
	if err != nil {
		return fmt.Errorf("could not get suggestions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(result.Suggestions) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No alias suggestions found with the current criteria."))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", result.SourceDetails)))
		return nil
	}

	if !add {
		fmt.Fprintln(out, ui.HeaderColor("Suggested Aliases:"))
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Alias Name", "Command", "Uses"})
		table.SetBorder(true)
		table.SetAutoWrapText(false)
		for _, s := range result.Suggestions {
			table.Append([]string{s.Name, s.Command, strconv.Itoa(s.Count)})
		}
		table.Render()
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", result.SourceDetails)))
		fmt.Fprintln(out, ui.InfoColor("Run 'brewalias suggest --add' to create some of them."))
		return nil
	}

	return addSuggestions(cmd, opts, result.Suggestions)
}

// addSuggestions lets the user pick suggestions and creates them as aliases.
func addSuggestions(cmd *cobra.Command, opts *rootOptions, suggestions []history.Suggestion) error {
	candidates := make([]alias.Alias, 0, len(suggestions))
	for _, s := range suggestions {
		candidates = append(candidates, alias.Alias{Name: s.Name, Resolved: s.Command})
	}

	selector := newAliasSelector(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.cfg.Host, "add")
	selected, err := selector.selectAliases(candidates)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(selected) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases selected."))
		return nil
	}

	var firstErr error
	for _, a := range selected {
		added, err := opts.service.AddAlias(a.Name, a.Resolved)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error adding alias '%s': %v", a.Name, err)))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(out, "%s %s\n", ui.SuccessColor("Added"), ui.AliasLine(opts.cfg.Host, added.Name, a.Resolved))
	}
	if firstErr == nil {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Run 'brewalias show' to link them into %s.", opts.cfg.BinDir)))
	}
	return firstErr
}
