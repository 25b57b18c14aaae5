package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME COMMAND... | add NAME=COMMAND",
		Short: "Create an alias for a brew subcommand or a shell command.",
		Long: `Creates an alias script. COMMAND is a brew subcommand ("info --json") unless it
starts with "!" or "%", in which case it runs in the shell ("!ls -la").
Extra arguments given to the alias are appended to the command.`,
		Example: `  brewalias add ll list --versions
  brewalias add up='upgrade --greedy'
  brewalias add tree '!tree $(brew --prefix)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, opts)
		},
	}
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string, opts *rootOptions) error {
	name, userCommand := splitAliasArgs(args)
	if userCommand == "" {
		return fmt.Errorf("no command given for alias '%s'", name)
	}

	added, err := opts.service.AddAlias(name, userCommand)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", ui.SuccessColor("Added"), ui.AliasLine(opts.cfg.Host, added.Name, userCommand))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Script: %s", added.ScriptPath)))
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Run 'brewalias show %s' to link it into %s.", added.Name, opts.cfg.BinDir)))
	return nil
}

/*
splitAliasArgs accepts both "NAME COMMAND..." and "NAME=COMMAND".

Example:

	splitAliasArgs([]string{"ll", "list", "--versions"}) // "ll", "list --versions"
	splitAliasArgs([]string{"ll=list --versions"})       // "ll", "list --versions"
*/
func splitAliasArgs(args []string) (name, userCommand string) {
	if len(args) == 0 {
		return "", ""
	}
	name = args[0]
	rest := args[1:]
	if before, after, found := strings.Cut(name, "="); found {
		name = before
		rest = append([]string{after}, rest...)
	}
	return name, strings.TrimSpace(strings.Join(rest, " "))
}
