package aliasgeneration

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
)

// candidate is an aliasable command and how often it was run.
type candidate struct {
	analyzed command.AnalyzedCommand
	count    int
}

// generationRun tracks names and commands claimed during one GenerateSuggestions call.
type generationRun struct {
	taken       map[string]string
	takenCmds   map[string]bool
	generated   map[string]bool
	suggestions []history.Suggestion
}

func newGenerationRun(taken map[string]string) *generationRun {
	run := &generationRun{
		taken:     taken,
		takenCmds: make(map[string]bool, len(taken)),
		generated: make(map[string]bool),
	}
	for _, cmd := range taken {
		run.takenCmds[cmd] = true
	}
	return run
}

func (r *generationRun) accept(s history.Suggestion) {
	r.generated[s.Name] = true
	r.takenCmds[s.Command] = true
	r.suggestions = append(r.suggestions, s)
}

func (r *generationRun) commandTaken(cmd string) bool {
	return r.takenCmds[cmd]
}

// Generated names are lowercase letters and digits only.
var validAliasCharsRegex = regexp.MustCompile(`^[a-z0-9]+$`)

/*
isProposedNameValid checks the rules every generated name must satisfy.

It verifies that the name has at least two characters, is not the
subcommand it abbreviates, was not generated earlier in this run, and is
not an existing alias. Reserved names and external commands are checked
afterwards by the name validator.

Example:

	run.isProposedNameValid("up", "upgrade") // true unless "up" is taken
	run.isProposedNameValid("u", "upgrade")  // false, too short
*/
func (r *generationRun) isProposedNameValid(proposedName, subcommand string) bool {
	if len(proposedName) < 2 {
		return false
	}
	if !validAliasCharsRegex.MatchString(proposedName) {
		return false
	}
	if proposedName == subcommand {
		return false
	}
	if r.generated[proposedName] {
		return false
	}
	_, exists := r.taken[proposedName]
	return !exists
}

func effectiveLength(s string) int {
	return len(strings.Join(strings.Fields(s), ""))
}

// byFrequency orders candidates most frequent first, then by command.
func byFrequency(a, b candidate) int {
	if c := cmp.Compare(b.count, a.count); c != 0 {
		return c
	}
	return cmp.Compare(a.analyzed.Command, b.analyzed.Command)
}

// aggregateBySubcommand sums the counts of all simple invocations per subcommand.
func (g *AliasGenerator) aggregateBySubcommand(commands []history.CommandFrequency) []candidate {
	bySubcommand := make(map[string]*candidate)
	for _, cmdFreq := range commands {
		analyzed, ok := g.analyzer.Analyze(cmdFreq.Command)
		if !ok || analyzed.IsComplex {
			continue
		}
		c, exists := bySubcommand[analyzed.Subcommand]
		if !exists {
			c = &candidate{analyzed: command.AnalyzedCommand{
				Original:   analyzed.Subcommand,
				Subcommand: analyzed.Subcommand,
				Command:    analyzed.Subcommand,
			}}
			bySubcommand[analyzed.Subcommand] = c
		}
		c.count += cmdFreq.Count
	}

	candidates := make([]candidate, 0, len(bySubcommand))
	for _, c := range bySubcommand {
		if effectiveLength(c.analyzed.Command) >= minCommandEffectiveLength {
			candidates = append(candidates, *c)
		}
	}
	slices.SortFunc(candidates, byFrequency)
	return candidates
}

// exactCandidates returns simple invocations that carry arguments.
func (g *AliasGenerator) exactCandidates(commands []history.CommandFrequency) []candidate {
	byCommand := make(map[string]*candidate)
	for _, cmdFreq := range commands {
		analyzed, ok := g.analyzer.Analyze(cmdFreq.Command)
		if !ok || analyzed.IsComplex || len(analyzed.Args) == 0 {
			continue
		}
		if effectiveLength(analyzed.Command) < minCommandEffectiveLength {
			continue
		}
		// "/opt/homebrew/bin/brew list" and "brew list" are the same command.
		if c, exists := byCommand[analyzed.Command]; exists {
			c.count += cmdFreq.Count
			continue
		}
		byCommand[analyzed.Command] = &candidate{analyzed: analyzed, count: cmdFreq.Count}
	}

	candidates := make([]candidate, 0, len(byCommand))
	for _, c := range byCommand {
		candidates = append(candidates, *c)
	}
	slices.SortFunc(candidates, byFrequency)
	return candidates
}

/*
subcommandAliasNames lists names for a subcommand alias, best first.
Hyphenated subcommands use the initial of each part; otherwise the name
is a growing prefix of the subcommand.

Example:

	subcommandAliasNames("upgrade")     // ["up", "upg", "upgr"]
	subcommandAliasNames("bundle-dump") // ["bd", "bu", "bun", "bund"]
*/
func subcommandAliasNames(subcommand string) []string {
	lower := strings.ToLower(subcommand)
	var names []string
	if parts := strings.Split(lower, "-"); len(parts) > 1 {
		var initials strings.Builder
		for _, part := range parts {
			if part != "" {
				initials.WriteByte(part[0])
			}
		}
		names = append(names, initials.String())
	}
	for n := 2; n <= 4 && n < len(lower); n++ {
		names = append(names, lower[:n])
	}
	return names
}

/*
exactCommandAliasName builds a name from the subcommand initial followed by
the initials of up to three arguments. Flags contribute the letter after
their dashes; tap-qualified names and paths contribute their last segment.

Example:

	"install --cask firefox"  -> "icf"
	"tap homebrew/cask-fonts" -> "tc"
*/
func exactCommandAliasName(analyzed command.AnalyzedCommand) string {
	if analyzed.Subcommand == "" {
		return ""
	}

	nameParts := []string{string(strings.ToLower(analyzed.Subcommand)[0])}
	const maxArgInitials = 3

	for _, arg := range analyzed.Args {
		if len(nameParts) > maxArgInitials {
			break
		}
		cleanArg := strings.ToLower(arg)
		var partToAdd string

		switch {
		case strings.HasPrefix(cleanArg, "--") && len(cleanArg) > 2:
			partToAdd = string(cleanArg[2])
		case strings.HasPrefix(cleanArg, "-") && len(cleanArg) > 1 && cleanArg[1] != '-':
			partToAdd = string(cleanArg[1])
		case strings.HasPrefix(cleanArg, "-"):
			// "-" and "--" carry no letter
		case strings.Contains(cleanArg, "/"):
			segments := strings.Split(cleanArg, "/")
			for i := len(segments) - 1; i >= 0; i-- {
				if segments[i] != "" && !strings.HasPrefix(segments[i], ".") {
					partToAdd = string(segments[i][0])
					break
				}
			}
		case cleanArg != "":
			partToAdd = string(cleanArg[0])
		}

		if partToAdd != "" {
			nameParts = append(nameParts, partToAdd)
		}
	}

	if len(nameParts) == 1 {
		return ""
	}
	return strings.Join(nameParts, "")
}
