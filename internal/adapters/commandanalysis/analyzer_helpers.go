package commandanalysis

import (
	"strings"
	"unicode"
)

// parseArguments splits the command string into arguments,
// handling single and double quotes and backslash escapes.
func (a *BasicAnalyzer) parseArguments(trimmedCommandStr string) []string {
	var args []string
	var currentArg strings.Builder
	var quote rune
	isEscaped := false

	for _, r := range trimmedCommandStr {
		if isEscaped {
			currentArg.WriteRune(r)
			isEscaped = false
			continue
		}

		switch {
		case r == '\\' && quote != '\'':
			isEscaped = true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
		case quote == 0 && unicode.IsSpace(r):
			if currentArg.Len() > 0 {
				args = append(args, currentArg.String())
				currentArg.Reset()
			}
		default:
			currentArg.WriteRune(r)
		}
	}
	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}
	return args
}

/*
determineComplexity flags lines that make poor aliases.

A line is complex if it:
 1. Has more than six parts (more than four arguments after the subcommand).
 2. Contains shell metacharacters like |, &, ;, <, >, (, ), $ or a backtick.
*/
func (a *BasicAnalyzer) determineComplexity(originalCommandStr string, args []string) bool {
	return len(args) > 6 || strings.ContainsAny(originalCommandStr, "|&;<>()$`")
}
