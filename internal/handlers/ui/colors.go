// Package ui holds the console palette shared by the brewalias commands.
// Colors are dropped automatically when output is not a terminal.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Status lines
var (
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
)

// Selection prompts and table headers
var (
	PromptColor = color.New(color.FgMagenta).SprintFunc()
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Script paths and shell snippets
var (
	CodeColor   = color.New(color.FgWhite).SprintFunc()
	DetailColor = color.New(color.FgHiBlack).SprintFunc()
)

var (
	keywordColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	nameColor     = color.New(color.FgYellow).SprintFunc()
	resolvedColor = color.New(color.FgWhite).SprintFunc()
)

// AliasLine renders an alias the way 'show' prints it: host alias name='command'.
func AliasLine(host, name, resolved string) string {
	return fmt.Sprintf("%s %s %s='%s'",
		keywordColor(host),
		keywordColor("alias"),
		nameColor(name),
		resolvedColor(resolved))
}
