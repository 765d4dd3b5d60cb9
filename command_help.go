// command_help.go: Shows usage for every registered command
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "strings"

// HelpCommandWord is the word that invokes the help command.
const HelpCommandWord = "help"

// HelpCommandUsage is the usage text reported on malformed invocations.
const HelpCommandUsage = HelpCommandWord + ": Shows program usage instructions.\n" +
	"Example: " + HelpCommandWord

// HelpCommand prints the usage text of every registered command. It keeps a
// reference to the parser it registered with so the listing always matches
// what is actually registered.
type HelpCommand struct {
	parser *GreyBookParser
}

// NewHelpCommand builds the command.
func NewHelpCommand() *HelpCommand { return &HelpCommand{} }

// AddToParser registers the help command. It takes no options.
func (c *HelpCommand) AddToParser(parser *GreyBookParser) {
	c.parser = parser
	parser.NewCommand(HelpCommandWord, HelpCommandUsage, c)
}

// Execute lists every command's usage text in registration order.
func (c *HelpCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	var sb strings.Builder
	for i, word := range c.parser.CommandWords() {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		usage, _ := c.parser.UsageFor(word)
		sb.WriteString(usage)
	}
	return CommandResult{Message: sb.String()}, nil
}
