// command_clear.go: Clears the whole roster
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

// ClearCommandWord is the word that invokes the clear command.
const ClearCommandWord = "clear"

// ClearCommandUsage is the usage text reported on malformed invocations.
const ClearCommandUsage = ClearCommandWord + ": Clears all entries from the address book.\n" +
	"Example: " + ClearCommandWord

// MessageClearSuccess is the result message.
const MessageClearSuccess = "Address book has been cleared!"

// ClearCommand removes every member.
type ClearCommand struct{}

// NewClearCommand builds the command.
func NewClearCommand() *ClearCommand { return &ClearCommand{} }

// AddToParser registers the clear command. It takes no options.
func (c *ClearCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(ClearCommandWord, ClearCommandUsage, c)
}

// Execute empties the roster.
func (c *ClearCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	roster.Clear()
	return CommandResult{Message: MessageClearSuccess, Mutated: true}, nil
}
