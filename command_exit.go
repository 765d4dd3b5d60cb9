// command_exit.go: Terminates the session
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

// ExitCommandWord is the word that invokes the exit command.
const ExitCommandWord = "exit"

// ExitCommandUsage is the usage text reported on malformed invocations.
const ExitCommandUsage = ExitCommandWord + ": Exits this app"

// MessageExitAcknowledgement is printed before the session terminates.
const MessageExitAcknowledgement = "Exiting Address Book as requested ..."

// ExitCommand ends the interactive session.
type ExitCommand struct{}

// NewExitCommand builds the command.
func NewExitCommand() *ExitCommand { return &ExitCommand{} }

// AddToParser registers the exit command. It takes no options.
func (c *ExitCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(ExitCommandWord, ExitCommandUsage, c)
}

// Execute signals the session to terminate.
func (c *ExitCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	return CommandResult{Message: MessageExitAcknowledgement, Exit: true}, nil
}
