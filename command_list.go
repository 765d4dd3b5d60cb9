// command_list.go: Lists every member of the roster
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"
	"strings"
)

// ListCommandWord is the word that invokes the list command.
const ListCommandWord = "list"

// ListCommandUsage is the usage text reported on malformed invocations.
const ListCommandUsage = ListCommandWord + ": Lists all persons in the address book.\n" +
	"Example: " + ListCommandWord

// MessageListHeader opens the list output.
const MessageListHeader = "Listed all persons"

// ListCommand prints the full roster.
type ListCommand struct{}

// NewListCommand builds the command.
func NewListCommand() *ListCommand { return &ListCommand{} }

// AddToParser registers the list command. It takes no options.
func (c *ListCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(ListCommandWord, ListCommandUsage, c)
}

// Execute renders every member with their one-based display index.
func (c *ListCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	var sb strings.Builder
	sb.WriteString(MessageListHeader)
	for i, person := range roster.Persons() {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, person))
	}
	return CommandResult{Message: sb.String()}, nil
}
