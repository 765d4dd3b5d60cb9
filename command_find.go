// command_find.go: Finds members by name keywords
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"
	"strings"
)

// FindCommandWord is the word that invokes the find command.
const FindCommandWord = "find"

// FindCommandUsage is the usage text reported on malformed invocations.
const FindCommandUsage = FindCommandWord + ": Finds all persons whose names contain any of the specified " +
	"keywords (case-insensitive) and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + FindCommandWord + " alice bob charlie"

// MessageFindResult is the result template, formatted with the match count.
const MessageFindResult = "%d persons listed!"

// FindCommand searches the roster by whole-word name match.
type FindCommand struct {
	keywords *TypedOption[string]
}

// NewFindCommand builds the command and its option descriptor.
func NewFindCommand() *FindCommand {
	return &FindCommand{
		keywords: OneOrMorePreambleOption("KEYWORD", ParseKeyword),
	}
}

// AddToParser registers the find command's grammar.
func (c *FindCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(FindCommandWord, FindCommandUsage, c).
		AddOptions(c.keywords)
}

// Execute lists every member matching any keyword.
func (c *FindCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	matches := roster.Find(AllValues(arg, c.keywords))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(MessageFindResult, len(matches)))
	for i, person := range matches {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, person))
	}
	return CommandResult{Message: sb.String()}, nil
}
