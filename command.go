// command.go: Command contract and shared execution helpers
//
// A command declares its argument grammar once by registering option
// descriptors with the GreyBookParser, then executes against the roster
// using the typed ParseResult of each invocation. The parsing framework
// never interprets command semantics; everything domain-specific lives in
// the Execute implementations.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "github.com/agilira/go-errors"

// CommandResult is what a command reports back to the session layer.
type CommandResult struct {
	Message string
	// Mutated tells the session to persist the roster.
	Mutated bool
	// Exit tells the session to terminate.
	Exit bool
}

// Command is one user-invokable operation on the roster.
type Command interface {
	// AddToParser registers the command word, usage text, and option
	// descriptors. Called once at startup.
	AddToParser(parser *GreyBookParser)
	// Execute runs the command against the roster with fully parsed and
	// validated arguments.
	Execute(roster *Roster, arg *ParseResult) (CommandResult, error)
}

// RegisterBuiltinCommands wires every built-in command into parser and
// returns the registered commands in registration order.
func RegisterBuiltinCommands(parser *GreyBookParser) []Command {
	commands := []Command{
		NewAddCommand(),
		NewDeleteCommand(),
		NewListCommand(),
		NewFindCommand(),
		NewMarkCommand(),
		NewUnmarkCommand(),
		NewClearCommand(),
		NewHelpCommand(),
		NewExitCommand(),
	}
	for _, command := range commands {
		command.AddToParser(parser)
	}
	return commands
}

// resolvePerson finds the member addressed by either a displayed index or a
// student ID, the two interpretations commands accept for their preamble.
// Exactly one of the identifiers is present; the command parser's
// one-preamble enforcement guarantees it.
func resolvePerson(roster *Roster, index *TypedOption[Index], studentID *TypedOption[StudentID], arg *ParseResult) (Person, error) {
	if id, ok := OptionalValue(arg, studentID); ok {
		person, found := roster.ByStudentID(id)
		if !found {
			return Person{}, errors.New(ErrCodePersonNotFound, MessagePersonNotFound)
		}
		return person, nil
	}

	idx, _ := OptionalValue(arg, index)
	person, found := roster.ByIndex(idx)
	if !found {
		return Person{}, errors.New(ErrCodePersonNotFound, MessagePersonNotFound)
	}
	return person, nil
}
