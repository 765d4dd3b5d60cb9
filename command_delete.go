// command_delete.go: Deletes a member addressed by index or student ID
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "fmt"

// DeleteCommandWord is the word that invokes the delete command.
const DeleteCommandWord = "delete"

// DeleteCommandUsage is the usage text reported on malformed invocations.
const DeleteCommandUsage = DeleteCommandWord + ": Deletes the person identified by the index number used in the " +
	"displayed person list, or by student ID.\n" +
	"Parameters: INDEX (must be a positive integer) OR STUDENT_ID (format: A0000000Y)\n" +
	"Example: " + DeleteCommandWord + " 1 OR " + DeleteCommandWord + " A0123456X"

// MessageDeleteSuccess is the result template on success.
const MessageDeleteSuccess = "Deleted Person: %s"

// DeleteCommand removes one member. The preamble is interpreted either as a
// displayed index or as a student ID; exactly one reading must succeed.
type DeleteCommand struct {
	index     *TypedOption[Index]
	studentID *TypedOption[StudentID]
}

// NewDeleteCommand builds the command and its option descriptors.
func NewDeleteCommand() *DeleteCommand {
	return &DeleteCommand{
		index:     OptionalSinglePreambleOption("INDEX", ParseIndex),
		studentID: OptionalSinglePreambleOption("STUDENT_ID", ParseStudentID),
	}
}

// AddToParser registers the delete command's grammar.
func (c *DeleteCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(DeleteCommandWord, DeleteCommandUsage, c).
		AddOptions(c.index, c.studentID).
		EnforceOnePreamble()
}

// Execute resolves the addressed member and removes them.
func (c *DeleteCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	person, err := resolvePerson(roster, c.index, c.studentID, arg)
	if err != nil {
		return CommandResult{}, err
	}
	if err := roster.Remove(person); err != nil {
		return CommandResult{}, err
	}
	return CommandResult{
		Message: fmt.Sprintf(MessageDeleteSuccess, person),
		Mutated: true,
	}, nil
}
