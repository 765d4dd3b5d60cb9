// command_unmark.go: Clears a member's attendance mark
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"
	"time"
)

// UnmarkCommandWord is the word that invokes the unmark command.
const UnmarkCommandWord = "unmark"

// UnmarkCommandUsage is the usage text reported on malformed invocations.
const UnmarkCommandUsage = UnmarkCommandWord + ": Clears a club member's attendance mark.\n" +
	"Parameters: INDEX (must be a positive integer) OR STUDENT_ID (format: A0000000Y)\n" +
	"Example: " + UnmarkCommandWord + " 1 OR " + UnmarkCommandWord + " A0123456X"

// MessageUnmarkSuccess is the result template on success.
const MessageUnmarkSuccess = "Cleared %s's Attendance"

// UnmarkCommand resets a member's attendance to unmarked.
type UnmarkCommand struct {
	index     *TypedOption[Index]
	studentID *TypedOption[StudentID]
}

// NewUnmarkCommand builds the command and its option descriptors.
func NewUnmarkCommand() *UnmarkCommand {
	return &UnmarkCommand{
		index:     OptionalSinglePreambleOption("INDEX", ParseIndex),
		studentID: OptionalSinglePreambleOption("STUDENT_ID", ParseStudentID),
	}
}

// AddToParser registers the unmark command's grammar.
func (c *UnmarkCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(UnmarkCommandWord, UnmarkCommandUsage, c).
		AddOptions(c.index, c.studentID).
		EnforceOnePreamble()
}

// Execute resolves the addressed member and clears their attendance.
func (c *UnmarkCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	person, err := resolvePerson(roster, c.index, c.studentID, arg)
	if err != nil {
		return CommandResult{}, err
	}

	cleared := person
	cleared.Attendance = AttendanceUnmarked
	cleared.MarkedAt = time.Time{}
	if err := roster.SetPerson(person, cleared); err != nil {
		return CommandResult{}, err
	}
	return CommandResult{
		Message: fmt.Sprintf(MessageUnmarkSuccess, cleared.Name),
		Mutated: true,
	}, nil
}
