// command_mark.go: Marks a member's attendance
//
// The mark command exercises every advanced piece of the argument grammar:
// the preamble is read as either an index or a student ID with exactly one
// reading enforced, and the four attendance flags form a declared exclusive
// group so at most one can be supplied.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"

	"github.com/agilira/go-errors"
	"github.com/agilira/go-timecache"
)

// MarkCommandWord is the word that invokes the mark command.
const MarkCommandWord = "mark"

// MarkCommandUsage is the usage text reported on malformed invocations.
const MarkCommandUsage = MarkCommandWord + ": Marks a club member's attendance.\n" +
	"Parameters: INDEX (must be a positive integer) OR STUDENT_ID (format: A0000000Y)\n" +
	"Flags: pr/ for Present, ab/ for Absent, lt/ for Late, ex/ for Excused\n" +
	"Example: " + MarkCommandWord + " 1 pr/ OR " + MarkCommandWord + " A0123456X ab/"

// MessageMarkSuccess is the result template on success.
const MessageMarkSuccess = "Marked %s's Attendance: %s"

// MessageMissingAttendanceFlag is reported when no flag was supplied.
const MessageMissingAttendanceFlag = "Missing attendance flag. Please provide a valid flag:\n" +
	"\tpr/: Present\n\tab/: Absent\n\tlt/: Late\n\tex/: Excused"

// MarkCommand sets a member's attendance status.
type MarkCommand struct {
	index     *TypedOption[Index]
	studentID *TypedOption[StudentID]
	present   *TypedOption[AttendanceStatus]
	absent    *TypedOption[AttendanceStatus]
	late      *TypedOption[AttendanceStatus]
	excused   *TypedOption[AttendanceStatus]
}

// statusFlag builds the parser for a bare attendance flag: the flag carries
// no value text, so whatever follows the prefix maps to a fixed status.
func statusFlag(status AttendanceStatus) ParserFunc[AttendanceStatus] {
	return func(string) (AttendanceStatus, error) { return status, nil }
}

// NewMarkCommand builds the command and its option descriptors.
func NewMarkCommand() *MarkCommand {
	return &MarkCommand{
		index:     OptionalSinglePreambleOption("INDEX", ParseIndex),
		studentID: OptionalSinglePreambleOption("STUDENT_ID", ParseStudentID),
		present:   OptionalPrefixOption(PrefixPresent, "Present", statusFlag(AttendancePresent)),
		absent:    OptionalPrefixOption(PrefixAbsent, "Absent", statusFlag(AttendanceAbsent)),
		late:      OptionalPrefixOption(PrefixLate, "Late", statusFlag(AttendanceLate)),
		excused:   OptionalPrefixOption(PrefixExcused, "Excused", statusFlag(AttendanceExcused)),
	}
}

// AddToParser registers the mark command's grammar.
func (c *MarkCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(MarkCommandWord, MarkCommandUsage, c).
		AddOptions(c.index, c.studentID, c.present, c.absent, c.late, c.excused).
		EnforceOnePreamble().
		AddExclusiveOptions(c.present, c.absent, c.late, c.excused)
}

// Execute resolves the addressed member and replaces their attendance.
func (c *MarkCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	status := c.suppliedStatus(arg)
	if status == AttendanceUnmarked {
		return CommandResult{}, errors.New(ErrCodeMissingFlag, MessageMissingAttendanceFlag)
	}

	person, err := resolvePerson(roster, c.index, c.studentID, arg)
	if err != nil {
		return CommandResult{}, err
	}

	marked := person
	marked.Attendance = status
	marked.MarkedAt = timecache.CachedTime()
	if err := roster.SetPerson(person, marked); err != nil {
		return CommandResult{}, err
	}
	return CommandResult{
		Message: fmt.Sprintf(MessageMarkSuccess, marked.Name, status),
		Mutated: true,
	}, nil
}

// suppliedStatus returns the status of the one present flag, or
// AttendanceUnmarked when none was supplied. More than one present flag
// cannot reach here; the exclusive group rejects it during parsing.
func (c *MarkCommand) suppliedStatus(arg *ParseResult) AttendanceStatus {
	for _, flag := range []*TypedOption[AttendanceStatus]{c.present, c.absent, c.late, c.excused} {
		if status, ok := OptionalValue(arg, flag); ok {
			return status
		}
	}
	return AttendanceUnmarked
}
