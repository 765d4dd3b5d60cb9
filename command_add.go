// command_add.go: Adds a member to the roster
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "fmt"

// AddCommandWord is the word that invokes the add command.
const AddCommandWord = "add"

// AddCommandUsage is the usage text reported on malformed add invocations.
const AddCommandUsage = AddCommandWord + ": Adds a person to the address book. " +
	"Parameters: n/NAME p/PHONE e/EMAIL s/STUDENTID [t/TAG]...\n" +
	"Example: " + AddCommandWord + " n/John Doe p/98765432 e/johnd@example.com s/A0000000X t/friends t/owesMoney"

// MessageAddSuccess is the result template on success.
const MessageAddSuccess = "New person added: %s"

// AddCommand adds a member with required contact fields and optional tags.
type AddCommand struct {
	name      *TypedOption[Name]
	phone     *TypedOption[Phone]
	email     *TypedOption[Email]
	studentID *TypedOption[StudentID]
	tags      *TypedOption[Tag]
}

// NewAddCommand builds the command and its option descriptors.
func NewAddCommand() *AddCommand {
	return &AddCommand{
		name:      RequiredPrefixOption(PrefixName, "NAME", ParseName),
		phone:     RequiredPrefixOption(PrefixPhone, "PHONE", ParsePhone),
		email:     RequiredPrefixOption(PrefixEmail, "EMAIL", ParseEmail),
		studentID: RequiredPrefixOption(PrefixStudentID, "STUDENTID", ParseStudentID),
		tags:      ZeroOrMorePrefixOption(PrefixTag, "TAG", ParseTag),
	}
}

// AddToParser registers the add command's grammar.
func (c *AddCommand) AddToParser(parser *GreyBookParser) {
	parser.NewCommand(AddCommandWord, AddCommandUsage, c).
		AddOptions(c.name, c.phone, c.email, c.studentID, c.tags)
}

// Execute builds the member from parsed arguments and adds it.
func (c *AddCommand) Execute(roster *Roster, arg *ParseResult) (CommandResult, error) {
	toAdd := Person{
		Name:      Value(arg, c.name),
		Phone:     Value(arg, c.phone),
		Email:     Value(arg, c.email),
		StudentID: Value(arg, c.studentID),
		Tags:      AllValues(arg, c.tags),
	}

	if err := roster.Add(toAdd); err != nil {
		return CommandResult{}, err
	}
	return CommandResult{
		Message: fmt.Sprintf(MessageAddSuccess, toAdd),
		Mutated: true,
	}, nil
}
