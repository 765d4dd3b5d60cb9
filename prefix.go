// prefix.go: Argument prefix tokens for the GreyBook command language
//
// A Prefix is the short marker that introduces an option's value region in a
// free-text command, e.g. "n/" in "add n/John Doe p/98765432". Prefixes are
// plain immutable strings compared by value; the tokenizer only recognizes
// them at token boundaries so a "/" inside a value never starts a new option.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

// Prefix marks the start of an option's value region in raw argument text.
type Prefix string

// String returns the raw prefix token, e.g. "n/".
func (p Prefix) String() string { return string(p) }

// Command-language prefixes shared by the built-in commands.
const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixStudentID Prefix = "s/"
	PrefixTag       Prefix = "t/"

	// Attendance flags used by the mark command.
	PrefixPresent Prefix = "pr/"
	PrefixAbsent  Prefix = "ab/"
	PrefixLate    Prefix = "lt/"
	PrefixExcused Prefix = "ex/"
)
