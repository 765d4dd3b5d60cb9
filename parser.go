// parser.go: Command argument parser for GreyBook
//
// CommandParser turns the raw argument text of one command invocation into a
// typed ParseResult, running a fixed pipeline of validation phases. The
// phase order is part of the contract: it decides which of several plausible
// errors a malformed command reports.
//
//  1. tokenize the raw text into a preamble and per-prefix value lists
//  2. every required prefix option must be present          -> format error
//  3. no-duplicate prefix options must occur at most once   -> format error
//  4. run each option's field parser over its raw values    -> value error
//     (optional single preamble interpretations that fail parse are
//     treated as absent instead, see OptionalSinglePreambleOption)
//  5. if enforced, exactly one preamble identifier present  -> format error
//  6. each exclusive group holds at most one present option -> format error
//  7. assemble the ParseResult
//
// Parser configuration (options, groups, usage text) is built once per
// command at startup and never mutated by Parse, so a single CommandParser
// is safely reused across any number of sequential parse calls.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"
	"strings"

	"github.com/agilira/go-errors"
)

// CommandParser holds the declared argument grammar of one command and
// parses raw argument text against it.
type CommandParser struct {
	usage   string
	command Command

	options  []Option
	prefixes map[Prefix]Option // registered prefix options, for collision checks

	exclusiveGroups    [][]Option
	enforceOnePreamble bool
}

func newCommandParser(usage string, command Command) *CommandParser {
	return &CommandParser{
		usage:    usage,
		command:  command,
		prefixes: make(map[Prefix]Option),
	}
}

// Usage returns the usage text reported with every format error.
func (cp *CommandParser) Usage() string { return cp.usage }

// AddOptions registers the given option descriptors with this parser.
// Registering two prefix options with the same prefix is a programming
// error and panics; commands are wired once at startup, so a collision can
// never reach a user.
func (cp *CommandParser) AddOptions(options ...Option) *CommandParser {
	for _, option := range options {
		if prefix := option.Prefix(); prefix != "" {
			if _, taken := cp.prefixes[prefix]; taken {
				panic(fmt.Sprintf("greybook: prefix %q registered twice on one command", prefix))
			}
			cp.prefixes[prefix] = option
		}
		cp.options = append(cp.options, option)
	}
	return cp
}

// EnforceOnePreamble requires that exactly one of the command's optional
// single-preamble options produces a value. This is how a command accepts
// "INDEX or STUDENT_ID" while rejecting both-present and neither-present.
func (cp *CommandParser) EnforceOnePreamble() *CommandParser {
	cp.enforceOnePreamble = true
	return cp
}

// AddExclusiveOptions declares that at most one of the given options may be
// present in a single invocation. Exclusivity exists only through these
// declared groups; it is never inferred from the options themselves.
func (cp *CommandParser) AddExclusiveOptions(options ...Option) *CommandParser {
	cp.exclusiveGroups = append(cp.exclusiveGroups, options)
	return cp
}

// Parse runs the validation pipeline over the raw argument text and returns
// the typed result, or the first error a phase reports. A failed parse
// never yields a partial result.
func (cp *CommandParser) Parse(arguments string) (*ParseResult, error) {
	raw := tokenize(arguments, cp.registeredPrefixes()...)

	if err := cp.verifyRequiredPresent(raw); err != nil {
		return nil, err
	}
	if err := cp.verifyNoDuplicates(raw); err != nil {
		return nil, err
	}

	values, err := cp.parseOptionValues(raw)
	if err != nil {
		return nil, err
	}

	if cp.enforceOnePreamble {
		if err := cp.verifyOnePreamble(values); err != nil {
			return nil, err
		}
	}
	if err := cp.verifyExclusiveGroups(values); err != nil {
		return nil, err
	}

	return &ParseResult{command: cp.command, values: values}, nil
}

func (cp *CommandParser) registeredPrefixes() []Prefix {
	prefixes := make([]Prefix, 0, len(cp.prefixes))
	for _, option := range cp.options {
		if option.Prefix() != "" {
			prefixes = append(prefixes, option.Prefix())
		}
	}
	return prefixes
}

// verifyRequiredPresent checks that every required prefix option occurred at
// least once. Absence is reported generically through the usage text, not
// per missing prefix.
func (cp *CommandParser) verifyRequiredPresent(raw *rawArguments) error {
	for _, option := range cp.options {
		if option.spec().required && option.Prefix() != "" && !raw.Present(option.Prefix()) {
			return formatError(cp.usage)
		}
	}
	return nil
}

// verifyNoDuplicates rejects repeated occurrences of prefixes whose options
// forbid duplication, even when every occurrence would parse cleanly.
func (cp *CommandParser) verifyNoDuplicates(raw *rawArguments) error {
	for _, option := range cp.options {
		if option.spec().noDuplicate && option.Prefix() != "" && len(raw.AllValues(option.Prefix())) > 1 {
			return formatError(cp.usage)
		}
	}
	return nil
}

// parseOptionValues runs each option's field parser over the raw segments
// its location kind selects. Any field parser failure aborts the parse,
// with the single documented exception of optional single-preamble options,
// whose failed interpretation is discarded via tryParseRaw.
func (cp *CommandParser) parseOptionValues(raw *rawArguments) (map[Option][]any, error) {
	values := make(map[Option][]any, len(cp.options))
	for _, option := range cp.options {
		var parsed []any
		switch option.spec().kind {
		case kindOneOrMorePreamble:
			for _, token := range splitPreamble(raw.Preamble()) {
				value, err := option.parseRaw(token)
				if err != nil {
					return nil, err
				}
				parsed = append(parsed, value)
			}

		case kindSinglePreamble:
			value, err := option.parseRaw(raw.Preamble())
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, value)

		case kindOptionalSinglePreamble:
			if preamble := raw.Preamble(); preamble != "" {
				if value, ok := tryParseRaw(option, preamble); ok {
					parsed = append(parsed, value)
				}
			}

		case kindPrefix:
			for _, segment := range raw.AllValues(option.Prefix()) {
				value, err := option.parseRaw(segment)
				if err != nil {
					return nil, err
				}
				parsed = append(parsed, value)
			}
		}
		values[option] = parsed
	}
	return values, nil
}

// splitPreamble cuts the preamble into whitespace separated tokens. An empty
// preamble yields one empty token so a one-or-more option still runs its
// field parser, which rejects the missing value with its own message.
func splitPreamble(preamble string) []string {
	tokens := strings.Fields(preamble)
	if len(tokens) == 0 {
		return []string{""}
	}
	return tokens
}

// verifyOnePreamble checks that exactly one optional single-preamble option
// produced a value; zero and more-than-one are both format errors.
func (cp *CommandParser) verifyOnePreamble(values map[Option][]any) error {
	present := 0
	for _, option := range cp.options {
		if option.spec().kind == kindOptionalSinglePreamble && len(values[option]) > 0 {
			present++
		}
	}
	if present != 1 {
		return formatError(cp.usage)
	}
	return nil
}

// verifyExclusiveGroups checks every declared group for at most one present
// member. A group with no present member is fine unless one of its members
// is required, which phase 2 already enforced.
func (cp *CommandParser) verifyExclusiveGroups(values map[Option][]any) error {
	for _, group := range cp.exclusiveGroups {
		present := 0
		for _, option := range group {
			if len(values[option]) > 0 {
				present++
			}
		}
		if present > 1 {
			return formatError(cp.usage)
		}
	}
	return nil
}

// GreyBookParser routes full user input lines to the command parsers the
// registered commands declared. Commands register themselves once at
// startup; after that the parser is read-only shared state.
type GreyBookParser struct {
	parsers map[string]*CommandParser
	order   []string // command words in registration order, for help output
}

// NewGreyBookParser returns an empty command registry.
func NewGreyBookParser() *GreyBookParser {
	return &GreyBookParser{parsers: make(map[string]*CommandParser)}
}

// NewCommand registers a command word with its usage text and returns the
// CommandParser the command configures with its options. Registering the
// same word twice panics.
func (p *GreyBookParser) NewCommand(word, usage string, command Command) *CommandParser {
	if _, taken := p.parsers[word]; taken {
		panic(fmt.Sprintf("greybook: command word %q registered twice", word))
	}
	parser := newCommandParser(usage, command)
	p.parsers[word] = parser
	p.order = append(p.order, word)
	return parser
}

// CommandWords returns the registered command words in registration order.
func (p *GreyBookParser) CommandWords() []string {
	words := make([]string, len(p.order))
	copy(words, p.order)
	return words
}

// UsageFor returns the usage text of a registered command word.
func (p *GreyBookParser) UsageFor(word string) (string, bool) {
	parser, ok := p.parsers[word]
	if !ok {
		return "", false
	}
	return parser.usage, true
}

// ParseCommand splits a full input line into command word and argument text
// and parses the arguments with the word's registered CommandParser.
func (p *GreyBookParser) ParseCommand(userInput string) (*ParseResult, error) {
	trimmed := strings.TrimSpace(userInput)
	if trimmed == "" {
		return nil, errors.New(ErrCodeUnknownCommand, MessageUnknownCommand)
	}

	word, arguments, _ := strings.Cut(trimmed, " ")
	parser, ok := p.parsers[word]
	if !ok {
		return nil, errors.New(ErrCodeUnknownCommand, MessageUnknownCommand)
	}
	return parser.Parse(arguments)
}
