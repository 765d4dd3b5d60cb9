// option.go: Declarative option descriptors for GreyBook commands
//
// An option describes one argument slot of a command: where it lives in the
// raw input (behind a prefix, or in the positional preamble), how many times
// it may occur, whether it is required, and how its raw text becomes a typed
// value. Descriptors are immutable value objects built once per command at
// startup; during parsing they serve only as lookup keys and as the source
// of the field parser to run.
//
// The descriptor is a flat struct of flags rather than a type hierarchy.
// Mutual exclusion in particular is not a property of an option: it only
// exists as a group declared on the command parser at registration time.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

// optionKind tells the parser where an option's raw text is found.
type optionKind uint8

const (
	kindPrefix                 optionKind = iota // value(s) behind the option's prefix
	kindSinglePreamble                           // whole preamble, exactly once
	kindOptionalSinglePreamble                   // whole preamble, best effort
	kindOneOrMorePreamble                        // preamble split on whitespace
)

// optionSpec is the flag set shared by every descriptor.
type optionSpec struct {
	kind        optionKind
	prefix      Prefix // empty for preamble options
	name        string // display name used in usage text, e.g. "NAME"
	required    bool   // prefix must occur at least once
	noDuplicate bool   // prefix may occur at most once
}

// Option is the descriptor interface the command parser and parse result
// operate on. Concrete descriptors are created through the typed
// constructors below; identity (pointer equality) is what ties a parsed
// value back to the option that produced it.
type Option interface {
	// Prefix returns the option's prefix token, or "" for preamble options.
	Prefix() Prefix
	// Name returns the display name used in usage fragments.
	Name() string

	spec() optionSpec
	parseRaw(raw string) (any, error)
}

// ParserFunc turns one raw string into a typed value or fails with a value
// error specific to the field's constraints. The parsing framework never
// inspects the produced value; all semantic validation lives here.
type ParserFunc[T any] func(raw string) (T, error)

// TypedOption is the concrete descriptor for values of type T.
type TypedOption[T any] struct {
	optionSpec
	parse ParserFunc[T]
}

func (o *TypedOption[T]) Prefix() Prefix   { return o.optionSpec.prefix }
func (o *TypedOption[T]) Name() string     { return o.optionSpec.name }
func (o *TypedOption[T]) spec() optionSpec { return o.optionSpec }

func (o *TypedOption[T]) parseRaw(raw string) (any, error) {
	value, err := o.parse(raw)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// RequiredPrefixOption declares a prefix-anchored option that must occur
// exactly once, e.g. n/NAME on the add command.
func RequiredPrefixOption[T any](prefix Prefix, name string, parse ParserFunc[T]) *TypedOption[T] {
	return &TypedOption[T]{
		optionSpec: optionSpec{kind: kindPrefix, prefix: prefix, name: name, required: true, noDuplicate: true},
		parse:      parse,
	}
}

// OptionalPrefixOption declares a prefix-anchored option that may occur at
// most once.
func OptionalPrefixOption[T any](prefix Prefix, name string, parse ParserFunc[T]) *TypedOption[T] {
	return &TypedOption[T]{
		optionSpec: optionSpec{kind: kindPrefix, prefix: prefix, name: name, noDuplicate: true},
		parse:      parse,
	}
}

// ZeroOrMorePrefixOption declares a prefix-anchored option that may occur
// any number of times, e.g. t/TAG.
func ZeroOrMorePrefixOption[T any](prefix Prefix, name string, parse ParserFunc[T]) *TypedOption[T] {
	return &TypedOption[T]{
		optionSpec: optionSpec{kind: kindPrefix, prefix: prefix, name: name},
		parse:      parse,
	}
}

// OneOrMorePrefixOption declares a prefix-anchored option that must occur at
// least once and may repeat.
func OneOrMorePrefixOption[T any](prefix Prefix, name string, parse ParserFunc[T]) *TypedOption[T] {
	return &TypedOption[T]{
		optionSpec: optionSpec{kind: kindPrefix, prefix: prefix, name: name, required: true},
		parse:      parse,
	}
}

// SinglePreambleOption declares that the whole preamble is this option's
// value. An empty preamble is surfaced to the field parser, which is
// expected to reject it.
func SinglePreambleOption[T any](name string, parse ParserFunc[T]) *TypedOption[T] {
	return &TypedOption[T]{
		optionSpec: optionSpec{kind: kindSinglePreamble, name: name},
		parse:      parse,
	}
}

// OptionalSinglePreambleOption declares a best-effort interpretation of the
// preamble. A non-empty preamble that fails this option's parser makes the
// option absent instead of failing the command, so several alternative
// identifier readings (say, a list index and a student ID) can coexist on
// one command. Commands relying on this usually also call
// EnforceOnePreamble to require that exactly one reading succeeds.
func OptionalSinglePreambleOption[T any](name string, parse ParserFunc[T]) *TypedOption[T] {
	return &TypedOption[T]{
		optionSpec: optionSpec{kind: kindOptionalSinglePreamble, name: name},
		parse:      parse,
	}
}

// OneOrMorePreambleOption declares that the preamble is a whitespace
// separated list of values, e.g. the keywords of the find command.
func OneOrMorePreambleOption[T any](name string, parse ParserFunc[T]) *TypedOption[T] {
	return &TypedOption[T]{
		optionSpec: optionSpec{kind: kindOneOrMorePreamble, name: name},
		parse:      parse,
	}
}

// tryParseRaw runs the option's field parser and reports success instead of
// propagating the failure. This is the explicit form of the optional
// preamble leniency: the caller decides that a failed interpretation means
// "absent", not "error".
func tryParseRaw(option Option, raw string) (any, bool) {
	value, err := option.parseRaw(raw)
	if err != nil {
		return nil, false
	}
	return value, true
}
