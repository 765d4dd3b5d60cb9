// result.go: Typed parse results for GreyBook commands
//
// A ParseResult is the read-only outcome of one successful parse: every
// registered option mapped to the ordered typed values its field parser
// produced (an empty list meaning the option was absent). Results are built
// once, handed to the command's execute step, and discarded.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "fmt"

// ParseResult maps each registered option to its parsed values.
// It is immutable after construction; a result only ever exists for a parse
// that passed every validation phase.
type ParseResult struct {
	command Command
	values  map[Option][]any
}

// Command returns the command this result was parsed for.
func (r *ParseResult) Command() Command { return r.command }

// Present reports whether option produced at least one value.
// Looking up an option that was never registered with the command parser is
// a programming error and panics.
func (r *ParseResult) Present(option Option) bool {
	return len(r.lookup(option)) > 0
}

func (r *ParseResult) lookup(option Option) []any {
	values, ok := r.values[option]
	if !ok {
		panic(fmt.Sprintf("greybook: option %q was not registered with this command", option.Name()))
	}
	return values
}

// Value returns the single parsed value of a required option.
// Panics if the option is unregistered; a required option that passed
// validation always has exactly one value.
func Value[T any](r *ParseResult, option *TypedOption[T]) T {
	values := r.lookup(option)
	if len(values) == 0 {
		panic(fmt.Sprintf("greybook: required option %q has no value", option.Name()))
	}
	return values[0].(T)
}

// OptionalValue returns the parsed value of a zero-or-one option and whether
// it was present.
func OptionalValue[T any](r *ParseResult, option *TypedOption[T]) (T, bool) {
	values := r.lookup(option)
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[0].(T), true
}

// AllValues returns every parsed value of a repeatable option in input
// order. The slice is a copy; mutating it does not affect the result.
func AllValues[T any](r *ParseResult, option *TypedOption[T]) []T {
	values := r.lookup(option)
	typed := make([]T, 0, len(values))
	for _, v := range values {
		typed = append(typed, v.(T))
	}
	return typed
}
