// Package greybook implements a club member roster driven by free-text
// commands, built around a declarative command-argument parsing framework.
//
// # Architecture Overview
//
// GreyBook consists of four layers:
//  1. **Argument parsing framework**: prefixes, tokenizer, option
//     descriptors, and a fixed-order validation pipeline
//  2. **Domain model**: validated member fields (name, phone, email,
//     checksum-verified student ID, tags, attendance) and the roster
//  3. **Commands**: add, delete, list, find, mark, unmark, clear, help, exit
//  4. **Persistence and observability**: pluggable JSON/SQLite roster
//     storage, YAML preferences, and a JSONL audit trail
//
// # The Parsing Framework
//
// A command declares its argument grammar once, at startup, by registering
// option descriptors with a CommandParser:
//
//	name := greybook.RequiredPrefixOption(greybook.PrefixName, "NAME", greybook.ParseName)
//	tags := greybook.ZeroOrMorePrefixOption(greybook.PrefixTag, "TAG", greybook.ParseTag)
//	parser.NewCommand("add", usage, cmd).AddOptions(name, tags)
//
// On every invocation the raw argument text runs through a fixed pipeline:
// tokenization into a preamble plus per-prefix value lists, required and
// no-duplicate checks, per-option typed parsing, single-preamble
// enforcement, and exclusive-group enforcement. The phase order is part of
// the contract: it decides which error a malformed command reports.
//
// Typed values come back through the ParseResult:
//
//	person := greybook.Value(result, name)     // exactly one
//	labels := greybook.AllValues(result, tags) // zero or more
//
// Commands that accept alternative readings of the positional preamble
// (a list index or a student ID) declare both as optional single-preamble
// options and enforce that exactly one interpretation succeeds:
//
//	parser.NewCommand("delete", usage, cmd).
//		AddOptions(index, studentID).
//		EnforceOnePreamble()
//
// A failed interpretation of an optional preamble is treated as absent
// rather than as an error; this leniency is deliberate and is what lets
// several identifier readings coexist on one command.
//
// Mutual exclusion is never a property of an option. It exists only as a
// group declared at registration time:
//
//	parser.AddExclusiveOptions(present, absent, late, excused)
//
// # Error Model
//
// All errors carry GREYBOOK_* codes via go-errors. Validation-pipeline
// failures are format errors carrying the command's usage text; field
// parser failures carry the field's own constraint message. A failed parse
// never produces a partial result.
//
// # Concurrency
//
// Command registration happens once at startup; afterwards parser
// configuration is immutable and safely shared across sequential parse
// calls. Raw argument maps and parse results are scoped to a single call.
//
// Repository: https://github.com/greynekos/greybook
package greybook
