// session.go: Interactive session tying parser, roster, storage and audit
//
// A Session owns the state of one running app: the registered command
// parser, the in-memory roster, its storage, and the audit trail. The CLI
// layer feeds it one input line at a time; the session parses, executes,
// persists after mutating commands, and records the result.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "strings"

// Session is the execution engine behind the interactive prompt.
type Session struct {
	parser  *GreyBookParser
	roster  *Roster
	storage *Storage
	audit   *AuditLogger
}

// NewSession loads the roster from storage and registers the built-in
// commands. The audit logger may be nil-configured; auditing is optional.
func NewSession(storage *Storage, audit *AuditLogger) (*Session, error) {
	roster, err := storage.Load()
	if err != nil {
		return nil, err
	}

	parser := NewGreyBookParser()
	RegisterBuiltinCommands(parser)

	return &Session{
		parser:  parser,
		roster:  roster,
		storage: storage,
		audit:   audit,
	}, nil
}

// Roster exposes the live roster, mainly for tests and export.
func (s *Session) Roster() *Roster { return s.roster }

// Parser exposes the command registry.
func (s *Session) Parser() *GreyBookParser { return s.parser }

// ExecuteLine parses and executes one input line. Mutating commands are
// persisted before their result is reported; if persisting fails the error
// surfaces in place of the command's own result so the user knows their
// change did not stick.
func (s *Session) ExecuteLine(line string) (CommandResult, error) {
	parsed, err := s.parser.ParseCommand(line)
	if err != nil {
		return CommandResult{}, err
	}

	result, err := parsed.Command().Execute(s.roster, parsed)
	if err != nil {
		return CommandResult{}, err
	}

	if result.Mutated {
		if err := s.storage.Save(s.roster); err != nil {
			return CommandResult{}, err
		}
		s.audit.LogMutation("roster_changed", firstWord(line), nil, result.Message)
	}
	s.audit.LogCommand(firstWord(line), result.Message)

	return result, nil
}

// Close flushes the audit trail and releases storage resources.
func (s *Session) Close() error {
	if s.audit != nil {
		if err := s.audit.Close(); err != nil {
			return err
		}
	}
	return s.storage.Close()
}

func firstWord(line string) string {
	word, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	return word
}
