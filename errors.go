// errors.go: Error codes and helpers for GreyBook
//
// Every error produced by this package carries a GREYBOOK_* error code via
// go-errors. Two families exist:
//   - Format errors: the argument text violates the shape a command declared
//     (missing required option, duplicate prefix, wrong identifier count,
//     conflicting exclusive options). They always carry the command's usage
//     text so the caller can re-prompt with it.
//   - Value errors: a single raw value failed its own field parser. They
//     carry the field's constraint message instead of usage text.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for all GreyBook error conditions
const (
	ErrCodeInvalidFormat   = "GREYBOOK_INVALID_FORMAT"
	ErrCodeUnknownCommand  = "GREYBOOK_UNKNOWN_COMMAND"
	ErrCodeInvalidName     = "GREYBOOK_INVALID_NAME"
	ErrCodeInvalidPhone    = "GREYBOOK_INVALID_PHONE"
	ErrCodeInvalidEmail    = "GREYBOOK_INVALID_EMAIL"
	ErrCodeInvalidStudent  = "GREYBOOK_INVALID_STUDENT_ID"
	ErrCodeInvalidTag      = "GREYBOOK_INVALID_TAG"
	ErrCodeInvalidIndex    = "GREYBOOK_INVALID_INDEX"
	ErrCodeDuplicatePerson = "GREYBOOK_DUPLICATE_PERSON"
	ErrCodePersonNotFound  = "GREYBOOK_PERSON_NOT_FOUND"
	ErrCodeMissingFlag     = "GREYBOOK_MISSING_FLAG"
	ErrCodeStorageError    = "GREYBOOK_STORAGE_ERROR"
	ErrCodeInvalidSettings = "GREYBOOK_INVALID_SETTINGS"
	ErrCodeAuditError      = "GREYBOOK_AUDIT_ERROR"
)

// User-facing message templates
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
)

// formatError builds the format error every validation phase of the command
// parser reports: same code, same shape, carrying the command's usage text.
func formatError(usage string) error {
	return errors.New(ErrCodeInvalidFormat, fmt.Sprintf(MessageInvalidCommandFormat, usage))
}

// ErrorCode extracts the GREYBOOK_* code from an error.
// go-errors renders as "[CODE]: Message"; older wrapped errors may render
// as "CODE: Message". Returns the raw error text when no code is found.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()

	// Handle go-errors format: [CODE]: Message
	if len(errStr) > 3 && errStr[0] == '[' {
		for idx := 1; idx < len(errStr); idx++ {
			if errStr[idx] == ']' {
				return errStr[1:idx]
			}
		}
	}

	// Fallback for plain format: CODE: Message
	for idx := 0; idx < len(errStr); idx++ {
		if errStr[idx] == ':' {
			return errStr[:idx]
		}
	}

	return errStr
}

// IsFormatError reports whether err is a command-format error, i.e. one
// raised by the argument validation pipeline rather than by a field parser.
func IsFormatError(err error) bool {
	return ErrorCode(err) == ErrCodeInvalidFormat
}
