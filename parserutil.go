// parserutil.go: Field parsers for the built-in commands
//
// These are the ParserFunc implementations the built-in commands register
// with their option descriptors. Each trims its raw input, validates it
// against the field's constraints, and fails with a coded value error
// carrying the constraint message. The parsing framework itself never looks
// inside these values.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"strconv"
	"strings"

	"github.com/agilira/go-errors"
)

// MessageInvalidIndex is the constraint text for non-positive indexes.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseName validates raw as a member name.
func ParseName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidName(trimmed) {
		return Name{}, errors.New(ErrCodeInvalidName, MessageNameConstraints)
	}
	return Name{FullName: trimmed}, nil
}

// ParsePhone validates raw as a phone number.
func ParsePhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidPhone(trimmed) {
		return Phone{}, errors.New(ErrCodeInvalidPhone, MessagePhoneConstraints)
	}
	return Phone{Value: trimmed}, nil
}

// ParseEmail validates raw as an email address.
func ParseEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidEmail(trimmed) {
		return Email{}, errors.New(ErrCodeInvalidEmail, MessageEmailConstraints)
	}
	return Email{Value: trimmed}, nil
}

// ParseStudentID validates raw as a student ID, checksum included.
func ParseStudentID(raw string) (StudentID, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidStudentID(trimmed) {
		return StudentID{}, errors.New(ErrCodeInvalidStudent, MessageStudentIDConstraints)
	}
	return StudentID{Value: trimmed}, nil
}

// ParseTag validates raw as a tag name.
func ParseTag(raw string) (Tag, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidTag(trimmed) {
		return Tag{}, errors.New(ErrCodeInvalidTag, MessageTagConstraints)
	}
	return Tag{Value: trimmed}, nil
}

// ParseIndex validates raw as a one-based list index.
func ParseIndex(raw string) (Index, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.Atoi(trimmed)
	if err != nil || value <= 0 || strings.HasPrefix(trimmed, "+") {
		return Index{}, errors.New(ErrCodeInvalidIndex, MessageInvalidIndex)
	}
	return IndexFromOneBased(value), nil
}

// ParseKeyword accepts any non-empty search keyword.
func ParseKeyword(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New(ErrCodeInvalidFormat, "Search keywords cannot be empty")
	}
	return trimmed, nil
}
