// studentid.go: Student ID with checksum validation
//
// Student IDs come in two shapes: A-prefixed IDs with exactly seven digits,
// and U-prefixed NUSNET IDs with six or seven digits. Both end in a checksum
// letter computed from a weighted digit sum over the last six significant
// digits. Seven-digit U IDs carry a filler third digit that is discarded
// before the checksum is verified.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"
	"regexp"
)

// MessageStudentIDConstraints is the constraint text for invalid IDs.
const MessageStudentIDConstraints = "Student IDs should be in the format A0000000Y, where the first letter must be 'A', " +
	"followed by exactly 7 digits, and ending with any English letter (A-Z or a-z)"

// studentIDChecksums is the checksum alphabet indexed by weighted sum mod 13.
const studentIDChecksums = "YXWURNMLJHEAB"

var studentIDRegex = regexp.MustCompile(`^(?:A\d{7}|U\d{6,7})[YXWURNMLJHEAB]$`)

// StudentID is a member's validated, checksum-verified student ID.
type StudentID struct {
	Value string `json:"studentId" yaml:"studentId"`
}

func (s StudentID) String() string { return s.Value }

// IsValidStudentID reports whether test is a well-formed student ID with a
// correct checksum letter.
func IsValidStudentID(test string) bool {
	if !studentIDRegex.MatchString(test) {
		return false
	}
	return hasValidChecksum(test)
}

// StudentIDChecksum computes the checksum letter for an ID given without its
// checksum character. The first six digits of U IDs are weighted 0,1,3,1,2,7;
// A IDs weight their last six digits equally.
func StudentIDChecksum(id string) (byte, error) {
	if len(id) < 7 {
		return 0, fmt.Errorf("student ID must be at least 7 characters long, got %q", id)
	}

	var weights [6]int
	if id[0] == 'U' {
		weights = [6]int{0, 1, 3, 1, 2, 7}
	} else {
		weights = [6]int{1, 1, 1, 1, 1, 1}
	}

	digits := id[len(id)-6:]
	sum := 0
	for i := 0; i < 6; i++ {
		sum += weights[i] * int(digits[i]-'0')
	}
	return studentIDChecksums[sum%13], nil
}

func hasValidChecksum(test string) bool {
	checksum := test[len(test)-1]
	values := test[:len(test)-1]

	// Discard the filler third digit of seven-digit U IDs
	// (e.g. U1x45678 -> U145678).
	if values[0] == 'U' && len(values) == 8 {
		values = values[:3] + values[4:]
	}

	expected, err := StudentIDChecksum(values)
	if err != nil {
		return false
	}
	return checksum == expected
}
