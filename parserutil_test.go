// parserutil_test.go - Tests for the field parsers
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "testing"

func TestParseIndex(t *testing.T) {
	valid := map[string]int{
		"1":     1,
		"3":     3,
		"  42 ": 42,
	}
	for raw, want := range valid {
		index, err := ParseIndex(raw)
		if err != nil {
			t.Errorf("ParseIndex(%q) failed: %v", raw, err)
			continue
		}
		if index.OneBased() != want {
			t.Errorf("ParseIndex(%q) = %d, want %d", raw, index.OneBased(), want)
		}
	}

	invalid := []string{"", "0", "-1", "+1", "abc", "1.5", "10 a"}
	for _, raw := range invalid {
		_, err := ParseIndex(raw)
		if err == nil {
			t.Errorf("ParseIndex(%q): expected error", raw)
			continue
		}
		if got := ErrorCode(err); got != ErrCodeInvalidIndex {
			t.Errorf("ParseIndex(%q): expected %s, got %s", raw, ErrCodeInvalidIndex, got)
		}
	}
}

func TestIndexConversions(t *testing.T) {
	index := IndexFromOneBased(3)
	if index.ZeroBased() != 2 {
		t.Errorf("Expected zero-based 2, got %d", index.ZeroBased())
	}
	if index.OneBased() != 3 {
		t.Errorf("Expected one-based 3, got %d", index.OneBased())
	}
}

func TestFieldParsers_TrimWhitespace(t *testing.T) {
	name, err := ParseName("  Alice Pauline  ")
	if err != nil || name.FullName != "Alice Pauline" {
		t.Errorf("Expected trimmed name, got %v err=%v", name, err)
	}

	phone, err := ParsePhone(" 94351253 ")
	if err != nil || phone.Value != "94351253" {
		t.Errorf("Expected trimmed phone, got %v err=%v", phone, err)
	}

	id, err := ParseStudentID(" A0000000Y ")
	if err != nil || id.Value != "A0000000Y" {
		t.Errorf("Expected trimmed student ID, got %v err=%v", id, err)
	}
}

func TestFieldParsers_ErrorCodes(t *testing.T) {
	tests := []struct {
		raw      string
		wantCode string
		parse    func(string) error
	}{
		{"^", ErrCodeInvalidName, func(s string) error { _, err := ParseName(s); return err }},
		{"12", ErrCodeInvalidPhone, func(s string) error { _, err := ParsePhone(s); return err }},
		{"no-at-sign", ErrCodeInvalidEmail, func(s string) error { _, err := ParseEmail(s); return err }},
		{"A0123456X", ErrCodeInvalidStudent, func(s string) error { _, err := ParseStudentID(s); return err }},
		{"bad tag", ErrCodeInvalidTag, func(s string) error { _, err := ParseTag(s); return err }},
	}

	for _, tt := range tests {
		err := tt.parse(tt.raw)
		if err == nil {
			t.Errorf("Input %q: expected error", tt.raw)
			continue
		}
		if got := ErrorCode(err); got != tt.wantCode {
			t.Errorf("Input %q: expected %s, got %s", tt.raw, tt.wantCode, got)
		}
	}
}

func TestParseKeyword(t *testing.T) {
	keyword, err := ParseKeyword(" alice ")
	if err != nil || keyword != "alice" {
		t.Errorf("Expected trimmed keyword, got %q err=%v", keyword, err)
	}
	if _, err := ParseKeyword("   "); err == nil {
		t.Error("Expected error for blank keyword")
	}
}

func TestParseAttendanceStatus(t *testing.T) {
	tests := map[string]AttendanceStatus{
		"Present":  AttendancePresent,
		"Absent":   AttendanceAbsent,
		"Late":     AttendanceLate,
		"Excused":  AttendanceExcused,
		"":         AttendanceUnmarked,
		"garbage":  AttendanceUnmarked,
		"Unmarked": AttendanceUnmarked,
	}
	for raw, want := range tests {
		if got := ParseAttendanceStatus(raw); got != want {
			t.Errorf("ParseAttendanceStatus(%q) = %v, want %v", raw, got, want)
		}
	}
}
