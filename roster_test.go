// roster_test.go - Tests for the in-memory roster
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import "testing"

func testPerson(name, studentID string) Person {
	return Person{
		Name:      Name{FullName: name},
		Phone:     Phone{Value: "94351253"},
		Email:     Email{Value: "member@example.com"},
		StudentID: StudentID{Value: studentID},
	}
}

func TestRoster_AddAndDuplicate(t *testing.T) {
	roster := NewRoster()
	alice := testPerson("Alice Pauline", "A0000000Y")

	if err := roster.Add(alice); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if roster.Len() != 1 {
		t.Fatalf("Expected 1 member, got %d", roster.Len())
	}

	// Same student ID with different fields is still a duplicate.
	clone := alice
	clone.Name = Name{FullName: "Alice P."}
	err := roster.Add(clone)
	if err == nil {
		t.Fatal("Expected duplicate error, got nil")
	}
	if got := ErrorCode(err); got != ErrCodeDuplicatePerson {
		t.Errorf("Expected %s, got %s", ErrCodeDuplicatePerson, got)
	}
	if roster.Len() != 1 {
		t.Errorf("Failed add must not grow the roster, got %d members", roster.Len())
	}
}

func TestRoster_RemoveAndNotFound(t *testing.T) {
	roster := NewRoster()
	alice := testPerson("Alice Pauline", "A0000000Y")
	bob := testPerson("Bob Choo", "A0123456J")
	_ = roster.Add(alice)
	_ = roster.Add(bob)

	if err := roster.Remove(alice); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if roster.Contains(alice) {
		t.Error("Removed member still present")
	}

	err := roster.Remove(alice)
	if err == nil || ErrorCode(err) != ErrCodePersonNotFound {
		t.Errorf("Expected %s, got %v", ErrCodePersonNotFound, err)
	}
}

func TestRoster_SetPerson(t *testing.T) {
	roster := NewRoster()
	alice := testPerson("Alice Pauline", "A0000000Y")
	_ = roster.Add(alice)

	edited := alice
	edited.Attendance = AttendanceLate
	if err := roster.SetPerson(alice, edited); err != nil {
		t.Fatalf("SetPerson failed: %v", err)
	}
	got, ok := roster.ByStudentID(alice.StudentID)
	if !ok || got.Attendance != AttendanceLate {
		t.Errorf("Expected replaced record with Late attendance, got %v ok=%v", got, ok)
	}

	missing := testPerson("Ghost", "A1111111M")
	if err := roster.SetPerson(missing, missing); err == nil {
		t.Error("Expected not-found error for absent target")
	}
}

func TestRoster_ByIndex(t *testing.T) {
	roster := NewRoster()
	alice := testPerson("Alice Pauline", "A0000000Y")
	bob := testPerson("Bob Choo", "A0123456J")
	_ = roster.Add(alice)
	_ = roster.Add(bob)

	got, ok := roster.ByIndex(IndexFromOneBased(2))
	if !ok || !got.IsSamePerson(bob) {
		t.Errorf("Expected Bob at displayed index 2, got %v ok=%v", got, ok)
	}
	if _, ok := roster.ByIndex(IndexFromOneBased(3)); ok {
		t.Error("Expected out-of-range index to miss")
	}
}

func TestRoster_Find(t *testing.T) {
	roster := NewRoster()
	_ = roster.Add(testPerson("Alice Pauline", "A0000000Y"))
	_ = roster.Add(testPerson("Benson Meier", "A0123456J"))
	_ = roster.Add(testPerson("Daniel Meier", "A1111111M"))

	// Case-insensitive, any keyword.
	matches := roster.Find([]string{"MEIER"})
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches for MEIER, got %d", len(matches))
	}

	// Whole words only; substrings do not match.
	if matches := roster.Find([]string{"Mei"}); len(matches) != 0 {
		t.Errorf("Expected no substring matches, got %d", len(matches))
	}

	matches = roster.Find([]string{"alice", "daniel"})
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches for multiple keywords, got %d", len(matches))
	}
}

func TestRoster_PersonsIsACopy(t *testing.T) {
	roster := NewRoster()
	_ = roster.Add(testPerson("Alice Pauline", "A0000000Y"))

	snapshot := roster.Persons()
	snapshot[0].Name = Name{FullName: "Mutated"}

	if roster.Persons()[0].Name.FullName != "Alice Pauline" {
		t.Error("Mutating the snapshot must not affect the roster")
	}
}

func TestRoster_Clear(t *testing.T) {
	roster := NewRoster()
	_ = roster.Add(testPerson("Alice Pauline", "A0000000Y"))
	roster.Clear()
	if roster.Len() != 0 {
		t.Errorf("Expected empty roster after Clear, got %d", roster.Len())
	}
}
