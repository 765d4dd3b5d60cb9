// roster.go: In-memory club member roster
//
// The roster keeps members in insertion order and unique by student ID.
// Commands mutate it only through the methods here; persistence is layered
// on top by the storage backends.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"strings"

	"github.com/agilira/go-errors"
)

// Roster failure messages.
const (
	MessageDuplicatePerson = "This person already exists in the address book"
	MessagePersonNotFound  = "Error, user does not exist."
)

// Roster is the ordered, duplicate-free member list.
type Roster struct {
	persons []Person
}

// NewRoster returns an empty roster.
func NewRoster() *Roster { return &Roster{} }

// Persons returns a copy of the member list in insertion order.
func (r *Roster) Persons() []Person {
	out := make([]Person, len(r.persons))
	copy(out, r.persons)
	return out
}

// Len returns the number of members.
func (r *Roster) Len() int { return len(r.persons) }

// Contains reports whether a member with the same student ID exists.
func (r *Roster) Contains(p Person) bool {
	for _, existing := range r.persons {
		if existing.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// Add appends a new member, rejecting duplicates by student ID.
func (r *Roster) Add(p Person) error {
	if r.Contains(p) {
		return errors.New(ErrCodeDuplicatePerson, MessageDuplicatePerson)
	}
	r.persons = append(r.persons, p)
	return nil
}

// SetPerson replaces target with edited in place.
func (r *Roster) SetPerson(target, edited Person) error {
	for i, existing := range r.persons {
		if existing.IsSamePerson(target) {
			r.persons[i] = edited
			return nil
		}
	}
	return errors.New(ErrCodePersonNotFound, MessagePersonNotFound)
}

// Remove deletes the member with target's student ID.
func (r *Roster) Remove(target Person) error {
	for i, existing := range r.persons {
		if existing.IsSamePerson(target) {
			r.persons = append(r.persons[:i], r.persons[i+1:]...)
			return nil
		}
	}
	return errors.New(ErrCodePersonNotFound, MessagePersonNotFound)
}

// Clear removes every member.
func (r *Roster) Clear() { r.persons = nil }

// ByIndex returns the member at the given displayed index.
func (r *Roster) ByIndex(index Index) (Person, bool) {
	if index.ZeroBased() < 0 || index.ZeroBased() >= len(r.persons) {
		return Person{}, false
	}
	return r.persons[index.ZeroBased()], true
}

// ByStudentID returns the member with the given student ID.
func (r *Roster) ByStudentID(id StudentID) (Person, bool) {
	for _, existing := range r.persons {
		if existing.StudentID == id {
			return existing, true
		}
	}
	return Person{}, false
}

// Find returns the members whose name contains any of the keywords as a
// whole, case-insensitive word.
func (r *Roster) Find(keywords []string) []Person {
	var matches []Person
	for _, p := range r.persons {
		if nameMatchesAny(p.Name.FullName, keywords) {
			matches = append(matches, p)
		}
	}
	return matches
}

func nameMatchesAny(fullName string, keywords []string) bool {
	words := strings.Fields(strings.ToLower(fullName))
	for _, keyword := range keywords {
		lowered := strings.ToLower(keyword)
		for _, word := range words {
			if word == lowered {
				return true
			}
		}
	}
	return false
}
