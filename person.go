// person.go: Club member record and its validated fields
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Field constraint messages, surfaced verbatim by the field parsers.
const (
	MessageNameConstraints = "Names should only contain alphabets, spaces, and certain special characters, " +
		"and it should not be blank"
	MessagePhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints = "Emails should be of the format local-part@domain " +
		"and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters: +_.-\n" +
		"2. This is followed by a '@' and then a domain name made up of domain labels separated by periods"
	MessageTagConstraints = "Tag names should be alphanumeric"
)

// Validation patterns. The name pattern must not accept a leading space,
// otherwise a blank string becomes a valid name; the special characters
// follow the Myinfo name data item.
var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z,()/.@\-'][a-zA-Z,()/.@\-' ]*$`)
	phoneRegex = regexp.MustCompile(`^\d{3,}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9+_.-]+@[a-zA-Z0-9]+([.-][a-zA-Z0-9]+)*(\.[a-zA-Z]{2,})?$`)
	tagRegex   = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Name is a member's validated full name.
type Name struct {
	FullName string `json:"name" yaml:"name"`
}

// IsValidName reports whether s satisfies the name constraints.
func IsValidName(s string) bool { return nameRegex.MatchString(s) }

func (n Name) String() string { return n.FullName }

// Phone is a member's validated phone number.
type Phone struct {
	Value string `json:"phone" yaml:"phone"`
}

// IsValidPhone reports whether s satisfies the phone constraints.
func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

func (p Phone) String() string { return p.Value }

// Email is a member's validated email address.
type Email struct {
	Value string `json:"email" yaml:"email"`
}

// IsValidEmail reports whether s satisfies the email constraints.
func IsValidEmail(s string) bool { return emailRegex.MatchString(s) }

func (e Email) String() string { return e.Value }

// Tag is an alphanumeric label attached to a member.
type Tag struct {
	Value string `json:"tag" yaml:"tag"`
}

// IsValidTag reports whether s satisfies the tag constraints.
func IsValidTag(s string) bool { return tagRegex.MatchString(s) }

func (t Tag) String() string { return "[" + t.Value + "]" }

// Person is one club member. Persons are immutable values; editing a member
// means replacing the whole record in the roster.
type Person struct {
	Name       Name
	Phone      Phone
	Email      Email
	StudentID  StudentID
	Tags       []Tag
	Attendance AttendanceStatus
	// MarkedAt records when the attendance status was last set; zero while
	// the attendance is unmarked.
	MarkedAt time.Time
}

// IsSamePerson reports whether other refers to the same member, which is
// decided by student ID alone. This is a weaker notion than full equality
// and is what duplicate detection in the roster uses.
func (p Person) IsSamePerson(other Person) bool {
	return p.StudentID == other.StudentID
}

// Equals reports full field equality, tags compared as sets.
func (p Person) Equals(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.StudentID == other.StudentID &&
		p.Attendance == other.Attendance &&
		p.MarkedAt.Equal(other.MarkedAt) &&
		sameTags(p.Tags, other.Tags)
}

func sameTags(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	as := make([]string, len(a))
	bs := make([]string, len(b))
	for i := range a {
		as[i], bs[i] = a[i].Value, b[i].Value
	}
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// String renders the member the way result messages display them.
func (p Person) String() string {
	var sb strings.Builder
	sb.WriteString(p.Name.String())
	sb.WriteString("; Phone: ")
	sb.WriteString(p.Phone.String())
	sb.WriteString("; Email: ")
	sb.WriteString(p.Email.String())
	sb.WriteString("; Student ID: ")
	sb.WriteString(p.StudentID.String())
	if p.Attendance.Marked() {
		sb.WriteString("; Attendance: ")
		sb.WriteString(p.Attendance.String())
	}
	if len(p.Tags) > 0 {
		sb.WriteString("; Tags: ")
		for _, tag := range p.Tags {
			sb.WriteString(tag.String())
		}
	}
	return sb.String()
}
