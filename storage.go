// storage.go: Pluggable roster persistence
//
// The roster can be stored either as a human-readable JSON file or in a
// SQLite database, behind one small backend interface. Backend selection is
// driven by the data file extension, with JSON as the fallback so a missing
// or unknown extension never prevents startup. Writes are atomic in both
// backends: the JSON backend writes a temp file and renames it over the
// target, the SQLite backend replaces the table inside one transaction.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agilira/go-errors"
)

// rosterBackend is the storage contract: load the full member list, save it
// whole, release resources. Backends can keep internal state (connections,
// prepared statements) but the public storage API stays the same whichever
// backend is active.
type rosterBackend interface {
	Load() ([]Person, error)
	Save(persons []Person) error
	Close() error
}

// Storage persists the roster at a fixed path through the backend selected
// for that path.
type Storage struct {
	path    string
	backend rosterBackend
}

// NewStorage opens roster storage at path, choosing the backend from the
// file extension: .db, .sqlite and .sqlite3 select SQLite, anything else
// the JSON file backend.
func NewStorage(path string) (*Storage, error) {
	backend, err := createRosterBackend(path)
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeStorageError, "failed to initialize roster storage")
	}
	return &Storage{path: path, backend: backend}, nil
}

func createRosterBackend(path string) (rosterBackend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return newSQLiteBackend(path)
	default:
		return newJSONBackend(path), nil
	}
}

// Path returns the data file path this storage writes to.
func (s *Storage) Path() string { return s.path }

// Load reads the stored roster. A data file that does not exist yet yields
// an empty roster, not an error.
func (s *Storage) Load() (*Roster, error) {
	persons, err := s.backend.Load()
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeStorageError, "failed to load roster from "+s.path)
	}

	roster := NewRoster()
	for _, person := range persons {
		if err := roster.Add(person); err != nil {
			return nil, errors.Wrap(err, ErrCodeStorageError, "stored roster contains duplicate student IDs")
		}
	}
	return roster, nil
}

// Save writes the full roster.
func (s *Storage) Save(roster *Roster) error {
	if err := s.backend.Save(roster.Persons()); err != nil {
		return errors.Wrap(err, ErrCodeStorageError, "failed to save roster to "+s.path)
	}
	return nil
}

// Close releases backend resources.
func (s *Storage) Close() error { return s.backend.Close() }

// storedPerson is the serialized member record shared by both backends.
type storedPerson struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	StudentID  string   `json:"studentId"`
	Tags       []string `json:"tags,omitempty"`
	Attendance string   `json:"attendance,omitempty"`
	MarkedAt   string   `json:"markedAt,omitempty"`
}

func toStored(p Person) storedPerson {
	stored := storedPerson{
		Name:      p.Name.FullName,
		Phone:     p.Phone.Value,
		Email:     p.Email.Value,
		StudentID: p.StudentID.Value,
	}
	for _, tag := range p.Tags {
		stored.Tags = append(stored.Tags, tag.Value)
	}
	if p.Attendance.Marked() {
		stored.Attendance = p.Attendance.String()
	}
	if !p.MarkedAt.IsZero() {
		stored.MarkedAt = p.MarkedAt.Format(time.RFC3339Nano)
	}
	return stored
}

// toPerson revalidates a stored record through the same field parsers the
// commands use, so a hand-edited data file cannot smuggle invalid values
// into the roster.
func (sp storedPerson) toPerson() (Person, error) {
	name, err := ParseName(sp.Name)
	if err != nil {
		return Person{}, err
	}
	phone, err := ParsePhone(sp.Phone)
	if err != nil {
		return Person{}, err
	}
	email, err := ParseEmail(sp.Email)
	if err != nil {
		return Person{}, err
	}
	studentID, err := ParseStudentID(sp.StudentID)
	if err != nil {
		return Person{}, err
	}

	person := Person{
		Name:       name,
		Phone:      phone,
		Email:      email,
		StudentID:  studentID,
		Attendance: ParseAttendanceStatus(sp.Attendance),
	}
	if sp.MarkedAt != "" {
		markedAt, err := time.Parse(time.RFC3339Nano, sp.MarkedAt)
		if err != nil {
			return Person{}, fmt.Errorf("malformed attendance timestamp %q: %w", sp.MarkedAt, err)
		}
		person.MarkedAt = markedAt
	}
	for _, raw := range sp.Tags {
		tag, err := ParseTag(raw)
		if err != nil {
			return Person{}, err
		}
		person.Tags = append(person.Tags, tag)
	}
	return person, nil
}

// jsonBackend stores the roster as one pretty-printed JSON document.
type jsonBackend struct {
	path string
}

func newJSONBackend(path string) *jsonBackend { return &jsonBackend{path: path} }

// jsonRoster is the top-level document shape.
type jsonRoster struct {
	Persons []storedPerson `json:"persons"`
}

func (b *jsonBackend) Load() ([]Person, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var document jsonRoster
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("malformed roster file: %w", err)
	}

	persons := make([]Person, 0, len(document.Persons))
	for _, stored := range document.Persons {
		person, err := stored.toPerson()
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	return persons, nil
}

func (b *jsonBackend) Save(persons []Person) error {
	document := jsonRoster{Persons: make([]storedPerson, 0, len(persons))}
	for _, person := range persons {
		document.Persons = append(document.Persons, toStored(person))
	}

	serialized, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// Write to target file atomically
	tempPath := b.path + ".tmp." + fmt.Sprintf("%d", time.Now().UnixNano())
	if err := os.WriteFile(tempPath, serialized, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, b.path); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Printf("Failed to cleanup temp file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func (b *jsonBackend) Close() error { return nil }
