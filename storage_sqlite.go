// storage_sqlite.go: SQLite roster backend
//
// Stores the roster in a single persons table keyed by student ID, tags
// serialized as a JSON array column. WAL mode keeps reads cheap while a
// save transaction is in flight; every save replaces the table contents in
// one transaction so a crash can never leave a half-written roster.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver registration
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS persons (
    student_id TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    phone      TEXT NOT NULL,
    email      TEXT NOT NULL,
    tags       TEXT NOT NULL DEFAULT '[]',
    attendance TEXT NOT NULL DEFAULT '',
    marked_at  TEXT NOT NULL DEFAULT '',
    position   INTEGER NOT NULL
);`

// sqliteBackend persists the roster in a SQLite database file.
type sqliteBackend struct {
	db *sql.DB
}

func newSQLiteBackend(path string) (*sqliteBackend, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create persons table: %w", err)
	}
	return &sqliteBackend{db: db}, nil
}

func (b *sqliteBackend) Load() ([]Person, error) {
	rows, err := b.db.Query(
		"SELECT name, phone, email, student_id, tags, attendance, marked_at FROM persons ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []Person
	for rows.Next() {
		var stored storedPerson
		var tagsJSON string
		if err := rows.Scan(&stored.Name, &stored.Phone, &stored.Email,
			&stored.StudentID, &tagsJSON, &stored.Attendance, &stored.MarkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &stored.Tags); err != nil {
			return nil, fmt.Errorf("malformed tags column for %s: %w", stored.StudentID, err)
		}

		person, err := stored.toPerson()
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	return persons, rows.Err()
}

func (b *sqliteBackend) Save(persons []Person) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM persons"); err != nil {
		return fmt.Errorf("failed to clear persons table: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO persons (name, phone, email, student_id, tags, attendance, marked_at, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for position, person := range persons {
		stored := toStored(person)
		tagsJSON, err := json.Marshal(stored.Tags)
		if err != nil {
			return err
		}
		if stored.Tags == nil {
			tagsJSON = []byte("[]")
		}
		if _, err := stmt.Exec(stored.Name, stored.Phone, stored.Email,
			stored.StudentID, string(tagsJSON), stored.Attendance, stored.MarkedAt, position); err != nil {
			return fmt.Errorf("failed to insert person %s: %w", stored.StudentID, err)
		}
	}
	return tx.Commit()
}

func (b *sqliteBackend) Close() error { return b.db.Close() }
