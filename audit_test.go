// audit_test.go - Tests for the audit trail
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readAuditLines(t *testing.T, path string) []AuditEvent {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open audit log: %v", err)
	}
	defer file.Close()

	var events []AuditEvent
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var event AuditEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("Malformed audit line %q: %v", scanner.Text(), err)
		}
		events = append(events, event)
	}
	return events
}

func TestAuditLogger_RecordsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	config := DefaultAuditConfig()
	config.OutputFile = path

	logger := NewAuditLogger(config)
	logger.LogCommand("add", "New person added")
	logger.LogMutation("roster_changed", "add", nil, "after")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	events := readAuditLines(t, path)
	if len(events) != 2 {
		t.Fatalf("Expected 2 audit events, got %d", len(events))
	}

	first := events[0]
	if first.Event != "command_executed" || first.Command != "add" {
		t.Errorf("Unexpected first event: %+v", first)
	}
	if first.ID == "" || first.Timestamp.IsZero() || first.ProcessID == 0 {
		t.Errorf("Expected populated ID, timestamp and process ID, got %+v", first)
	}
	if events[0].ID == events[1].ID {
		t.Error("Audit event IDs must be unique")
	}
}

func TestAuditLogger_BufferFlushesAtCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	config := DefaultAuditConfig()
	config.OutputFile = path
	config.BufferSize = 4

	logger := NewAuditLogger(config)
	defer logger.Close()

	for i := 0; i < 4; i++ {
		logger.LogCommand("list", "")
	}

	// Buffer reached capacity, so the events are on disk before Close.
	if events := readAuditLines(t, path); len(events) != 4 {
		t.Errorf("Expected 4 flushed events, got %d", len(events))
	}
}

func TestAuditLogger_DisabledIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	config := DefaultAuditConfig()
	config.OutputFile = path
	config.Enabled = false

	logger := NewAuditLogger(config)
	logger.LogCommand("add", "detail")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Disabled audit logger must not create the log file, got %v", err)
	}
}

func TestAuditLogger_MinLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	config := DefaultAuditConfig()
	config.OutputFile = path
	config.MinLevel = AuditWarn

	logger := NewAuditLogger(config)
	logger.Log(AuditInfo, "ignored", "", "", nil, nil)
	logger.Log(AuditCritical, "kept", "", "", nil, nil)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	events := readAuditLines(t, path)
	if len(events) != 1 || events[0].Event != "kept" {
		t.Errorf("Expected only the critical event, got %+v", events)
	}
}

func TestAuditLogger_NilReceiverIsSafe(t *testing.T) {
	var logger *AuditLogger
	logger.LogCommand("add", "detail")
	logger.LogMutation("event", "add", nil, nil)
	logger.Flush()
}

func TestAuditLevel_String(t *testing.T) {
	tests := []struct {
		level AuditLevel
		want  string
	}{
		{AuditInfo, "INFO"},
		{AuditWarn, "WARN"},
		{AuditCritical, "CRITICAL"},
		{AuditLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("AuditLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
