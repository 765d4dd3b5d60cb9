// audit.go: Audit trail for roster changes
//
// Every executed command and every roster mutation can be recorded to an
// append-only JSONL audit log. Events are buffered and flushed in batches;
// the log file rotates by size so a long-lived roster never fills the disk.
// Auditing is strictly best-effort: a failing audit write never blocks or
// fails the command that triggered it.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/agilira/go-timecache"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// AuditLevel represents the severity of audit events
type AuditLevel int

const (
	AuditInfo AuditLevel = iota
	AuditWarn
	AuditCritical
)

func (al AuditLevel) String() string {
	switch al {
	case AuditInfo:
		return "INFO"
	case AuditWarn:
		return "WARN"
	case AuditCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// AuditEvent is a single recorded action.
type AuditEvent struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Level     AuditLevel `json:"level"`
	Event     string     `json:"event"`
	Command   string     `json:"command,omitempty"`
	Detail    string     `json:"detail,omitempty"`
	OldValue  any        `json:"old_value,omitempty"`
	NewValue  any        `json:"new_value,omitempty"`
	ProcessID int        `json:"process_id"`
}

// AuditConfig configures the audit trail.
type AuditConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	OutputFile string `json:"output_file" yaml:"output_file"`
	MinLevel   AuditLevel
	BufferSize int
	// Rotation limits, in megabytes and number of kept files.
	MaxSizeMB  int
	MaxBackups int
}

// DefaultAuditConfig returns the audit settings used when none are given.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		Enabled:    true,
		OutputFile: "greybook-audit.jsonl",
		MinLevel:   AuditInfo,
		BufferSize: 64,
		MaxSizeMB:  16,
		MaxBackups: 3,
	}
}

// AuditLogger records audit events as JSON lines with buffering and
// size-based rotation.
type AuditLogger struct {
	config    AuditConfig
	out       *lumberjack.Logger
	buffer    []AuditEvent
	bufferMu  sync.Mutex
	processID int
}

// NewAuditLogger creates an audit logger writing to the configured file.
// A disabled config yields a logger whose methods are all no-ops.
func NewAuditLogger(config AuditConfig) *AuditLogger {
	logger := &AuditLogger{
		config:    config,
		buffer:    make([]AuditEvent, 0, config.BufferSize),
		processID: os.Getpid(),
	}
	if config.Enabled {
		logger.out = &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
		}
	}
	return logger
}

// Log records one audit event. Timestamps come from the cached clock; a
// per-event UUID makes log lines correlatable across rotated files.
func (al *AuditLogger) Log(level AuditLevel, event, command, detail string, oldVal, newVal any) {
	if al == nil || !al.config.Enabled || level < al.config.MinLevel {
		return
	}

	auditEvent := AuditEvent{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Timestamp: timecache.CachedTime(),
		Level:     level,
		Event:     event,
		Command:   command,
		Detail:    detail,
		OldValue:  oldVal,
		NewValue:  newVal,
		ProcessID: al.processID,
	}

	al.bufferMu.Lock()
	al.buffer = append(al.buffer, auditEvent)
	flush := len(al.buffer) >= al.config.BufferSize
	al.bufferMu.Unlock()

	if flush {
		al.Flush()
	}
}

// LogCommand records a successfully executed command.
func (al *AuditLogger) LogCommand(word, detail string) {
	al.Log(AuditInfo, "command_executed", word, detail, nil, nil)
}

// LogMutation records a roster change with before and after values.
func (al *AuditLogger) LogMutation(event, command string, oldVal, newVal any) {
	al.Log(AuditInfo, event, command, "", oldVal, newVal)
}

// Flush writes every buffered event out as JSON lines. Events that fail to
// serialize are dropped; auditing never propagates errors to commands.
func (al *AuditLogger) Flush() {
	if al == nil || al.out == nil {
		return
	}

	al.bufferMu.Lock()
	pending := al.buffer
	al.buffer = make([]AuditEvent, 0, al.config.BufferSize)
	al.bufferMu.Unlock()

	for _, event := range pending {
		line, err := json.Marshal(event)
		if err != nil {
			continue
		}
		al.out.Write(append(line, '\n'))
	}
}

// Close flushes pending events and closes the log file.
func (al *AuditLogger) Close() error {
	al.Flush()
	if al.out == nil {
		return nil
	}
	return al.out.Close()
}
