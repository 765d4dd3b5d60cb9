// Command handlers for the GreyBook CLI.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/agilira/go-errors"
	"github.com/agilira/orpheus/pkg/orpheus"

	"github.com/greynekos/greybook"
)

// handleRun starts the interactive roster session on stdin/stdout.
func (m *Manager) handleRun(ctx *orpheus.Context) error {
	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	if ctx.GetFlagBool("no-audit") {
		settings.Set(greybook.SettingAuditEnabled, false)
	}

	session, err := openSession(settings)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := runPrompt(session, os.Stdin, os.Stdout); err != nil {
		return err
	}
	// Persist the effective settings so the next start reuses them.
	return settings.SavePrefsFile(ctx.GetFlagString("prefs"))
}

// runPrompt is the read-execute-print loop. Parse and execution errors are
// printed and the prompt continues; only the exit command or end of input
// ends the loop.
func runPrompt(session *greybook.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Welcome to GreyBook! Type %q to see available commands.\n", greybook.HelpCommandWord)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		result, err := session.ExecuteLine(line)
		if err != nil {
			fmt.Fprintln(out, errorMessage(err))
			continue
		}

		fmt.Fprintln(out, result.Message)
		if result.Exit {
			return nil
		}
	}
}

// errorMessage strips the error-code bracket go-errors renders, so users
// see "Invalid command format! ..." rather than "[GREYBOOK_...]: ...".
func errorMessage(err error) string {
	msg := err.Error()
	if len(msg) > 0 && msg[0] == '[' {
		for i := 0; i < len(msg)-1; i++ {
			if msg[i] == ']' && msg[i+1] == ':' {
				trimmed := msg[i+2:]
				if len(trimmed) > 0 && trimmed[0] == ' ' {
					trimmed = trimmed[1:]
				}
				return trimmed
			}
		}
	}
	return msg
}

// handleExport prints the stored roster as pretty JSON without starting a
// session.
func (m *Manager) handleExport(ctx *orpheus.Context) error {
	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	storage, err := greybook.NewStorage(settings.GetString(greybook.SettingDataFile))
	if err != nil {
		return err
	}
	defer storage.Close()

	roster, err := storage.Load()
	if err != nil {
		return err
	}

	serialized, err := json.MarshalIndent(roster.Persons(), "", "  ")
	if err != nil {
		return errors.Wrap(err, greybook.ErrCodeStorageError, "failed to serialize roster")
	}
	fmt.Println(string(serialized))
	return nil
}

// loadSettings builds the unified settings for a command invocation:
// defaults and GREYBOOK_* environment variables, then the preferences file,
// then the flags Orpheus parsed.
func loadSettings(ctx *orpheus.Context) (*greybook.Settings, error) {
	settings := greybook.NewSettings("greybook")
	if err := settings.Parse(nil); err != nil {
		return nil, err
	}
	if err := settings.LoadPrefsFile(ctx.GetFlagString("prefs")); err != nil {
		return nil, err
	}
	if data := ctx.GetFlagString("data"); data != "" {
		settings.Set(greybook.SettingDataFile, data)
	}
	return settings, nil
}

// openSession opens storage and audit per the settings and builds the
// session around them.
func openSession(settings *greybook.Settings) (*greybook.Session, error) {
	storage, err := greybook.NewStorage(settings.GetString(greybook.SettingDataFile))
	if err != nil {
		return nil, err
	}

	audit := greybook.NewAuditLogger(settings.AuditConfig())

	session, err := greybook.NewSession(storage, audit)
	if err != nil {
		storage.Close()
		return nil, err
	}
	return session, nil
}
