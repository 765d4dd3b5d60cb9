// Package cli provides the command-line surface of the GreyBook app.
//
// The outer binary is a small Orpheus application: `run` starts the
// interactive roster session, `export` dumps the stored roster as JSON.
// Everything the user types inside the session is handled by the greybook
// command parser, not by Orpheus; the flags here only select data files and
// audit behavior for the process.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/agilira/orpheus/pkg/orpheus"
)

// Version is the app version reported by the CLI.
const Version = "1.4.0"

// Manager wires the Orpheus application and its command handlers.
type Manager struct {
	app *orpheus.App
}

// NewManager builds the CLI application.
func NewManager() *Manager {
	app := orpheus.New("greybook").
		SetDescription("Club member roster managed through free-text commands").
		SetVersion(Version)

	manager := &Manager{app: app}

	runCmd := orpheus.NewCommand("run", "Start the interactive roster session").
		SetHandler(manager.handleRun)
	runCmd.AddFlag("data", "d", "", "Roster data file (overrides preferences)")
	runCmd.AddFlag("prefs", "p", "greybook-prefs.yaml", "Preferences file")
	runCmd.AddBoolFlag("no-audit", "", false, "Disable the audit log for this session")
	app.AddCommand(runCmd)

	exportCmd := orpheus.NewCommand("export", "Print the stored roster as JSON").
		SetHandler(manager.handleExport)
	exportCmd.AddFlag("data", "d", "", "Roster data file (overrides preferences)")
	exportCmd.AddFlag("prefs", "p", "greybook-prefs.yaml", "Preferences file")
	app.AddCommand(exportCmd)

	return manager
}

// Run executes the CLI application with the provided arguments.
func (m *Manager) Run(args []string) error {
	return m.app.Run(args)
}
