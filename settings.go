// settings.go: Unified application settings
//
// Settings combines every configuration source the app cares about behind
// one typed lookup surface: registered defaults, a YAML preferences file,
// GREYBOOK_* environment variables, and command-line flags parsed with
// flash-flags. Values loaded from the preferences file and explicit Set
// calls take precedence over flag values; flags fall back to environment
// variables and then to their defaults.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"fmt"
	"os"
	"strings"
	"time"

	flashflags "github.com/agilira/flash-flags"
	"github.com/agilira/go-errors"
	"go.yaml.in/yaml/v3"
)

// Settings keys shared between the CLI layer and the preferences file.
const (
	SettingDataFile     = "data-file"
	SettingAuditFile    = "audit-file"
	SettingAuditEnabled = "audit-enabled"
)

// Settings is the unified configuration surface of the app.
type Settings struct {
	flags *flashflags.FlagSet

	// values holds preferences-file entries and explicit overrides,
	// which win over flag values.
	values map[string]any
}

// NewSettings creates the settings registry with the app's defaults.
func NewSettings(appName string) *Settings {
	s := &Settings{
		flags:  flashflags.New(appName),
		values: make(map[string]any),
	}
	s.flags.SetEnvPrefix(strings.ToUpper(appName))

	s.flags.String(SettingDataFile, "greybook.json", "Roster data file (.json for JSON, .db for SQLite)")
	s.flags.String(SettingAuditFile, "greybook-audit.jsonl", "Audit log file")
	s.flags.Bool(SettingAuditEnabled, true, "Record executed commands to the audit log")
	return s
}

// Parse parses command-line arguments into the registered flags. Flags not
// set on the command line resolve from their GREYBOOK_* environment
// variables before falling back to defaults, so Parse must run even when
// there are no arguments.
func (s *Settings) Parse(args []string) error {
	if err := s.flags.Parse(args); err != nil {
		return errors.Wrap(err, ErrCodeInvalidSettings, "failed to parse command-line flags")
	}
	return nil
}

// Set applies an explicit override with the highest precedence.
func (s *Settings) Set(key string, value any) { s.values[key] = value }

// GetString returns the string value of a settings key.
func (s *Settings) GetString(key string) string {
	if value, ok := s.values[key]; ok {
		return fmt.Sprintf("%v", value)
	}
	return s.flags.GetString(key)
}

// GetBool returns the boolean value of a settings key.
func (s *Settings) GetBool(key string) bool {
	if value, ok := s.values[key]; ok {
		if b, isBool := value.(bool); isBool {
			return b
		}
		return fmt.Sprintf("%v", value) == "true"
	}
	return s.flags.GetBool(key)
}

// LoadPrefsFile reads a YAML preferences file into the settings. Nested
// mappings flatten into dotted keys; a missing file is not an error so a
// fresh install starts from defaults.
func (s *Settings) LoadPrefsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, ErrCodeInvalidSettings, "failed to read preferences file "+path)
	}

	var document map[string]any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return errors.Wrap(err, ErrCodeInvalidSettings, "malformed preferences file "+path)
	}

	flattenInto(s.values, "", document)
	return nil
}

// SavePrefsFile writes the current values of every settings key to a YAML
// preferences file, atomically.
func (s *Settings) SavePrefsFile(path string) error {
	document := map[string]any{
		SettingDataFile:     s.GetString(SettingDataFile),
		SettingAuditFile:    s.GetString(SettingAuditFile),
		SettingAuditEnabled: s.GetBool(SettingAuditEnabled),
	}

	serialized, err := yaml.Marshal(document)
	if err != nil {
		return errors.Wrap(err, ErrCodeInvalidSettings, "failed to serialize preferences")
	}

	tempPath := path + ".tmp." + fmt.Sprintf("%d", time.Now().UnixNano())
	if err := os.WriteFile(tempPath, serialized, 0644); err != nil {
		return errors.Wrap(err, ErrCodeInvalidSettings, "failed to write preferences file")
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Wrap(err, ErrCodeInvalidSettings, "failed to replace preferences file")
	}
	return nil
}

// AuditConfig builds the audit configuration the settings describe.
func (s *Settings) AuditConfig() AuditConfig {
	config := DefaultAuditConfig()
	config.Enabled = s.GetBool(SettingAuditEnabled)
	config.OutputFile = s.GetString(SettingAuditFile)
	return config
}

// flattenInto copies document into target, joining nested mapping keys with
// dots, so "audit: {enabled: true}" becomes "audit.enabled".
func flattenInto(target map[string]any, prefix string, document map[string]any) {
	for key, value := range document {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(target, full, nested)
			continue
		}
		target[full] = value
	}
}
