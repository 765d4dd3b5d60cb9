// settings_test.go - Tests for the unified settings registry
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Defaults(t *testing.T) {
	settings := NewSettings("greybook")

	if got := settings.GetString(SettingDataFile); got != "greybook.json" {
		t.Errorf("Expected default data file greybook.json, got %q", got)
	}
	if got := settings.GetString(SettingAuditFile); got != "greybook-audit.jsonl" {
		t.Errorf("Expected default audit file, got %q", got)
	}
	if !settings.GetBool(SettingAuditEnabled) {
		t.Error("Expected auditing enabled by default")
	}
}

func TestSettings_FlagsOverrideDefaults(t *testing.T) {
	settings := NewSettings("greybook")

	if err := settings.Parse([]string{"--data-file=members.db", "--audit-enabled=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := settings.GetString(SettingDataFile); got != "members.db" {
		t.Errorf("Expected flag value members.db, got %q", got)
	}
	if settings.GetBool(SettingAuditEnabled) {
		t.Error("Expected auditing disabled by flag")
	}
}

func TestSettings_EnvironmentResolvesOnParse(t *testing.T) {
	t.Setenv("GREYBOOK_DATA_FILE", "from-env.db")

	settings := NewSettings("greybook")
	if err := settings.Parse(nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := settings.GetString(SettingDataFile); got != "from-env.db" {
		t.Errorf("Expected env value from-env.db, got %q", got)
	}
}

func TestSettings_ExplicitFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("GREYBOOK_DATA_FILE", "from-env.db")

	settings := NewSettings("greybook")
	if err := settings.Parse([]string{"--data-file=from-flag.db"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := settings.GetString(SettingDataFile); got != "from-flag.db" {
		t.Errorf("Expected flag value from-flag.db, got %q", got)
	}
}

func TestSettings_SetWinsOverFlags(t *testing.T) {
	settings := NewSettings("greybook")
	if err := settings.Parse([]string{"--data-file=members.db"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	settings.Set(SettingDataFile, "override.json")
	if got := settings.GetString(SettingDataFile); got != "override.json" {
		t.Errorf("Expected explicit override, got %q", got)
	}
}

func TestSettings_PrefsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	saved := NewSettings("greybook")
	saved.Set(SettingDataFile, "club.db")
	saved.Set(SettingAuditEnabled, false)
	if err := saved.SavePrefsFile(path); err != nil {
		t.Fatalf("SavePrefsFile failed: %v", err)
	}

	loaded := NewSettings("greybook")
	if err := loaded.LoadPrefsFile(path); err != nil {
		t.Fatalf("LoadPrefsFile failed: %v", err)
	}
	if got := loaded.GetString(SettingDataFile); got != "club.db" {
		t.Errorf("Expected club.db from prefs file, got %q", got)
	}
	if loaded.GetBool(SettingAuditEnabled) {
		t.Error("Expected auditing disabled from prefs file")
	}
}

func TestSettings_MissingPrefsFileIsNotAnError(t *testing.T) {
	settings := NewSettings("greybook")
	if err := settings.LoadPrefsFile(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("Missing prefs file must not fail, got %v", err)
	}
	if got := settings.GetString(SettingDataFile); got != "greybook.json" {
		t.Errorf("Expected defaults to survive, got %q", got)
	}
}

func TestSettings_MalformedPrefsFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("data-file: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	settings := NewSettings("greybook")
	err := settings.LoadPrefsFile(path)
	if err == nil {
		t.Fatal("Expected error for malformed prefs file")
	}
	if got := ErrorCode(err); got != ErrCodeInvalidSettings {
		t.Errorf("Expected %s, got %s", ErrCodeInvalidSettings, got)
	}
}

func TestSettings_NestedPrefsFlattenToDottedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	document := "audit:\n  enabled: false\n  file: nested.jsonl\n"
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		t.Fatal(err)
	}

	settings := NewSettings("greybook")
	if err := settings.LoadPrefsFile(path); err != nil {
		t.Fatalf("LoadPrefsFile failed: %v", err)
	}
	if settings.GetBool("audit.enabled") {
		t.Error("Expected audit.enabled=false from nested mapping")
	}
	if got := settings.GetString("audit.file"); got != "nested.jsonl" {
		t.Errorf("Expected nested.jsonl, got %q", got)
	}
}

func TestSettings_AuditConfig(t *testing.T) {
	settings := NewSettings("greybook")
	settings.Set(SettingAuditFile, "trail.jsonl")
	settings.Set(SettingAuditEnabled, false)

	config := settings.AuditConfig()
	if config.OutputFile != "trail.jsonl" {
		t.Errorf("Expected trail.jsonl, got %q", config.OutputFile)
	}
	if config.Enabled {
		t.Error("Expected auditing disabled")
	}
	if config.BufferSize != DefaultAuditConfig().BufferSize {
		t.Errorf("Expected default buffer size, got %d", config.BufferSize)
	}
}
