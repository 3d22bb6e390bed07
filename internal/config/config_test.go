package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at an empty directory and clears DVLG_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, v := range []string{"DVLG_COLOR", "DVLG_TAG_MATCH", "DVLG_EXTENSIONS", "DVLG_LOG_DIR"} {
		t.Setenv(v, "")
	}
	return home
}

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "dvlg")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoad_Default(t *testing.T) {
	isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Color != ColorAuto {
		t.Errorf("expected color auto, got %q", cfg.Color)
	}
	if cfg.TagMatch != TagMatchSubstring {
		t.Errorf("expected substring tag match, got %q", cfg.TagMatch)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".dvlg" {
		t.Errorf("expected [.dvlg], got %v", cfg.Extensions)
	}
	if cfg.LogDir != "" {
		t.Errorf("expected no log dir, got %q", cfg.LogDir)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, "color: never\ntag_match: fuzzy\nextensions: [txt, .log]\nlog_dir: ~/logs\n")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Color != ColorNever {
		t.Errorf("expected never, got %q", cfg.Color)
	}
	if cfg.TagMatch != TagMatchFuzzy {
		t.Errorf("expected fuzzy, got %q", cfg.TagMatch)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != ".txt" || cfg.Extensions[1] != ".log" {
		t.Errorf("expected [.txt .log], got %v", cfg.Extensions)
	}
	if cfg.LogDir != filepath.Join(home, "logs") {
		t.Errorf("expected expanded log dir, got %q", cfg.LogDir)
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, "color: [unterminated\n")

	if _, err := Load(CLIFlags{}); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLoad_EnvVar(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, "tag_match: substring\n")
	t.Setenv("DVLG_TAG_MATCH", "fuzzy")
	t.Setenv("DVLG_EXTENSIONS", "dvlg:md")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TagMatch != TagMatchFuzzy {
		t.Errorf("expected env to override file, got %q", cfg.TagMatch)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != ".md" {
		t.Errorf("expected [.dvlg .md], got %v", cfg.Extensions)
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	isolate(t)
	t.Setenv("DVLG_COLOR", "never")

	cfg, err := Load(CLIFlags{Color: "always", LogDir: "/tmp/dvlg-logs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.Color != ColorAlways {
		t.Errorf("expected always, got %q", cfg.Color)
	}
	if cfg.LogDir != "/tmp/dvlg-logs" {
		t.Errorf("expected /tmp/dvlg-logs, got %q", cfg.LogDir)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)

	if _, err := Load(CLIFlags{Color: "sometimes"}); err == nil {
		t.Error("expected error for invalid color")
	}
	if _, err := Load(CLIFlags{TagMatch: "regex"}); err == nil {
		t.Error("expected error for invalid tag match")
	}
}

func TestParseCommaSeparated(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"a", 1},
		{"a,b,c", 3},
		{" a , b , c ", 3},
		{"a,,b", 2},
	}

	for _, tt := range tests {
		result := ParseCommaSeparated(tt.input)
		if len(result) != tt.expected {
			t.Errorf("ParseCommaSeparated(%q): expected %d items, got %d", tt.input, tt.expected, len(result))
		}
	}
}
