package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points every XDG directory and HOME at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	for _, k := range []string{"TBRUSH_NOTES_DIR", "TBRUSH_STATE_DIR", "TBRUSH_EXTENSION", "TBRUSH_OPENER", "TBRUSH_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return root
}

func TestLoad_defaults(t *testing.T) {
	root := isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NotesDir != filepath.Join(root, "data", "tbrush", "notes") {
		t.Errorf("NotesDir: got %q", cfg.NotesDir)
	}
	if cfg.StateDir != filepath.Join(root, "state", "tbrush") {
		t.Errorf("StateDir: got %q", cfg.StateDir)
	}
	if cfg.Extension != ".txt" {
		t.Errorf("Extension: got %q", cfg.Extension)
	}
	if cfg.LogFile != filepath.Join(root, "state", "tbrush", "tbrush.log") {
		t.Errorf("LogFile: got %q", cfg.LogFile)
	}
	if _, err := os.Stat(cfg.NotesDir); !os.IsNotExist(err) {
		t.Error("Load must not create the notes directory")
	}
}

func TestLoad_configFile(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "config", "tbrush")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	yaml := "notes_dir: ~/notes\nopener: code --wait\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NotesDir != filepath.Join(root, "notes") {
		t.Errorf("NotesDir: got %q", cfg.NotesDir)
	}
	if cfg.Opener != "code --wait" {
		t.Errorf("Opener: got %q", cfg.Opener)
	}
}

func TestLoad_malformedConfigFile(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "config", "tbrush")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("notes_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(nil); err == nil {
		t.Error("expected an error for malformed config")
	}
}

func TestLoad_envAndFlagPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("TBRUSH_NOTES_DIR", "/from/env")
	t.Setenv("TBRUSH_EXTENSION", ".md")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NotesDir != "/from/env" {
		t.Errorf("env NotesDir: got %q", cfg.NotesDir)
	}
	if cfg.Extension != ".md" {
		t.Errorf("env Extension: got %q", cfg.Extension)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dir", "", "")
	if err := fs.Parse([]string{"--dir", "/from/flag"}); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NotesDir != "/from/flag" {
		t.Errorf("flag NotesDir: got %q", cfg.NotesDir)
	}
}

func TestExpandHome(t *testing.T) {
	root := isolate(t)
	tests := []struct {
		input    string
		expected string
	}{
		{"~", root},
		{"~/notes", filepath.Join(root, "notes")},
		{"/abs/path", "/abs/path"},
		{"~user/x", "~user/x"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.input); got != tt.expected {
			t.Errorf("expandHome(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
