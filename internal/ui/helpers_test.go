package ui

import (
	"fmt"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.max)
		if got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := preview("   \n\n", 10); got != nil {
		t.Errorf("blank content: got %v", got)
	}

	got := preview("\nbuy milk\neggs\n", 10)
	want := []string{"    buy milk", "    eggs"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("short content: got %q", got)
	}
}

func TestPreview_truncatesLongNotes(t *testing.T) {
	var lines []string
	for i := 1; i <= 15; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	got := preview(strings.Join(lines, "\n"), 10)
	if len(got) != 11 {
		t.Fatalf("expected 10 lines plus marker, got %d", len(got))
	}
	if got[9] != "    line 10" {
		t.Errorf("last shown line: got %q", got[9])
	}
	if got[10] != "    ..." {
		t.Errorf("marker: got %q", got[10])
	}

	if got := preview(strings.Join(lines[:10], "\n"), 10); len(got) != 10 {
		t.Errorf("exactly 10 lines should have no marker, got %d", len(got))
	}
}

func TestPreview_stripsEscapes(t *testing.T) {
	got := preview("\x1b[31mred\x1b[0m text", 10)
	if len(got) != 1 || got[0] != "    red text" {
		t.Errorf("got %q", got)
	}
}
