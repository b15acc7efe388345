package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunTable(t *testing.T) {
	var stdout bytes.Buffer
	if err := runTable(&TableParams{}, &stdout); err != nil {
		t.Fatalf("runTable failed: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{".-", "-----", "SPACE", "55"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRunTable_Only(t *testing.T) {
	tests := []struct {
		only    string
		total   string
		present string
		absent  string
	}{
		{"letters", "26", "--..", "-----"},
		{"digits", "10", "-----", "SPACE"},
		{"punctuation", "18", ".-.-.-", "SPACE"},
	}

	for _, tt := range tests {
		t.Run(tt.only, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := runTable(&TableParams{Only: tt.only}, &stdout); err != nil {
				t.Fatalf("runTable failed: %v", err)
			}
			out := stdout.String()
			if !strings.Contains(out, tt.total) {
				t.Errorf("Expected total %s in %q", tt.total, out)
			}
			if !strings.Contains(out, tt.present) {
				t.Errorf("Expected %q in output", tt.present)
			}
			if strings.Contains(out, tt.absent) {
				t.Errorf("Did not expect %q in output", tt.absent)
			}
		})
	}
}

func TestRunTable_UnknownCategory(t *testing.T) {
	var stdout bytes.Buffer
	if err := runTable(&TableParams{Only: "emoji"}, &stdout); err == nil {
		t.Error("Expected error for unknown category")
	}
}
