package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunTranslate(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"mixed args", []string{"HI", "...", "---"}, "", ".... .. S O\n"},
		{"stdin", nil, "SOS\n... --- ...\n", "... --- ...\nS O S\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &TranslateParams{Text: tt.args}
			var stdout bytes.Buffer
			if err := runTranslate(params, strings.NewReader(tt.stdin), &stdout); err != nil {
				t.Fatalf("runTranslate failed: %v", err)
			}
			if stdout.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, stdout.String())
			}
		})
	}
}

func TestRunTranslate_ClipboardError(t *testing.T) {
	originalWrite := clipboardWriteAll
	clipboardWriteAll = func(string) error {
		return errors.New("no clipboard")
	}
	defer func() { clipboardWriteAll = originalWrite }()

	params := &TranslateParams{Text: []string{"E"}, Copy: true}
	var stdout bytes.Buffer
	err := runTranslate(params, strings.NewReader(""), &stdout)
	if err == nil {
		t.Fatal("Expected error when the clipboard fails")
	}
	if !strings.Contains(err.Error(), "clipboard") {
		t.Errorf("Expected clipboard error, got %v", err)
	}
}
