package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDecode(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"args", []string{"....", ".."}, "", "HI\n"},
		{"words", []string{".... .. / - .... . .-. ."}, "", "HI THERE\n"},
		{"stdin lines", nil, "... --- ...\n.-\n", "SOS\nA\n"},
		{"unknown tokens dropped", []string{"........ .-"}, "", "A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &DecodeParams{Morse: tt.args}
			var stdout bytes.Buffer
			if err := runDecode(params, strings.NewReader(tt.stdin), &stdout); err != nil {
				t.Fatalf("runDecode failed: %v", err)
			}
			if stdout.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, stdout.String())
			}
		})
	}
}

func TestRunDecode_Copy(t *testing.T) {
	var captured string
	originalWrite := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		captured = text
		return nil
	}
	defer func() { clipboardWriteAll = originalWrite }()

	params := &DecodeParams{Morse: []string{"... --- ..."}, Copy: true}
	var stdout bytes.Buffer
	if err := runDecode(params, strings.NewReader(""), &stdout); err != nil {
		t.Fatalf("runDecode failed: %v", err)
	}

	if captured != "SOS" {
		t.Errorf("Expected clipboard 'SOS', got %q", captured)
	}
}
