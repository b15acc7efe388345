package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"
)

func TestRunRender(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.wav")
	params := &RenderParams{
		Morse:  []string{"-"},
		Output: outPath,
		Config: writeTestConfig(t, "sample_rate: 8000\n"),
	}
	var stdout, stderr bytes.Buffer
	if err := runRender(context.Background(), params, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	want := "Wrote " + outPath + " (1s)\n"
	if stdout.String() != want {
		t.Errorf("Expected %q, got %q", want, stdout.String())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("failed to decode wav: %v", err)
	}
	if dec.SampleRate != 8000 {
		t.Errorf("Expected sample rate 8000, got %d", dec.SampleRate)
	}
	if len(buf.Data) != 8000 {
		t.Errorf("Expected 8000 samples, got %d", len(buf.Data))
	}
}

func TestRunRender_EncodeAndFlagRate(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.wav")
	params := &RenderParams{
		Output:     outPath,
		Encode:     true,
		SampleRate: 1000,
		Config:     writeTestConfig(t, ""),
	}
	var stdout, stderr bytes.Buffer
	// "E T" encodes to ". / -": 0.5 + 1 + 1 + 1 + 1 seconds
	if err := runRender(context.Background(), params, strings.NewReader("E T\n"), &stdout, &stderr); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("failed to stat output: %v", err)
	}
	if info.Size() != 44+2*4500 {
		t.Errorf("Expected %d bytes, got %d", 44+2*4500, info.Size())
	}
	if !strings.Contains(stdout.String(), "(4.5s)") {
		t.Errorf("Expected length in output, got %q", stdout.String())
	}
}

func TestRunRender_Open(t *testing.T) {
	var opened string
	originalOpen := openFile
	openFile = func(_ context.Context, path string) error {
		opened = path
		return nil
	}
	defer func() { openFile = originalOpen }()

	outPath := filepath.Join(t.TempDir(), "out.wav")
	params := &RenderParams{
		Morse:      []string{"."},
		Output:     outPath,
		Open:       true,
		SampleRate: 1000,
		Config:     writeTestConfig(t, ""),
	}
	var stdout, stderr bytes.Buffer
	if err := runRender(context.Background(), params, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	if opened != outPath {
		t.Errorf("Expected %q to be opened, got %q", outPath, opened)
	}
}

func TestRunRender_BadOutput(t *testing.T) {
	params := &RenderParams{
		Morse:  []string{"."},
		Output: filepath.Join(t.TempDir(), "missing", "out.wav"),
		Config: writeTestConfig(t, ""),
	}
	var stdout, stderr bytes.Buffer
	if err := runRender(context.Background(), params, strings.NewReader(""), &stdout, &stderr); err == nil {
		t.Error("Expected error for unwritable output path")
	}
}
