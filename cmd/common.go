package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/GiGurra/cmder"
	"github.com/atotto/clipboard"
	"github.com/gigurra/morseus/cmd/common"
	"github.com/gigurra/morseus/cmd/morse/audio"
	"github.com/gigurra/morseus/cmd/morse/config"
	"github.com/skip2/go-qrcode"
)

// Swapped out in tests.
var (
	clipboardWriteAll                = clipboard.WriteAll
	openSpeaker       audio.OpenFunc = audio.OpenSpeaker
	speakerAvailable                 = audio.SpeakerAvailable
	openFile                         = openWithSystem
)

func defaultParamEnricher() boa.ParamEnricher {
	return common.DefaultParamEnricher()
}

// readLines returns args joined into one line, or every line of stdin when
// no args are given.
func readLines(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return lines, nil
}

// writeLines prints lines to stdout and optionally copies them to the clipboard.
func writeLines(stdout io.Writer, lines []string, copyToClipboard bool) error {
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
	if copyToClipboard {
		if err := clipboardWriteAll(strings.Join(lines, "\n")); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}
	}
	return nil
}

func writeQR(stdout io.Writer, text string) error {
	if text == "" {
		return nil
	}
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("generating qr code: %w", err)
	}
	fmt.Fprint(stdout, qr.ToSmallString(false))
	return nil
}

// loadConfig reads the config file and applies command line overrides.
// sampleRate <= 0 and pause < 0 mean "not given".
func loadConfig(path string, sampleRate int, pause float64, stderr io.Writer) (config.Config, error) {
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	if pause >= 0 {
		cfg.Pause = pause
	}
	common.SetupLogging(stderr, cfg.LogLevel)
	return cfg, config.Validate(cfg)
}

func openWithSystem(ctx context.Context, path string) error {
	var args []string
	switch runtime.GOOS {
	case "linux":
		args = []string{"xdg-open", path}
	case "darwin":
		args = []string{"open", path}
	case "windows":
		args = []string{"rundll32", "url.dll,FileProtocolHandler", path}
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	result := cmder.New(args...).
		WithAttemptTimeout(10 * time.Second).
		Run(ctx)
	if result.Err != nil {
		return fmt.Errorf("failed to open %s: %w", path, result.Err)
	}
	return nil
}
