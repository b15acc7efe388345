package common

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"golang.org/x/term"
)

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
// Anything else is warn.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetupLogging installs a text handler on w as the default slog logger.
func SetupLogging(w io.Writer, level string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

// TerminalWidth returns the width of stdout, or fallback if it is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
