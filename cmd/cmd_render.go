package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morseus/cmd/morse"
	"github.com/spf13/cobra"
)

type RenderParams struct {
	Morse      []string `pos:"true" optional:"true" help:"Morse code to render. If none provided, reads stdin."`
	Output     string   `short:"o" help:"Output WAV file." default:"output.wav"`
	Encode     bool     `short:"e" help:"Treat the input as text and encode it first." default:"false"`
	Open       bool     `name:"open" help:"Open the file with the system's default player when done." default:"false"`
	SampleRate int      `short:"r" name:"sample-rate" optional:"true" help:"Sample rate in Hz (default from config)." default:"0"`
	Config     string   `name:"config" optional:"true" help:"Config file (default: $XDG_CONFIG_HOME/morseus/config.yaml)." default:""`
}

func RenderCmd() *cobra.Command {
	return boa.CmdT[RenderParams]{
		Use:   "render [morse...]",
		Short: "Render Morse code to a WAV file",
		Long: `Render Morse code to a mono 16-bit PCM WAV file.

Each symbol's tone is appended back to back with no pause in between;
spaces and '/' render as the silence tone.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *RenderParams, cmd *cobra.Command, args []string) {
			if err := runRender(cmd.Context(), params, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "render: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runRender(ctx context.Context, params *RenderParams, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(params.Config, params.SampleRate, -1, stderr)
	if err != nil {
		return err
	}
	lines, err := readLines(params.Morse, stdin)
	if err != nil {
		return err
	}

	code := strings.Join(lines, " ")
	if params.Encode {
		code = morse.Encode(code)
	}

	r := cfg.Renderer()
	if err := r.RenderToFile(code, params.Output); err != nil {
		return err
	}

	samples := r.SampleCount(code)
	length := time.Duration(samples) * time.Second / time.Duration(cfg.SampleRate)
	slog.Info("wrote wav file", "path", params.Output, "samples", samples, "sample_rate", cfg.SampleRate)
	fmt.Fprintf(stdout, "Wrote %s (%s)\n", params.Output, length.Round(time.Millisecond))

	if params.Open {
		return openFile(ctx, params.Output)
	}
	return nil
}
