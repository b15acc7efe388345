package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morseus/cmd/morse"
	"github.com/gigurra/morseus/cmd/morse/audio"
	"github.com/spf13/cobra"
)

type PlayParams struct {
	Morse      []string `pos:"true" optional:"true" help:"Morse code to play. If none provided, reads lines from stdin."`
	Encode     bool     `short:"e" help:"Treat the input as text and encode it first." default:"false"`
	Bell       bool     `name:"bell" help:"Use the terminal bell if no audio device is available." default:"false"`
	Pause      float64  `short:"p" name:"pause" optional:"true" help:"Seconds to wait after each symbol (default from config)." default:"-1"`
	SampleRate int      `short:"r" name:"sample-rate" optional:"true" help:"Sample rate in Hz (default from config)." default:"0"`
	Config     string   `name:"config" optional:"true" help:"Config file (default: $XDG_CONFIG_HOME/morseus/config.yaml)." default:""`
}

func PlayCmd() *cobra.Command {
	return boa.CmdT[PlayParams]{
		Use:   "play [morse...]",
		Short: "Play Morse code through the speaker",
		Long: `Play Morse code one symbol at a time.

'.' plays the dot tone, '-' the dash tone and every other character the
silence tone. Playback waits for the configured pause after each symbol.
Audio on Linux requires a CGO build. With --bell, builds without audio
support use the terminal bell directly, and other builds fall back to it
when the device cannot be opened.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *PlayParams, cmd *cobra.Command, args []string) {
			if err := runPlay(params, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runPlay(params *PlayParams, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(params.Config, params.SampleRate, params.Pause, stderr)
	if err != nil {
		return err
	}
	lines, err := readLines(params.Morse, stdin)
	if err != nil {
		return err
	}

	r := cfg.Renderer()
	r.SetOutput(openSpeaker)
	if params.Bell && !speakerAvailable {
		slog.Info("built without audio support, using terminal bell")
		r.SetOutput(audio.NewBellOutput(stdout))
	}

	for _, line := range lines {
		code := line
		if params.Encode {
			code = morse.Encode(line)
			fmt.Fprintln(stdout, code)
		}

		err := r.Play(code)
		var devErr *audio.DeviceError
		if errors.As(err, &devErr) && devErr.Op == "open" && params.Bell {
			slog.Info("audio device unavailable, using terminal bell", "error", err)
			r.SetOutput(audio.NewBellOutput(stdout))
			err = r.Play(code)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
