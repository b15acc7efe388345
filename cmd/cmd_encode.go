package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morseus/cmd/morse"
	"github.com/spf13/cobra"
)

type EncodeParams struct {
	Text   []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads lines from stdin."`
	Upper  bool     `short:"u" help:"Upper-case the input before encoding. Lower case letters are skipped otherwise." default:"false"`
	Copy   bool     `short:"c" help:"Copy the result to the clipboard." default:"false"`
	QR     bool     `short:"q" name:"qr" help:"Also print the result as a QR code." default:"false"`
	Beep   bool     `short:"b" help:"Play the result through the speaker." default:"false"`
	Config string   `name:"config" optional:"true" help:"Config file used for --beep (default: $XDG_CONFIG_HOME/morseus/config.yaml)." default:""`
}

func EncodeCmd() *cobra.Command {
	return boa.CmdT[EncodeParams]{
		Use:         "encode [text...]",
		Short:       "Encode text as Morse code",
		Long:        "Convert text to Morse code. Characters without a Morse token are dropped. Words are separated by '/'.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *EncodeParams, cmd *cobra.Command, args []string) {
			if err := runEncode(params, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "encode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runEncode(params *EncodeParams, stdin io.Reader, stdout, stderr io.Writer) error {
	lines, err := readLines(params.Text, stdin)
	if err != nil {
		return err
	}

	encoded := make([]string, len(lines))
	for i, line := range lines {
		if params.Upper {
			line = strings.ToUpper(line)
		}
		encoded[i] = morse.Encode(line)
	}

	if err := writeLines(stdout, encoded, params.Copy); err != nil {
		return err
	}

	if params.QR {
		if err := writeQR(stdout, strings.Join(encoded, "\n")); err != nil {
			return err
		}
	}

	if params.Beep {
		cfg, err := loadConfig(params.Config, 0, -1, stderr)
		if err != nil {
			return err
		}
		r := cfg.Renderer()
		r.SetOutput(openSpeaker)
		for _, code := range encoded {
			if err := r.Play(code); err != nil {
				return err
			}
		}
	}
	return nil
}
