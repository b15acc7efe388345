package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morseus/cmd/morse"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type DecodeParams struct {
	Morse []string `pos:"true" optional:"true" help:"Morse code to decode. If none provided, reads lines from stdin."`
	Copy  bool     `short:"c" help:"Copy the result to the clipboard." default:"false"`
}

func DecodeCmd() *cobra.Command {
	return boa.CmdT[DecodeParams]{
		Use:         "decode [morse...]",
		Short:       "Decode Morse code to text",
		Long:        "Convert Morse code back to text. Tokens are separated by whitespace and words by '/'. Unknown tokens are dropped.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *DecodeParams, cmd *cobra.Command, args []string) {
			if err := runDecode(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "decode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runDecode(params *DecodeParams, stdin io.Reader, stdout io.Writer) error {
	lines, err := readLines(params.Morse, stdin)
	if err != nil {
		return err
	}
	decoded := lo.Map(lines, func(line string, _ int) string {
		return morse.Decode(line)
	})
	return writeLines(stdout, decoded, params.Copy)
}
