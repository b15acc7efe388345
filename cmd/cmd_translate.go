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

type TranslateParams struct {
	Text []string `pos:"true" optional:"true" help:"Mixed text and Morse code. If none provided, reads lines from stdin."`
	Copy bool     `short:"c" help:"Copy the result to the clipboard." default:"false"`
}

func TranslateCmd() *cobra.Command {
	return boa.CmdT[TranslateParams]{
		Use:   "translate [text...]",
		Short: "Translate mixed text and Morse code",
		Long: `Translate input one space-separated word at a time.

Words made only of '.', '-' and '/' are decoded, all other words are encoded.
Each word is handled on its own, so "HI ... ---" becomes ".... .. S O".`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *TranslateParams, cmd *cobra.Command, args []string) {
			if err := runTranslate(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "translate: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runTranslate(params *TranslateParams, stdin io.Reader, stdout io.Writer) error {
	lines, err := readLines(params.Text, stdin)
	if err != nil {
		return err
	}
	translated := lo.Map(lines, func(line string, _ int) string {
		return morse.Translate(line)
	})
	return writeLines(stdout, translated, params.Copy)
}
