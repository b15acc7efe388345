package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/morseus/cmd/morse"
	"github.com/spf13/cobra"
)

var missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type LookupParams struct {
	Symbols []string `pos:"true" help:"Characters or Morse tokens to look up."`
	Chars   bool     `short:"C" name:"chars" help:"Always treat arguments as characters, even when they look like Morse." default:"false"`
}

func LookupCmd() *cobra.Command {
	return boa.CmdT[LookupParams]{
		Use:   "lookup <symbol...>",
		Short: "Look up single Morse tokens or characters",
		Long: `Look up entries in the Morse table.

An argument made only of '.', '-' and '/' is looked up as a token.
Any other argument is looked up one character at a time.
Exits with status 1 if anything was not found.`,
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *LookupParams, cmd *cobra.Command, args []string) {
			if err := runLookup(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runLookup(params *LookupParams, stdout io.Writer) error {
	misses := 0
	for _, symbol := range params.Symbols {
		if !params.Chars && symbol != "" && !strings.Contains(symbol, " ") && morse.IsMorse(symbol) {
			if ch, ok := morse.LookupCharacter(symbol); ok {
				fmt.Fprintf(stdout, "%s\t%s\n", symbol, displayChar(ch))
			} else {
				fmt.Fprintf(stdout, "%s\t%s\n", symbol, missStyle.Render("not found"))
				misses++
			}
			continue
		}

		for _, r := range symbol {
			if token, ok := morse.LookupCode(r); ok {
				fmt.Fprintf(stdout, "%s\t%s\n", displayChar(r), token)
			} else {
				fmt.Fprintf(stdout, "%s\t%s\n", displayChar(r), missStyle.Render("not found"))
				misses++
			}
		}
	}

	if misses > 0 {
		return fmt.Errorf("%d symbol(s) not found", misses)
	}
	return nil
}

func displayChar(r rune) string {
	if r == ' ' {
		return "SPACE"
	}
	return string(r)
}
