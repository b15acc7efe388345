package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morseus/cmd/common"
	"github.com/gigurra/morseus/cmd/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type TableParams struct {
	Only string `short:"o" optional:"true" help:"Only show letters, digits or punctuation." default:""`
}

func TableCmd() *cobra.Command {
	return boa.CmdT[TableParams]{
		Use:         "table",
		Short:       "Print the Morse code table",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *TableParams, cmd *cobra.Command, args []string) {
			if err := runTable(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "table: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runTable(params *TableParams, stdout io.Writer) error {
	keep, err := entryFilter(params.Only)
	if err != nil {
		return err
	}
	entries := lo.Filter(morse.Entries(), func(e morse.Entry, _ int) bool {
		return keep(e.Char)
	})

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(common.TerminalWidth(120))
	t.AppendHeader(table.Row{"Char", "Code"})
	for _, e := range entries {
		t.AppendRow(table.Row{displayChar(e.Char), e.Token})
	}
	t.AppendFooter(table.Row{"Total", len(entries)})
	t.Render()
	return nil
}

func entryFilter(only string) (func(rune) bool, error) {
	switch strings.ToLower(strings.TrimSpace(only)) {
	case "":
		return func(rune) bool { return true }, nil
	case "letters", "letter", "l":
		return unicode.IsLetter, nil
	case "digits", "digit", "d":
		return unicode.IsDigit, nil
	case "punctuation", "punct", "p":
		return func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' '
		}, nil
	default:
		return nil, fmt.Errorf("unknown category %q (want letters, digits or punctuation)", only)
	}
}
