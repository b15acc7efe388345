package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morseus/cmd"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "morseus",
		Short:   "Morse code encoder, decoder and player",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			cmd.EncodeCmd(),
			cmd.DecodeCmd(),
			cmd.TranslateCmd(),
			cmd.LookupCmd(),
			cmd.TableCmd(),
			cmd.PlayCmd(),
			cmd.RenderCmd(),
			cmd.ConfigCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}

	version := bi.Main.Version
	if version == "" {
		version = "unknown-(no version)"
	}
	return version
}
