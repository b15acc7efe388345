package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morseus/cmd/morse/config"
	"github.com/spf13/cobra"
)

type ConfigParams struct {
	Config string `name:"config" optional:"true" help:"Config file (default: $XDG_CONFIG_HOME/morseus/config.yaml)." default:""`
	Init   bool   `name:"init" help:"Write the default configuration to the config file." default:"false"`
	Force  bool   `short:"f" help:"Overwrite an existing file when used with --init." default:"false"`
	Path   bool   `name:"path" help:"Print the config file path and exit." default:"false"`
}

func ConfigCmd() *cobra.Command {
	return boa.CmdT[ConfigParams]{
		Use:         "config",
		Short:       "Show or initialize the configuration",
		Long:        "Print the effective configuration (file, then MORSEUS_* environment overrides) as YAML.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *ConfigParams, cmd *cobra.Command, args []string) {
			if err := runConfig(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "config: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runConfig(params *ConfigParams, stdout io.Writer) error {
	path := params.Config
	if path == "" {
		path = config.Path()
	}

	if params.Path {
		fmt.Fprintln(stdout, path)
		return nil
	}

	if params.Init {
		if _, err := os.Stat(path); err == nil && !params.Force {
			return fmt.Errorf("%s already exists (use -f to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := config.Save(path, config.Default()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
