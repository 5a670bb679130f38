package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "toml-sort").
		WithSynopsis("toml-sort [opts] [path ...]").
		WithDescription(
			"toml-sort keeps cargo manifests sorted and styled: dependency\n" +
				"tables and workspace member arrays are ordered, blank lines and\n" +
				"spacing normalized, everything else preserved byte for byte.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortMain(cfg, cc, args)
		})
}
