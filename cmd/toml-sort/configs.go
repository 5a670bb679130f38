package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/toml-fmt/toml-sort/format"
)

type MainConfig struct {
	Check     bool   `cli:"name=check aliases=c desc='write nothing, show a diff of what would change'"`
	Print     bool   `cli:"name=print aliases=p desc='write the result to stdout instead of the file'"`
	Write     bool   `cli:"name=write aliases=w desc='rewrite files in place'"`
	Grouped   bool   `cli:"name=grouped aliases=g desc='sort within blank line separated groups'"`
	Workspace bool   `cli:"name=workspace desc='cover every member manifest of the workspace'"`
	NoFormat  bool   `cli:"name=no-format desc='sort only, skip style normalization'"`
	Color     bool   `cli:"name=color desc='force colored output'"`
	Order     string `cli:"name=order desc='comma separated top level table order'"`

	Main *cli.Command
}

func (cfg *MainConfig) setupColor() {
	if cfg.Color {
		color.NoColor = false
		return
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

// orderList is the table order in effect: the flag wins over the style
// file.
func (cfg *MainConfig) orderList(style *format.Config) []string {
	if cfg.Order == "" {
		return style.TableOrder
	}
	var res []string
	for _, s := range strings.Split(cfg.Order, ",") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}
