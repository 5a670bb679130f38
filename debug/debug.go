// Package debug holds environment controlled debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Headings  bool
	Positions bool
	Format    bool
	Config    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Headings = boolEnv("TOML_SORT_DEBUG_HEADINGS")
	d.Positions = boolEnv("TOML_SORT_DEBUG_POSITIONS")
	d.Format = boolEnv("TOML_SORT_DEBUG_FORMAT")
	d.Config = boolEnv("TOML_SORT_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Headings() bool {
	return d.Headings
}
func Positions() bool {
	return d.Positions
}
func Format() bool {
	return d.Format
}
func Config() bool {
	return d.Config
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
