package format

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toml-fmt/toml-sort/debug"
	"github.com/toml-fmt/toml-sort/ir"
	"github.com/toml-fmt/toml-sort/parse"
)

var ErrConfig = errors.New("config error")

// ConfigFiles are the style file names probed by FindConfig, in order.
var ConfigFiles = []string{"tomlfmt.toml", ".tomlfmt.toml"}

// Config is the style applied by Format.  It is parsed from a
// tomlfmt.toml file; unknown or type mismatched keys keep their
// defaults.
type Config struct {
	// Append a comma after the last element of single line arrays.
	AlwaysTrailingComma bool
	// Append a comma after the last element of multi line arrays.
	MultilineTrailingComma bool
	// Ensure one space on both sides of '='.
	SpaceAroundEq bool
	// Drop the spaces between elements of single line arrays.
	CompactArrays bool
	// Arrays longer than this are split one element per line.
	MaxArrayLineLen int
	// Indentation of split array elements, in spaces.
	IndentCount int
	// Drop the padding spaces inside inline tables.
	CompactInlineTables bool
	// End the document with a newline.
	TrailingNewline bool
	// Allow blank lines between key value pairs.  When false all
	// blank lines are stripped, keeping comments.
	KeyValueNewlines bool
	// Most consecutive comment free blank lines kept anywhere.
	AllowedBlankLines int
	// Emit CRLF line endings.
	CRLF bool
	// Top level table order applied when sorting, first to last.
	TableOrder []string
}

func DefaultConfig() Config {
	return Config{
		AlwaysTrailingComma:    false,
		MultilineTrailingComma: true,
		SpaceAroundEq:          true,
		CompactArrays:          false,
		MaxArrayLineLen:        80,
		IndentCount:            4,
		CompactInlineTables:    false,
		TrailingNewline:        true,
		KeyValueNewlines:       true,
		AllowedBlankLines:      1,
		CRLF:                   false,
		TableOrder: []string{
			"package",
			"workspace",
			"lib",
			"bin",
			"features",
			"dependencies",
			"build-dependencies",
			"dev-dependencies",
		},
	}
}

// ParseConfig reads a style file.  On a TOML parse failure the
// defaults come back along with the error, so callers can warn and
// keep going.
func ParseConfig(d []byte) (Config, error) {
	cfg := DefaultConfig()
	doc, err := parse.Parse(d)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	root := &doc.Root
	boolKey(root, "always_trailing_comma", &cfg.AlwaysTrailingComma)
	boolKey(root, "multiline_trailing_comma", &cfg.MultilineTrailingComma)
	boolKey(root, "space_around_eq", &cfg.SpaceAroundEq)
	boolKey(root, "compact_arrays", &cfg.CompactArrays)
	intKey(root, "max_array_line_len", &cfg.MaxArrayLineLen)
	intKey(root, "indent_count", &cfg.IndentCount)
	boolKey(root, "compact_inline_tables", &cfg.CompactInlineTables)
	boolKey(root, "trailing_newline", &cfg.TrailingNewline)
	boolKey(root, "key_value_newlines", &cfg.KeyValueNewlines)
	intKey(root, "allowed_blank_lines", &cfg.AllowedBlankLines)
	boolKey(root, "crlf", &cfg.CRLF)
	stringsKey(root, "table_order", &cfg.TableOrder)
	if debug.Config() {
		debug.Logf("config: %+v", cfg)
	}
	return cfg, nil
}

// FindConfig walks from dir upward looking for a style file.
func FindConfig(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, name := range ConfigFiles {
			p := filepath.Join(dir, name)
			if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
				return p, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadConfig finds and parses the style file governing dir.  Missing
// file means defaults with no error.
func LoadConfig(dir string) (Config, error) {
	p, ok := FindConfig(dir)
	if !ok {
		return DefaultConfig(), nil
	}
	d, err := os.ReadFile(p)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return ParseConfig(d)
}

func boolKey(t *ir.Table, key string, dst *bool) {
	if it := t.Get(key); it != nil && it.Kind == ir.ValueItem {
		if b, ok := it.Value.AsBool(); ok {
			*dst = b
		}
	}
}

func intKey(t *ir.Table, key string, dst *int) {
	if it := t.Get(key); it != nil && it.Kind == ir.ValueItem {
		if n, ok := it.Value.AsInteger(); ok && n >= 0 {
			*dst = int(n)
		}
	}
}

func stringsKey(t *ir.Table, key string, dst *[]string) {
	it := t.Get(key)
	if it == nil || it.Kind != ir.ValueItem || !it.Value.IsStringArray() {
		return
	}
	arr, _ := it.Value.AsArray()
	res := make([]string, 0, len(arr.Values))
	for _, el := range arr.Values {
		res = append(res, el.Str)
	}
	*dst = res
}
