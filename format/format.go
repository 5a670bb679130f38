package format

import (
	"math"
	"strings"

	"github.com/toml-fmt/toml-sort/debug"
	"github.com/toml-fmt/toml-sort/encode"
	"github.com/toml-fmt/toml-sort/ir"
)

// Format applies cfg to doc in place.  The walk touches decor only:
// blank line caps on headers and pairs, '=' spacing, array and inline
// table layout, then the trailing newline and line ending policy.
func Format(doc *ir.Document, cfg *Config) {
	fmtTable(&doc.Root, cfg, true)
	trimHead(doc)
	if cfg.TrailingNewline {
		doc.BareEnd = false
		if s := encode.MustString(doc); !strings.HasSuffix(s, "\n") {
			doc.Trailing += "\n"
		}
	}
	doc.CRLF = cfg.CRLF
}

// trimHead drops blank lines from whatever renders first: the root
// body's first pair, or the lowest positioned heading.  Reordering can
// move a block that carried a blank separator to the top of the file.
func trimHead(doc *ir.Document) {
	if kvs := doc.Root.ValuePairs(); len(kvs) > 0 {
		kvs[0].Key.Decor.TrimBlankLines(0)
		return
	}
	var first *ir.Table
	firstPos := math.MaxInt
	doc.Walk(func(path []string, t *ir.Table) error {
		if t == &doc.Root || t.Implicit {
			return nil
		}
		p := math.MaxInt
		if t.Position != nil {
			p = *t.Position
		}
		if p < firstPos {
			firstPos, first = p, t
		}
		return nil
	})
	if first != nil {
		first.Decor.TrimBlankLines(0)
	}
}

func fmtTable(t *ir.Table, cfg *Config, root bool) {
	if !root && !t.Implicit {
		t.Decor.TrimBlankLines(cfg.AllowedBlankLines)
	}
	for _, kv := range t.Pairs {
		switch kv.Item.Kind {
		case ir.ValueItem:
			if cfg.KeyValueNewlines {
				kv.Key.Decor.TrimBlankLines(cfg.AllowedBlankLines)
			} else if kv.Key.Decor.HasComment() {
				kv.Key.Decor.TrimBlankLines(0)
			} else {
				kv.Key.Decor.Prefix = ""
			}
			if cfg.SpaceAroundEq && kv.Key.Decor.Suffix == "" {
				kv.Key.Decor.Suffix = " "
			}
			fmtValue(kv.Item.Value, cfg)
		case ir.TableItem:
			fmtTable(kv.Item.Table, cfg, false)
		case ir.ArrayOfTablesItem:
			for _, m := range kv.Item.Tables {
				fmtTable(m, cfg, false)
			}
		}
	}
}

// fmtValue styles one assigned value.  Scalars only get the '=' space;
// arrays and inline tables get their whole layout rewritten.
func fmtValue(v *ir.Value, cfg *Config) {
	switch v.Kind {
	case ir.ArrayKind:
		if cfg.SpaceAroundEq && v.Decor.Prefix == "" {
			v.Decor.Prefix = " "
		}
		fmtArray(v.Array, cfg)
	case ir.InlineTableKind:
		v.Decor.Prefix = " "
		flatInline(v.Inline, cfg)
	default:
		if cfg.SpaceAroundEq && v.Decor.Prefix == "" {
			v.Decor.Prefix = " "
		}
	}
}

// fmtArray lays out an array: one element per line when the single
// line form would run past MaxArrayLineLen, compact otherwise.
// Comments survive both ways; an array that fits on one line but
// carries comments is left exactly as written.
func fmtArray(arr *ir.Array, cfg *Config) {
	flat := flatString(&ir.Value{Kind: ir.ArrayKind, Array: arr}, cfg)
	wide := len(flat) > cfg.MaxArrayLineLen
	if debug.Format() && wide {
		debug.Logf("format: splitting %d element array, %d > %d",
			len(arr.Values), len(flat), cfg.MaxArrayLineLen)
	}
	if !wide {
		if arrayHasComments(arr) {
			return
		}
		for i, el := range arr.Values {
			el.Decor.Prefix = ""
			if i > 0 && !cfg.CompactArrays {
				el.Decor.Prefix = " "
			}
			el.Decor.Suffix = ""
			flatValue(el, cfg)
		}
		arr.TrailingComma = cfg.AlwaysTrailingComma && len(arr.Values) > 0
		arr.Trailing = ""
		return
	}

	if len(arr.Values) == 0 {
		return
	}
	last := len(arr.Values) - 1
	indent := strings.Repeat(" ", cfg.IndentCount)
	lead := make([][]string, len(arr.Values))
	var tail []string
	for i, el := range arr.Values {
		lead[i] = commentLines(el.Decor.Prefix)
	}
	keepLastSuffix := ""
	for i, el := range arr.Values {
		cs := commentLines(el.Decor.Suffix)
		if len(cs) == 0 {
			continue
		}
		switch {
		case i < last:
			// a comment between an element and its comma moves above
			// the next element
			lead[i+1] = append(cs, lead[i+1]...)
		case cfg.MultilineTrailingComma:
			// the comma to insert would land inside the comment, so
			// the comment gets a line of its own before the bracket
			tail = append(cs, tail...)
		default:
			keepLastSuffix = " " + cs[0]
			tail = append(cs[1:], tail...)
		}
	}
	tailCs := commentLines(arr.Trailing)
	if !cfg.MultilineTrailingComma && keepLastSuffix == "" && len(tailCs) > 0 {
		// with no comma after the last element its inline comment
		// parses into the trailing trivia; keep it on the value line
		firstLine, _, _ := strings.Cut(arr.Trailing, "\n")
		if strings.Contains(firstLine, "#") {
			keepLastSuffix = " " + tailCs[0]
			tailCs = tailCs[1:]
		}
	}
	tail = append(tail, tailCs...)

	for i, el := range arr.Values {
		var sb strings.Builder
		sb.WriteString("\n")
		for _, c := range lead[i] {
			sb.WriteString(indent)
			sb.WriteString(c)
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		el.Decor.Prefix = sb.String()
		el.Decor.Suffix = ""
		if i == last {
			el.Decor.Suffix = keepLastSuffix
		}
		flatValue(el, cfg)
	}
	arr.TrailingComma = cfg.MultilineTrailingComma
	var sb strings.Builder
	sb.WriteString("\n")
	for _, c := range tail {
		sb.WriteString(indent)
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	arr.Trailing = sb.String()
}

// flatValue normalizes the interior of a composite value to its single
// line layout.  The value's own prefix and suffix belong to the caller.
func flatValue(v *ir.Value, cfg *Config) {
	switch v.Kind {
	case ir.ArrayKind:
		for i, el := range v.Array.Values {
			el.Decor.Prefix = ""
			if i > 0 && !cfg.CompactArrays {
				el.Decor.Prefix = " "
			}
			el.Decor.Suffix = ""
			flatValue(el, cfg)
		}
		v.Array.TrailingComma = cfg.AlwaysTrailingComma && len(v.Array.Values) > 0
		v.Array.Trailing = ""
	case ir.InlineTableKind:
		flatInline(v.Inline, cfg)
	}
}

// flatInline lays out an inline table body compactly.  Padding inside
// the braces stays unless CompactInlineTables is set; '=' spacing
// follows SpaceAroundEq.
func flatInline(it *ir.InlineTable, cfg *Config) {
	eq := ""
	if cfg.SpaceAroundEq {
		eq = " "
	}
	for i, kv := range it.Pairs {
		kv.Key.Decor.Prefix = " "
		if i == 0 && cfg.CompactInlineTables {
			kv.Key.Decor.Prefix = ""
		}
		kv.Key.Decor.Suffix = eq
		kv.Item.Value.Decor.Prefix = eq
		kv.Item.Value.Decor.Suffix = ""
		if i == len(it.Pairs)-1 && !cfg.CompactInlineTables {
			kv.Item.Value.Decor.Suffix = " "
		}
		flatValue(kv.Item.Value, cfg)
	}
	it.Preamble = ""
}

// flatString renders v as it would appear on a single line under cfg.
// Used only to measure.
func flatString(v *ir.Value, cfg *Config) string {
	var sb strings.Builder
	flatText(&sb, v, cfg)
	return sb.String()
}

func flatText(sb *strings.Builder, v *ir.Value, cfg *Config) {
	eq := "="
	if cfg.SpaceAroundEq {
		eq = " = "
	}
	switch v.Kind {
	case ir.ArrayKind:
		sep := ", "
		if cfg.CompactArrays {
			sep = ","
		}
		sb.WriteString("[")
		for i, el := range v.Array.Values {
			if i > 0 {
				sb.WriteString(sep)
			}
			flatText(sb, el, cfg)
		}
		if cfg.AlwaysTrailingComma && len(v.Array.Values) > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("]")
	case ir.InlineTableKind:
		sb.WriteString("{")
		for i, kv := range v.Inline.Pairs {
			switch {
			case i > 0:
				sb.WriteString(", ")
			case !cfg.CompactInlineTables:
				sb.WriteString(" ")
			}
			sb.WriteString(kv.Key.Raw)
			sb.WriteString(eq)
			flatText(sb, kv.Item.Value, cfg)
		}
		if !cfg.CompactInlineTables && len(v.Inline.Pairs) > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("}")
	default:
		sb.WriteString(v.Raw)
	}
}

func arrayHasComments(arr *ir.Array) bool {
	if strings.Contains(arr.Trailing, "#") {
		return true
	}
	for _, el := range arr.Values {
		if strings.Contains(el.Decor.Prefix, "#") || strings.Contains(el.Decor.Suffix, "#") {
			return true
		}
	}
	return false
}

func commentLines(s string) []string {
	d := ir.Decor{Prefix: s}
	return d.CommentLines()
}
