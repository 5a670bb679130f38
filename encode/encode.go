package encode

import (
	"bytes"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/toml-fmt/toml-sort/ir"
)

// Order selects how table blocks are sequenced in the output.
type Order int

const (
	// Positioned emits blocks sorted by their position, which for an
	// unedited document is the source heading order.
	Positioned Order = iota
	// Original emits blocks in tree insertion order, ignoring
	// positions.  Mostly useful for debugging.
	Original
)

type EncState struct {
	order Order
}

// Encode writes doc to w.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	blocks := collect(doc)
	if es.order == Positioned {
		sort.SliceStable(blocks, func(i, j int) bool {
			return blockPos(blocks[i]) < blockPos(blocks[j])
		})
	}
	for _, b := range blocks {
		writeBlock(buf, b)
	}
	buf.WriteString(doc.Trailing)
	out := buf.Bytes()
	if doc.BareEnd && len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	if doc.CRLF {
		s := strings.ReplaceAll(string(out), "\r\n", "\n")
		out = []byte(strings.ReplaceAll(s, "\n", "\r\n"))
	}
	_, err := w.Write(out)
	return err
}

// block is one run of output lines: the root body, or an explicit
// [heading] or [[heading]] with its value pairs.
type block struct {
	t    *ir.Table
	aot  bool
	root bool
}

func blockPos(b block) int {
	if b.t.Position == nil {
		return math.MaxInt
	}
	return *b.t.Position
}

func collect(doc *ir.Document) []block {
	blocks := []block{{t: &doc.Root, root: true}}
	var walk func(t *ir.Table)
	walk = func(t *ir.Table) {
		for _, kv := range t.Pairs {
			switch kv.Item.Kind {
			case ir.TableItem:
				sub := kv.Item.Table
				if !sub.Implicit {
					blocks = append(blocks, block{t: sub})
				}
				walk(sub)
			case ir.ArrayOfTablesItem:
				for _, m := range kv.Item.Tables {
					blocks = append(blocks, block{t: m, aot: true})
					walk(m)
				}
			}
		}
	}
	walk(&doc.Root)
	return blocks
}

func writeBlock(buf *bytes.Buffer, b block) {
	if !b.root {
		buf.WriteString(b.t.Decor.Prefix)
		if b.aot {
			buf.WriteString("[[")
			buf.WriteString(b.t.HeaderRaw)
			buf.WriteString("]]")
		} else {
			buf.WriteString("[")
			buf.WriteString(b.t.HeaderRaw)
			buf.WriteString("]")
		}
		buf.WriteString(b.t.Decor.Suffix)
		buf.WriteString("\n")
	}
	for _, kv := range b.t.Pairs {
		if kv.Item.Kind != ir.ValueItem {
			continue
		}
		writePair(buf, kv)
		buf.WriteString("\n")
	}
}

func writePair(buf *bytes.Buffer, kv *ir.KeyValue) {
	buf.WriteString(kv.Key.Decor.Prefix)
	buf.WriteString(kv.Key.Raw)
	buf.WriteString(kv.Key.Decor.Suffix)
	buf.WriteString("=")
	writeValue(buf, kv.Item.Value)
}

func writeValue(buf *bytes.Buffer, v *ir.Value) {
	buf.WriteString(v.Decor.Prefix)
	writeValueContent(buf, v)
	buf.WriteString(v.Decor.Suffix)
}

func writeValueContent(buf *bytes.Buffer, v *ir.Value) {
	switch v.Kind {
	case ir.ArrayKind:
		writeArray(buf, v.Array)
	case ir.InlineTableKind:
		writeInline(buf, v.Inline)
	default:
		buf.WriteString(v.Raw)
	}
}

func writeArray(buf *bytes.Buffer, arr *ir.Array) {
	buf.WriteString("[")
	for i, el := range arr.Values {
		writeValue(buf, el)
		if i < len(arr.Values)-1 || arr.TrailingComma {
			buf.WriteString(",")
		}
	}
	buf.WriteString(arr.Trailing)
	buf.WriteString("]")
}

func writeInline(buf *bytes.Buffer, it *ir.InlineTable) {
	buf.WriteString("{")
	for i, kv := range it.Pairs {
		if i > 0 {
			buf.WriteString(",")
		}
		writePair(buf, kv)
	}
	buf.WriteString(it.Preamble)
	buf.WriteString("}")
}
