package encode

import (
	"bytes"
	"testing"

	"github.com/toml-fmt/toml-sort/ir"
)

func scalar(raw string) *ir.Value {
	return &ir.Value{Kind: ir.IntegerKind, Raw: raw, Decor: ir.Decor{Prefix: " "}}
}

func pair(key string, v *ir.Value) *ir.KeyValue {
	return &ir.KeyValue{
		Key:  ir.Key{Raw: key, Text: key, Decor: ir.Decor{Suffix: " "}},
		Item: ir.Item{Kind: ir.ValueItem, Value: v},
	}
}

func table(header string, pos int, pairs ...*ir.KeyValue) *ir.KeyValue {
	t := &ir.Table{HeaderRaw: header, Pairs: pairs}
	t.SetPosition(pos)
	return &ir.KeyValue{
		Key:  ir.Key{Raw: header, Text: header},
		Item: ir.Item{Kind: ir.TableItem, Table: t},
	}
}

func TestEncodePositioned(t *testing.T) {
	doc := ir.NewDocument()
	doc.Root.Append(table("b", 2, pair("x", scalar("1"))))
	doc.Root.Append(table("a", 1, pair("y", scalar("2"))))
	want := "[a]\ny = 2\n[b]\nx = 1\n"
	if got := MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeOriginal(t *testing.T) {
	doc := ir.NewDocument()
	doc.Root.Append(table("b", 2, pair("x", scalar("1"))))
	doc.Root.Append(table("a", 1, pair("y", scalar("2"))))
	want := "[b]\nx = 1\n[a]\ny = 2\n"
	if got := MustString(doc, EncodeOrder(Original)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeUnpositionedLast(t *testing.T) {
	doc := ir.NewDocument()
	doc.Root.Append(table("first", 1))
	kv := table("floating", 0)
	kv.Item.Table.Position = nil
	doc.Root.Append(kv)
	want := "[first]\n[floating]\n"
	if got := MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeRootBeforeTables(t *testing.T) {
	doc := ir.NewDocument()
	doc.Root.Append(pair("top", scalar("1")))
	doc.Root.Append(table("t", 1, pair("x", scalar("2"))))
	want := "top = 1\n[t]\nx = 2\n"
	if got := MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeImplicitRendersNothing(t *testing.T) {
	inner := table("a.b", 1, pair("x", scalar("1")))
	outer := &ir.Table{Implicit: true, Pairs: []*ir.KeyValue{inner}}
	doc := ir.NewDocument()
	doc.Root.Append(&ir.KeyValue{
		Key:  ir.Key{Raw: "a", Text: "a"},
		Item: ir.Item{Kind: ir.TableItem, Table: outer},
	})
	want := "[a.b]\nx = 1\n"
	if got := MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeArrayOfTables(t *testing.T) {
	m1 := &ir.Table{HeaderRaw: "bin", Pairs: []*ir.KeyValue{pair("n", scalar("1"))}}
	m1.SetPosition(1)
	m2 := &ir.Table{HeaderRaw: "bin", Pairs: []*ir.KeyValue{pair("n", scalar("2"))}}
	m2.SetPosition(2)
	doc := ir.NewDocument()
	doc.Root.Append(&ir.KeyValue{
		Key:  ir.Key{Raw: "bin", Text: "bin"},
		Item: ir.Item{Kind: ir.ArrayOfTablesItem, Tables: []*ir.Table{m1, m2}},
	})
	want := "[[bin]]\nn = 1\n[[bin]]\nn = 2\n"
	if got := MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeBareEnd(t *testing.T) {
	doc := ir.NewDocument()
	doc.Root.Append(pair("a", scalar("1")))
	doc.BareEnd = true
	if got := MustString(doc); got != "a = 1" {
		t.Errorf("got %q, want %q", got, "a = 1")
	}
}

func TestEncodeCRLF(t *testing.T) {
	doc := ir.NewDocument()
	doc.Root.Append(pair("a", scalar("1")))
	doc.Root.Append(pair("b", scalar("2")))
	doc.CRLF = true
	want := "a = 1\r\nb = 2\r\n"
	if got := MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTrailing(t *testing.T) {
	doc := ir.NewDocument()
	doc.Trailing = "# closing note\n"
	if got := MustString(doc); got != "# closing note\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeWriter(t *testing.T) {
	doc := ir.NewDocument()
	doc.Root.Append(pair("a", scalar("1")))
	var buf bytes.Buffer
	if err := Encode(doc, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a = 1\n" {
		t.Errorf("got %q", buf.String())
	}
}
