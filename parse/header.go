package parse

import (
	"fmt"
	"strings"

	"github.com/toml-fmt/toml-sort/ir"
	"github.com/toml-fmt/toml-sort/token"
)

// header parses a [heading] or [[heading]] line and switches the
// current table.  Every explicitly written heading gets the next
// ordinal as its position, so position-ordered output with no edits
// reproduces the source heading order.
func (p *parser) header(prefix string) error {
	p.i++
	aot := !p.eof() && p.d[p.i] == '['
	if aot {
		p.i++
	}
	inner := p.i
	var parts []string
	for {
		p.ws()
		n, err := token.Key(p.d[p.i:])
		if err != nil {
			return token.NewScanErr(err, p.pos())
		}
		seg := string(p.d[p.i : p.i+n])
		p.i += n
		dec, err := token.Unquote(seg)
		if err != nil {
			return token.NewScanErr(err, p.pos())
		}
		parts = append(parts, dec)
		p.ws()
		if p.eof() {
			return token.ExpectedErr("']'", p.pos())
		}
		if p.d[p.i] == '.' {
			p.i++
			continue
		}
		break
	}
	innerEnd := p.i
	if p.d[p.i] != ']' {
		return token.ExpectedErr("']'", p.pos())
	}
	p.i++
	if aot {
		if p.eof() || p.d[p.i] != ']' {
			return token.ExpectedErr("']]'", p.pos())
		}
		p.i++
	}
	raw := string(p.d[inner:innerEnd])
	suffix, err := p.restOfLine()
	if err != nil {
		return err
	}

	parent := &p.doc.Root
	for _, seg := range parts[:len(parts)-1] {
		parent, err = p.child(parent, seg)
		if err != nil {
			return err
		}
	}
	name := parts[len(parts)-1]
	full := strings.Join(parts, ".")
	if aot {
		return p.openArrayTable(parent, name, full, prefix, suffix, raw)
	}
	return p.openTable(parent, name, full, prefix, suffix, raw)
}

// child resolves one intermediate heading segment, creating an implicit
// table when nothing is there yet.  For an array of tables the last
// member is the one open for extension.
func (p *parser) child(t *ir.Table, seg string) (*ir.Table, error) {
	kv := t.GetPair(seg)
	if kv == nil {
		sub := &ir.Table{Implicit: true}
		t.Append(&ir.KeyValue{
			Key:  ir.Key{Raw: seg, Text: seg},
			Item: ir.Item{Kind: ir.TableItem, Table: sub},
		})
		return sub, nil
	}
	switch kv.Item.Kind {
	case ir.TableItem:
		return kv.Item.Table, nil
	case ir.ArrayOfTablesItem:
		return kv.Item.Tables[len(kv.Item.Tables)-1], nil
	default:
		return nil, fmt.Errorf("%w: %q is not a table", ir.ErrKeyConflict, seg)
	}
}

func (p *parser) openTable(parent *ir.Table, name, full, prefix, suffix, raw string) error {
	kv := parent.GetPair(name)
	if kv == nil {
		t := &ir.Table{
			Decor:     ir.Decor{Prefix: prefix, Suffix: suffix},
			HeaderRaw: raw,
		}
		t.SetPosition(p.nextPos)
		p.nextPos++
		parent.Append(&ir.KeyValue{
			Key:  ir.Key{Raw: name, Text: name},
			Item: ir.Item{Kind: ir.TableItem, Table: t},
		})
		p.cur = t
		return nil
	}
	if kv.Item.Kind == ir.TableItem && kv.Item.Table.Implicit {
		t := kv.Item.Table
		t.Implicit = false
		t.Decor = ir.Decor{Prefix: prefix, Suffix: suffix}
		t.HeaderRaw = raw
		t.SetPosition(p.nextPos)
		p.nextPos++
		p.cur = t
		return nil
	}
	if kv.Item.Kind == ir.TableItem {
		return &ir.DuplicateKeyErr{Key: full, Scope: "table"}
	}
	return fmt.Errorf("%w: %q is already a %s", ir.ErrKeyConflict, full, kv.Item.Kind)
}

func (p *parser) openArrayTable(parent *ir.Table, name, full, prefix, suffix, raw string) error {
	member := &ir.Table{
		Decor:     ir.Decor{Prefix: prefix, Suffix: suffix},
		HeaderRaw: raw,
	}
	member.SetPosition(p.nextPos)
	p.nextPos++
	kv := parent.GetPair(name)
	switch {
	case kv == nil:
		parent.Append(&ir.KeyValue{
			Key:  ir.Key{Raw: name, Text: name},
			Item: ir.Item{Kind: ir.ArrayOfTablesItem, Tables: []*ir.Table{member}},
		})
	case kv.Item.Kind == ir.ArrayOfTablesItem:
		kv.Item.Tables = append(kv.Item.Tables, member)
	default:
		return fmt.Errorf("%w: %q is already a %s", ir.ErrKeyConflict, full, kv.Item.Kind)
	}
	p.cur = member
	return nil
}
