package sort

import (
	"strings"

	"github.com/toml-fmt/toml-sort/debug"
	"github.com/toml-fmt/toml-sort/ir"
)

// positionLexicographic reassigns positions to the gathered dotted
// headings in their sorted order, starting right after the first
// matched table.  The matched tables themselves stay where they are;
// only their segmented sub-headings move.
func positionLexicographic(doc *ir.Document, groups []*group) {
	base := 1
	if len(groups) > 0 && groups[0].table.Position != nil {
		base = *groups[0].table.Position + 1
	}
	i := 0
	for _, g := range groups {
		for _, h := range g.headings {
			if h.complete && len(h.segs) > len(g.segs) {
				if t := resolveTable(doc, h.segs); t != nil {
					t.SetPosition(base + i)
					if debug.Positions() {
						debug.Logf("position %d: %s", base+i, strings.Join(h.segs, "."))
					}
				}
			}
			i++
		}
	}
}

// positionByOrder walks the caller's name list assigning positions
// from zero.  A name naming a sortable group positions its completed
// headings in their sorted order; a name naming any other top level
// table or array of tables positions it and all its descendants in
// tree order.  Names absent from the list keep their positions.
func positionByOrder(doc *ir.Document, groups []*group, order []string) {
	idx := 0
	for _, name := range order {
		if g := findGroup(groups, name); g != nil {
			for _, h := range g.headings {
				if !h.complete {
					continue
				}
				if t := resolveTable(doc, h.segs); t != nil {
					t.SetPosition(idx)
					idx++
				}
			}
			continue
		}
		kv := doc.Root.GetPair(name)
		if kv == nil {
			continue
		}
		switch kv.Item.Kind {
		case ir.TableItem:
			kv.Item.Table.SetPosition(idx)
			idx++
			walkSetPositions(kv.Item.Table, &idx)
		case ir.ArrayOfTablesItem:
			for _, member := range kv.Item.Tables {
				member.SetPosition(idx)
				idx++
				walkSetPositions(member, &idx)
			}
		}
	}
}

func findGroup(groups []*group, name string) *group {
	for _, g := range groups {
		if g.name == name {
			return g
		}
	}
	return nil
}

func walkSetPositions(t *ir.Table, idx *int) {
	for _, kv := range t.Pairs {
		switch kv.Item.Kind {
		case ir.TableItem:
			kv.Item.Table.SetPosition(*idx)
			(*idx)++
			walkSetPositions(kv.Item.Table, idx)
		case ir.ArrayOfTablesItem:
			for _, member := range kv.Item.Tables {
				member.SetPosition(*idx)
				(*idx)++
				walkSetPositions(member, idx)
			}
		}
	}
}
