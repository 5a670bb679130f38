package sort

import (
	"slices"
	"strings"

	"github.com/toml-fmt/toml-sort/debug"
	"github.com/toml-fmt/toml-sort/ir"
)

// group is one matched sortable table together with every dotted
// heading gathered below it, in the order they will be positioned.
type group struct {
	name     string
	segs     []string
	headings []heading
	table    *ir.Table
}

// Sort applies the matcher to doc: arrays named by heading/key pairs
// are sorted as string lists, matched tables get their key/value pairs
// sorted (grouped or plain), and table positions are reassigned either
// lexicographically or following the caller's order list.
func Sort(doc *ir.Document, m Matcher, grouped bool, order []string) error {
	for _, hk := range m.HeadingKey {
		sortHeadingKey(doc, hk)
	}

	roots, err := findRoots(&doc.Root, nil, m)
	if err != nil {
		return err
	}
	groups := make([]*group, 0, len(roots))
	for _, g := range roots {
		keys := []heading{{complete: true, segs: g.segs}}
		keys, err = gatherHeadings(g.table, keys, 1)
		if err != nil {
			return err
		}
		slices.SortStableFunc(keys, compareHeadings)
		g.headings = keys
		if debug.Headings() {
			for _, h := range keys {
				debug.Logf("heading %s: %s", g.name, h)
			}
		}
		sortTable(g.table, grouped)
		groups = append(groups, g)
	}

	if len(order) == 0 {
		positionLexicographic(doc, groups)
	} else {
		positionByOrder(doc, groups, order)
	}
	return nil
}

// findRoots collects the outermost tables whose dotted name the
// matcher accepts, in document order.  A matching array of tables is
// an error.
func findRoots(t *ir.Table, path []string, m Matcher) ([]*group, error) {
	var roots []*group
	for _, kv := range t.Pairs {
		segs := append(slices.Clone(path), kv.Key.Text)
		name := strings.Join(segs, ".")
		switch kv.Item.Kind {
		case ir.TableItem:
			if m.MatchesHeading(name) {
				roots = append(roots, &group{name: name, segs: segs, table: kv.Item.Table})
				continue
			}
			sub, err := findRoots(kv.Item.Table, segs, m)
			if err != nil {
				return nil, err
			}
			roots = append(roots, sub...)
		case ir.ArrayOfTablesItem:
			if m.MatchesHeading(name) {
				return nil, &UnsupportedStructureErr{Path: name}
			}
			for _, member := range kv.Item.Tables {
				sub, err := findRoots(member, segs, m)
				if err != nil {
					return nil, err
				}
				roots = append(roots, sub...)
			}
		}
	}
	return roots, nil
}

// sortTable sorts the table's own value pairs and then every nested
// sub-table the same way.
func sortTable(t *ir.Table, grouped bool) {
	if grouped {
		sortGrouped(t)
	} else {
		sortPlain(t)
	}
	for _, kv := range t.Pairs {
		if kv.Item.Kind == ir.TableItem {
			sortTable(kv.Item.Table, grouped)
		}
	}
}

// sortPlain sorts all value pairs lexicographically.  Blank lines in
// the pair prefixes are dropped: an un-grouped sort has no groups to
// keep, and entries carrying their old separators around would pin
// arbitrary gaps between unrelated keys.  Comment lines stay.
func sortPlain(t *ir.Table) {
	t.SortValues()
	for _, kv := range t.Pairs {
		if kv.Item.Kind != ir.ValueItem {
			continue
		}
		kv.Key.Decor.TrimBlankLines(0)
	}
}

// sortGrouped sorts blank-line delimited runs of value pairs
// independently.  A pair whose prefix holds at least one comment-free
// blank line starts a new run.
func sortGrouped(t *ir.Table) {
	vals := t.ValuePairs()
	if len(vals) == 0 {
		return
	}
	var runs [][]*ir.KeyValue
	for i, kv := range vals {
		if i == 0 || kv.Key.Decor.BlankLines() > 0 {
			runs = append(runs, []*ir.KeyValue{kv})
			continue
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], kv)
	}
	var ordered []*ir.KeyValue
	for _, run := range runs {
		// the blank separator belongs to the run, not to whichever
		// pair happened to open it
		blank, rest := splitLeadingBlank(run[0].Key.Decor.Prefix)
		run[0].Key.Decor.Prefix = rest
		slices.SortStableFunc(run, func(a, b *ir.KeyValue) int {
			return strings.Compare(a.Key.Text, b.Key.Text)
		})
		run[0].Key.Decor.Prefix = blank + run[0].Key.Decor.Prefix
		ordered = append(ordered, run...)
	}
	t.SetValuePairs(ordered)
}

// splitLeadingBlank cuts the run of whitespace-only lines off the
// front of a prefix, leaving comment lines and the final partial line
// behind.
func splitLeadingBlank(s string) (blank, rest string) {
	i := 0
	for i < len(s) {
		j := strings.IndexByte(s[i:], '\n')
		if j < 0 {
			break
		}
		if strings.TrimRight(s[i:i+j], " \t\r") != "" {
			break
		}
		i += j + 1
	}
	return s[:i], s[i:]
}

// sortHeadingKey sorts the named array in place when it exists and all
// of its elements are strings.  Element decor travels with its value.
func sortHeadingKey(doc *ir.Document, hk HeadingKey) {
	t := resolveTable(doc, strings.Split(hk.Heading, "."))
	if t == nil {
		return
	}
	kv := t.GetPair(hk.Key)
	if kv == nil || kv.Item.Kind != ir.ValueItem || !kv.Item.Value.IsStringArray() {
		return
	}
	arr := kv.Item.Value.Array
	slices.SortStableFunc(arr.Values, func(a, b *ir.Value) int {
		return strings.Compare(a.Str, b.Str)
	})
}

// resolveTable follows exact dotted segments through nested tables.
func resolveTable(doc *ir.Document, segs []string) *ir.Table {
	t := &doc.Root
	for _, seg := range segs {
		t = t.GetTable(seg)
		if t == nil {
			return nil
		}
	}
	return t
}
