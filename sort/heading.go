package sort

import (
	"slices"
	"strings"

	"github.com/toml-fmt/toml-sort/ir"
)

// heading tracks one dotted table path while walking a sortable table.
// A path starts incomplete ("next") while segments accumulate and
// completes once the table it names turns out to have content of its
// own.
type heading struct {
	complete bool
	segs     []string
}

func (h heading) String() string {
	state := "next"
	if h.complete {
		state = "complete"
	}
	return state + "(" + strings.Join(h.segs, ".") + ")"
}

func compareHeadings(a, b heading) int {
	if a.complete != b.complete {
		if !a.complete {
			return -1
		}
		return 1
	}
	return slices.Compare(a.segs, b.segs)
}

// gatherHeadings walks a sortable table depth first, collecting every
// dotted heading below it.  depth is how many segments of the current
// top heading are fixed: when a completed heading like [deps] is
// followed by a sibling [deps.foo], the accumulated path is truncated
// back to that depth before the new segment is appended, which handles
// headings interleaved non-hierarchically.
func gatherHeadings(t *ir.Table, keys []heading, depth int) ([]heading, error) {
	if t.IsEmpty() && !t.Implicit {
		keys[len(keys)-1].complete = true
	}
	for _, kv := range t.Pairs {
		switch kv.Item.Kind {
		case ir.ValueItem:
			keys[len(keys)-1].complete = true
		case ir.TableItem:
			top := keys[len(keys)-1]
			if !top.complete {
				segs := append(slices.Clone(top.segs), kv.Key.Text)
				keys[len(keys)-1] = heading{segs: segs}
			} else {
				take := min(max(depth, 1), len(top.segs))
				segs := append(slices.Clone(top.segs[:take]), kv.Key.Text)
				keys = append(keys, heading{segs: segs})
			}
			var err error
			keys, err = gatherHeadings(kv.Item.Table, keys, depth+1)
			if err != nil {
				return nil, err
			}
		case ir.ArrayOfTablesItem:
			path := append(slices.Clone(keys[len(keys)-1].segs), kv.Key.Text)
			return nil, &UnsupportedStructureErr{Path: strings.Join(path, ".")}
		}
	}
	return keys, nil
}
