package ir

import "slices"

// Key is a key as written: Raw keeps the exact source text (possibly
// quoted, possibly dotted), Text the decoded, dot-joined form used for
// lookups and ordering.  The key decor's Prefix is the pair's leading
// trivia; Suffix is the whitespace between the key and '='.
type Key struct {
	Decor Decor
	Raw   string
	Text  string
}

type ItemKind int

const (
	NoneItem ItemKind = iota
	ValueItem
	TableItem
	ArrayOfTablesItem
)

func (k ItemKind) String() string {
	return map[ItemKind]string{
		NoneItem:          "none",
		ValueItem:         "value",
		TableItem:         "table",
		ArrayOfTablesItem: "array-of-tables",
	}[k]
}

// Item is the tagged union stored under a key: absent, a value, a
// table, or an array of tables.
type Item struct {
	Kind   ItemKind
	Value  *Value
	Table  *Table
	Tables []*Table
}

type KeyValue struct {
	Key  Key
	Item Item
}

// Table is a non-inline TOML table.  Pairs keeps insertion order, which
// drives original-order rendering; Position, when set, drives
// position-ordered rendering.  Both survive sorting.
type Table struct {
	Pairs []*KeyValue

	// Decor around the heading: Prefix before '[', Suffix after ']'.
	Decor Decor
	// HeaderRaw is the heading text between the brackets, as written.
	HeaderRaw string
	// Implicit tables were never written as a [heading] and render
	// nothing of their own.
	Implicit bool
	// Position is nil for tables that keep their original slot.
	Position *int
}

func (t *Table) SetPosition(p int) {
	t.Position = &p
}

// IsEmpty reports whether the table has no pairs at all.
func (t *Table) IsEmpty() bool {
	return len(t.Pairs) == 0
}

// HasValues reports whether the table holds at least one value pair.
func (t *Table) HasValues() bool {
	for _, kv := range t.Pairs {
		if kv.Item.Kind == ValueItem {
			return true
		}
	}
	return false
}

// GetPair returns the pair stored under key text, or nil.
func (t *Table) GetPair(key string) *KeyValue {
	for _, kv := range t.Pairs {
		if kv.Key.Text == key {
			return kv
		}
	}
	return nil
}

// Get returns the item stored under key text, or nil.
func (t *Table) Get(key string) *Item {
	if kv := t.GetPair(key); kv != nil {
		return &kv.Item
	}
	return nil
}

// GetTable returns the sub-table under key, or nil.
func (t *Table) GetTable(key string) *Table {
	if it := t.Get(key); it != nil && it.Kind == TableItem {
		return it.Table
	}
	return nil
}

func (t *Table) Has(key string) bool {
	return t.GetPair(key) != nil
}

// Append adds a pair at the end of the insertion order.
func (t *Table) Append(kv *KeyValue) {
	t.Pairs = append(t.Pairs, kv)
}

// ValuePairs returns the table's value pairs in insertion order.
func (t *Table) ValuePairs() []*KeyValue {
	var res []*KeyValue
	for _, kv := range t.Pairs {
		if kv.Item.Kind == ValueItem {
			res = append(res, kv)
		}
	}
	return res
}

// SetValuePairs rewrites the table's value pairs in the given order,
// leaving non-value pairs in their slots.
func (t *Table) SetValuePairs(ordered []*KeyValue) {
	i := 0
	for j, kv := range t.Pairs {
		if kv.Item.Kind != ValueItem {
			continue
		}
		t.Pairs[j] = ordered[i]
		i++
	}
}

// SortValues sorts the table's value pairs lexicographically by key
// text, not touching sub-tables.
func (t *Table) SortValues() {
	vals := t.ValuePairs()
	slices.SortStableFunc(vals, func(a, b *KeyValue) int {
		switch {
		case a.Key.Text < b.Key.Text:
			return -1
		case a.Key.Text > b.Key.Text:
			return 1
		default:
			return 0
		}
	})
	t.SetValuePairs(vals)
}
