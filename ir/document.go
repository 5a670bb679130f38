package ir

import "slices"

// Document is a parsed TOML source.  The root table is never reordered
// and conceptually sits at position 0.
type Document struct {
	Root Table

	// Trailing is the trivia after the last item.
	Trailing string
	// BareEnd records that the source had no final newline, so an
	// untouched document renders without one too.
	BareEnd bool
	// CRLF, when set by the formatter, renders every line ending as
	// \r\n.
	CRLF bool
}

func NewDocument() *Document {
	doc := &Document{}
	doc.Root.SetPosition(0)
	return doc
}

// Walk visits every table of the document depth first in insertion
// order, including array-of-tables members, with the dotted path of
// each.  The root is visited first with an empty path.
func (doc *Document) Walk(f func(path []string, t *Table) error) error {
	return walkTable(nil, &doc.Root, f)
}

func walkTable(path []string, t *Table, f func(path []string, t *Table) error) error {
	if err := f(path, t); err != nil {
		return err
	}
	for _, kv := range t.Pairs {
		sub := append(slices.Clone(path), kv.Key.Text)
		switch kv.Item.Kind {
		case TableItem:
			if err := walkTable(sub, kv.Item.Table, f); err != nil {
				return err
			}
		case ArrayOfTablesItem:
			for _, member := range kv.Item.Tables {
				if err := walkTable(sub, member, f); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
