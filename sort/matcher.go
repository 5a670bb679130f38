package sort

import "strings"

// HeadingKey names a table and a key within it whose array value gets
// sorted as a flat string list.
type HeadingKey struct {
	Heading string
	Key     string
}

// Matcher is the caller supplied sorting policy.  Heading entries are
// matched by substring containment against a table's full dotted name,
// so "dependencies" also covers "dev-dependencies",
// "workspace.dependencies" and target specific tables.  Exact switches
// to whole-name equality for callers with custom heading lists.
type Matcher struct {
	Heading    []string
	HeadingKey []HeadingKey
	Exact      bool
}

// Default is the cargo manifest policy.
var Default = Matcher{
	Heading: []string{"dependencies", "dev-dependencies", "build-dependencies"},
	HeadingKey: []HeadingKey{
		{Heading: "workspace", Key: "members"},
		{Heading: "workspace", Key: "exclude"},
	},
}

// MatchesHeading reports whether the dotted table name is sortable
// under this matcher.
func (m Matcher) MatchesHeading(name string) bool {
	for _, h := range m.Heading {
		if m.Exact {
			if name == h {
				return true
			}
			continue
		}
		if strings.Contains(name, h) {
			return true
		}
	}
	return false
}
