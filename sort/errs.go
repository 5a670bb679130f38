package sort

import (
	"errors"
	"fmt"
)

var ErrUnsupportedStructure = errors.New("unsupported structure")

// UnsupportedStructureErr reports an array of tables sitting at or
// under a sortable heading.  Reordering repeated headings has no
// defined meaning, so sorting fails instead of guessing.
type UnsupportedStructureErr struct {
	Path string
}

func (e *UnsupportedStructureErr) Error() string {
	return fmt.Sprintf("unsupported structure: array of tables at %q", e.Path)
}

func (e *UnsupportedStructureErr) Unwrap() error {
	return ErrUnsupportedStructure
}
