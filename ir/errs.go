package ir

import (
	"errors"
	"fmt"
)

var (
	ErrParse        = errors.New("parse error")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrKeyConflict  = errors.New("key conflict")
)

// DuplicateKeyErr carries the offending key and the kind of scope it
// appeared in, "inline" or "table".
type DuplicateKeyErr struct {
	Key   string
	Scope string
}

func (e *DuplicateKeyErr) Error() string {
	return fmt.Sprintf("duplicate key %q in %s", e.Key, e.Scope)
}

func (e *DuplicateKeyErr) Unwrap() error {
	return ErrDuplicateKey
}
