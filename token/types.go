// Package token provides low level scanners for TOML lexemes together
// with byte offset to line/column position tracking.
//
// Scanners operate on a []byte slice positioned at the lexeme start and
// report the number of bytes consumed.  They never decode: callers keep
// the raw source substring so documents can be re-emitted byte for byte.
package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrString       = errors.New("malformed string")
	ErrNumber       = errors.New("malformed number")
	ErrEscape       = errors.New("bad escape")
	ErrBareKey      = errors.New("bare key expected")
)

type ScanErr struct {
	Err error
	Pos Pos
}

func NewScanErr(e error, p *Pos) *ScanErr {
	return &ScanErr{Err: e, Pos: *p}
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("unexpected %s", what), p)
}
