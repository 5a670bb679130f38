package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets in a document to line/column pairs.  Newline
// offsets are recorded as the document is scanned.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

// NL records a newline at offset i.  Offsets must be recorded in
// non-decreasing order; duplicates are ignored.
func (p *PosDoc) NL(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	p.n = append(p.n, i)
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Pos is a byte offset into a PosDoc.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
