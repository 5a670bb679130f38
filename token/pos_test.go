package token

import "testing"

func TestPosDocLineCol(t *testing.T) {
	doc := "ab\ncdef\n\nx"
	pd := NewPosDoc([]byte(doc))
	for i, c := range doc {
		if c == '\n' {
			pd.NL(i)
		}
	}
	cases := []struct {
		off       int
		line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 0},
		{6, 1, 3},
		{9, 3, 0},
	}
	for _, c := range cases {
		l, col := pd.LineCol(c.off)
		if l != c.line || col != c.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", c.off, l, col, c.line, c.col)
		}
	}
}

func TestPosDocNLDedup(t *testing.T) {
	pd := NewPosDoc([]byte("a\nb"))
	pd.NL(1)
	pd.NL(1)
	if l, c := pd.LineCol(2); l != 1 || c != 0 {
		t.Errorf("LineCol(2) = (%d, %d), want (1, 0)", l, c)
	}
}
