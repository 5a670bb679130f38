package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toml-fmt/toml-sort/ir"
	"github.com/toml-fmt/toml-sort/token"
)

// Exported here for convenience; defined alongside the document types.
var (
	ErrParse        = ir.ErrParse
	ErrDuplicateKey = ir.ErrDuplicateKey
	ErrKeyConflict  = ir.ErrKeyConflict
)

type parser struct {
	d   []byte
	i   int
	pd  *token.PosDoc
	doc *ir.Document
	cur *ir.Table
	// next explicit heading ordinal; the root body is 0.
	nextPos int
}

// Parse reads a TOML document, keeping all trivia.
func Parse(d []byte) (*ir.Document, error) {
	p := &parser{
		d:       d,
		pd:      token.NewPosDoc(d),
		doc:     ir.NewDocument(),
		nextPos: 1,
	}
	p.cur = &p.doc.Root
	if err := p.run(); err != nil {
		if !errors.Is(err, ir.ErrParse) && !errors.Is(err, ir.ErrDuplicateKey) &&
			!errors.Is(err, ir.ErrKeyConflict) {
			// scanner errors gain the package sentinel here
			err = fmt.Errorf("%w: %w", ir.ErrParse, err)
		}
		return nil, err
	}
	return p.doc, nil
}

func (p *parser) run() error {
	for {
		triv := p.trivia()
		if p.eof() {
			p.doc.Trailing = triv
			break
		}
		var err error
		if p.d[p.i] == '[' {
			err = p.header(triv)
		} else {
			err = p.pair(triv, p.cur, "table")
		}
		if err != nil {
			return err
		}
	}
	p.doc.BareEnd = len(p.d) > 0 && p.d[len(p.d)-1] != '\n'
	return nil
}

func (p *parser) eof() bool {
	return p.i >= len(p.d)
}

func (p *parser) pos() *token.Pos {
	return p.pd.Pos(p.i)
}

// ws consumes a run of spaces and tabs.
func (p *parser) ws() string {
	n := token.Whitespace(p.d[p.i:])
	s := string(p.d[p.i : p.i+n])
	p.i += n
	return s
}

// trivia consumes whitespace, comments and newlines, recording newline
// offsets as it goes.
func (p *parser) trivia() string {
	start := p.i
	for !p.eof() {
		switch c := p.d[p.i]; {
		case c == ' ' || c == '\t':
			p.i++
		case c == '#':
			p.i += token.Comment(p.d[p.i:])
		case c == '\n':
			p.pd.NL(p.i)
			p.i++
		case c == '\r':
			if p.i+1 < len(p.d) && p.d[p.i+1] == '\n' {
				p.pd.NL(p.i + 1)
				p.i += 2
			} else {
				p.i++
			}
		default:
			return string(p.d[start:p.i])
		}
	}
	return string(p.d[start:p.i])
}

// restOfLine consumes trailing whitespace, an optional comment, and the
// line terminator.  A carriage return stays in the returned suffix so
// CRLF sources re-encode exactly; the '\n' itself does not.
func (p *parser) restOfLine() (string, error) {
	start := p.i
	p.i += token.Whitespace(p.d[p.i:])
	if !p.eof() && p.d[p.i] == '#' {
		p.i += token.Comment(p.d[p.i:])
	}
	switch {
	case p.eof():
		return string(p.d[start:p.i]), nil
	case p.d[p.i] == '\n':
		p.pd.NL(p.i)
		p.i++
		return string(p.d[start : p.i-1]), nil
	case p.d[p.i] == '\r' && p.i+1 < len(p.d) && p.d[p.i+1] == '\n':
		p.pd.NL(p.i + 1)
		p.i += 2
		return string(p.d[start : p.i-1]), nil
	default:
		return "", token.UnexpectedErr(
			fmt.Sprintf("character %q at end of line", p.d[p.i]), p.pos())
	}
}

// key scans a possibly dotted key.  Raw keeps the exact text of all the
// segments, dots and interior whitespace; Text is the decoded segments
// joined with dots.
func (p *parser) key() (ir.Key, error) {
	start := p.i
	var parts []string
	for {
		n, err := token.Key(p.d[p.i:])
		if err != nil {
			return ir.Key{}, token.NewScanErr(err, p.pos())
		}
		seg := string(p.d[p.i : p.i+n])
		p.i += n
		dec, err := token.Unquote(seg)
		if err != nil {
			return ir.Key{}, token.NewScanErr(err, p.pos())
		}
		parts = append(parts, dec)
		mark := p.i
		p.ws()
		if !p.eof() && p.d[p.i] == '.' {
			p.i++
			p.ws()
			continue
		}
		p.i = mark
		break
	}
	return ir.Key{
		Raw:  string(p.d[start:p.i]),
		Text: strings.Join(parts, "."),
	}, nil
}

// pair parses one key = value line into t.
func (p *parser) pair(prefix string, t *ir.Table, scope string) error {
	key, err := p.key()
	if err != nil {
		return err
	}
	key.Decor.Prefix = prefix
	key.Decor.Suffix = p.ws()
	if p.eof() || p.d[p.i] != '=' {
		return token.ExpectedErr("'='", p.pos())
	}
	p.i++
	vprefix := p.ws()
	v, err := p.value()
	if err != nil {
		return err
	}
	v.Decor.Prefix = vprefix
	suffix, err := p.restOfLine()
	if err != nil {
		return err
	}
	v.Decor.Suffix = suffix
	if t.Has(key.Text) {
		return &ir.DuplicateKeyErr{Key: key.Text, Scope: scope}
	}
	t.Append(&ir.KeyValue{
		Key:  key,
		Item: ir.Item{Kind: ir.ValueItem, Value: v},
	})
	return nil
}
