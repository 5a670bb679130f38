package parse

import (
	"fmt"

	"github.com/toml-fmt/toml-sort/ir"
	"github.com/toml-fmt/toml-sort/token"
)

func (p *parser) value() (*ir.Value, error) {
	if p.eof() {
		return nil, token.ExpectedErr("a value", p.pos())
	}
	switch p.d[p.i] {
	case '"', '\'':
		return p.stringValue()
	case '[':
		return p.arrayValue()
	case '{':
		return p.inlineValue()
	default:
		return p.scalarValue()
	}
}

func (p *parser) stringValue() (*ir.Value, error) {
	n, err := token.String(p.d[p.i:])
	if err != nil {
		return nil, token.NewScanErr(err, p.pos())
	}
	raw := string(p.d[p.i : p.i+n])
	p.noteNLs(p.i, p.i+n)
	p.i += n
	dec, err := token.Unquote(raw)
	if err != nil {
		return nil, token.NewScanErr(err, p.pos())
	}
	return ir.FromString(dec, raw), nil
}

func (p *parser) scalarValue() (*ir.Value, error) {
	n := token.Scalar(p.d[p.i:])
	if n == 0 {
		return nil, token.UnexpectedErr(
			fmt.Sprintf("character %q", p.d[p.i]), p.pos())
	}
	raw := string(p.d[p.i : p.i+n])
	pos := p.pos()
	p.i += n
	switch {
	case raw == "true":
		return ir.FromBool(true, raw), nil
	case raw == "false":
		return ir.FromBool(false, raw), nil
	case token.IsInteger(raw):
		v, err := token.ParseInteger(raw)
		if err != nil {
			return nil, token.NewScanErr(token.ErrNumber, pos)
		}
		return ir.FromInteger(v, raw), nil
	case token.IsFloat(raw):
		v, err := token.ParseFloat(raw)
		if err != nil {
			return nil, token.NewScanErr(token.ErrNumber, pos)
		}
		return ir.FromFloat(v, raw), nil
	case token.IsDateTime(raw):
		t, err := token.ParseDateTime(raw)
		if err != nil {
			return nil, token.NewScanErr(fmt.Errorf("malformed date-time %q", raw), pos)
		}
		return ir.FromDateTime(t, raw), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %q at %s", ir.ErrParse, raw, pos)
	}
}

func (p *parser) arrayValue() (*ir.Value, error) {
	open := p.pos()
	p.i++
	arr := &ir.Array{}
	sawComma := false
	for {
		triv := p.trivia()
		if p.eof() {
			return nil, token.NewScanErr(token.ErrUnterminated, open)
		}
		if p.d[p.i] == ']' {
			p.i++
			arr.Trailing = triv
			arr.TrailingComma = sawComma
			break
		}
		el, err := p.value()
		if err != nil {
			return nil, err
		}
		el.Decor.Prefix = triv
		after := p.trivia()
		if p.eof() {
			return nil, token.NewScanErr(token.ErrUnterminated, open)
		}
		switch p.d[p.i] {
		case ',':
			p.i++
			el.Decor.Suffix = after
			arr.Values = append(arr.Values, el)
			sawComma = true
		case ']':
			p.i++
			arr.Values = append(arr.Values, el)
			arr.Trailing = after
			return &ir.Value{Kind: ir.ArrayKind, Array: arr}, nil
		default:
			return nil, token.ExpectedErr("',' or ']'", p.pos())
		}
	}
	return &ir.Value{Kind: ir.ArrayKind, Array: arr}, nil
}

func (p *parser) inlineValue() (*ir.Value, error) {
	open := p.pos()
	p.i++
	it := &ir.InlineTable{}
	lead := p.ws()
	if !p.eof() && p.d[p.i] == '}' {
		p.i++
		it.Preamble = lead
		return &ir.Value{Kind: ir.InlineTableKind, Inline: it}, nil
	}
	for {
		if p.eof() {
			return nil, token.NewScanErr(token.ErrUnterminated, open)
		}
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		key.Decor.Prefix = lead
		key.Decor.Suffix = p.ws()
		if p.eof() || p.d[p.i] != '=' {
			return nil, token.ExpectedErr("'='", p.pos())
		}
		p.i++
		vprefix := p.ws()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		v.Decor.Prefix = vprefix
		v.Decor.Suffix = p.ws()
		for _, kv := range it.Pairs {
			if kv.Key.Text == key.Text {
				return nil, &ir.DuplicateKeyErr{Key: key.Text, Scope: "inline"}
			}
		}
		it.Pairs = append(it.Pairs, &ir.KeyValue{
			Key:  key,
			Item: ir.Item{Kind: ir.ValueItem, Value: v},
		})
		if p.eof() {
			return nil, token.NewScanErr(token.ErrUnterminated, open)
		}
		switch p.d[p.i] {
		case ',':
			p.i++
			lead = p.ws()
		case '}':
			p.i++
			return &ir.Value{Kind: ir.InlineTableKind, Inline: it}, nil
		default:
			return nil, token.ExpectedErr("',' or '}'", p.pos())
		}
	}
}

func (p *parser) noteNLs(from, to int) {
	for j := from; j < to; j++ {
		if p.d[j] == '\n' {
			p.pd.NL(j)
		}
	}
}
