package token

import (
	"bytes"
	"strconv"
	"strings"
)

// String returns the length of the TOML string at the start of d,
// including its delimiters.  All four forms are recognized: basic,
// multiline basic, literal, and multiline literal.
func String(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, ErrString
	}
	switch d[0] {
	case '"':
		if bytes.HasPrefix(d, []byte(`"""`)) {
			return mlBasic(d)
		}
		return basic(d)
	case '\'':
		if bytes.HasPrefix(d, []byte(`'''`)) {
			return mlLiteral(d)
		}
		return literal(d)
	default:
		return 0, ErrString
	}
}

func basic(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		switch d[i] {
		case '\\':
			if i+1 >= len(d) {
				return 0, ErrUnterminated
			}
			i += 2
		case '"':
			return i + 1, nil
		case '\n':
			return 0, ErrUnterminated
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func literal(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		switch d[i] {
		case '\'':
			return i + 1, nil
		case '\n':
			return 0, ErrUnterminated
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func mlBasic(d []byte) (int, error) {
	i := 3
	for i < len(d) {
		switch d[i] {
		case '\\':
			if i+1 >= len(d) {
				return 0, ErrUnterminated
			}
			i += 2
		case '"':
			if bytes.HasPrefix(d[i:], []byte(`"""`)) {
				// up to two extra quotes may belong to the content
				j := i + 3
				for j < len(d) && j < i+5 && d[j] == '"' {
					j++
				}
				return j, nil
			}
			i++
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func mlLiteral(d []byte) (int, error) {
	i := 3
	for i < len(d) {
		if d[i] == '\'' && bytes.HasPrefix(d[i:], []byte(`'''`)) {
			j := i + 3
			for j < len(d) && j < i+5 && d[j] == '\'' {
				j++
			}
			return j, nil
		}
		i++
	}
	return 0, ErrUnterminated
}

// Unquote decodes the raw text of a TOML string (delimiters included)
// into its value.
func Unquote(raw string) (string, error) {
	switch {
	case strings.HasPrefix(raw, `"""`):
		return unescape(trimMLDelims(raw, `"""`), true)
	case strings.HasPrefix(raw, `"`):
		if len(raw) < 2 {
			return "", ErrString
		}
		return unescape(raw[1:len(raw)-1], false)
	case strings.HasPrefix(raw, `'''`):
		return trimMLDelims(raw, `'''`), nil
	case strings.HasPrefix(raw, `'`):
		if len(raw) < 2 {
			return "", ErrString
		}
		return raw[1 : len(raw)-1], nil
	default:
		// bare key
		return raw, nil
	}
}

func trimMLDelims(raw, delim string) string {
	s := strings.TrimPrefix(raw, delim)
	s = strings.TrimSuffix(s, delim)
	// a newline right after the opening delimiter is trimmed
	s = strings.TrimPrefix(s, "\r\n")
	s = strings.TrimPrefix(s, "\n")
	return s
}

func unescape(s string, multiline bool) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", ErrEscape
		}
		i++
		switch s[i] {
		case 'b':
			out.WriteByte('\b')
		case 't':
			out.WriteByte('\t')
		case 'n':
			out.WriteByte('\n')
		case 'f':
			out.WriteByte('\f')
		case 'r':
			out.WriteByte('\r')
		case '"':
			out.WriteByte('"')
		case '\\':
			out.WriteByte('\\')
		case 'u', 'U':
			width := 4
			if s[i] == 'U' {
				width = 8
			}
			if i+width >= len(s) {
				return "", ErrEscape
			}
			v, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
			if err != nil {
				return "", ErrEscape
			}
			out.WriteRune(rune(v))
			i += width
		case '\n', '\r', ' ', '\t':
			if !multiline {
				return "", ErrEscape
			}
			// line ending backslash: skip whitespace through the
			// next non-blank character
			for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
				i++
			}
			i--
		default:
			return "", ErrEscape
		}
	}
	return out.String(), nil
}
