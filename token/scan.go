package token

// Whitespace returns the length of the run of spaces and tabs at the
// start of d.
func Whitespace(d []byte) int {
	i := 0
	for i < len(d) {
		if d[i] != ' ' && d[i] != '\t' {
			break
		}
		i++
	}
	return i
}

// Comment returns the length of a '#' comment at the start of d, up to
// but not including the terminating newline.  Returns 0 if d does not
// start a comment.
func Comment(d []byte) int {
	if len(d) == 0 || d[0] != '#' {
		return 0
	}
	i := 1
	for i < len(d) && d[i] != '\n' {
		i++
	}
	if i > 1 && d[i-1] == '\r' {
		return i - 1
	}
	return i
}

func bareKeyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}

// BareKey returns the length of the bare key at the start of d.
func BareKey(d []byte) int {
	i := 0
	for i < len(d) && bareKeyChar(d[i]) {
		i++
	}
	return i
}

// Key returns the length of a single key segment (bare, basic quoted or
// literal quoted) at the start of d.
func Key(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, ErrBareKey
	}
	switch d[0] {
	case '"', '\'':
		return String(d)
	default:
		n := BareKey(d)
		if n == 0 {
			return 0, ErrBareKey
		}
		return n, nil
	}
}

// Scalar returns the length of a non-string, non-composite value at the
// start of d: an integer, float, boolean or date-time.  The scan is
// purely lexical; classification happens afterwards.  A space is
// consumed only in the middle of an RFC 3339 date-time written with a
// space separator.
func Scalar(d []byte) int {
	n := scalarRun(d)
	if n == 0 {
		return 0
	}
	// 1979-05-27 07:32:00Z: the space separator form
	if isFullDate(d[:n]) && n+1 < len(d) && d[n] == ' ' && asciiDigit(d[n+1]) {
		m := scalarRun(d[n+1:])
		if m >= 8 && d[n+1+2] == ':' {
			return n + 1 + m
		}
	}
	return n
}

func scalarRun(d []byte) int {
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case bareKeyChar(c):
		case c == '+' || c == '.' || c == ':':
		default:
			return i
		}
		i++
	}
	return i
}

func isFullDate(d []byte) bool {
	if len(d) != 10 {
		return false
	}
	for i, c := range d {
		switch i {
		case 4, 7:
			if c != '-' {
				return false
			}
		default:
			if !asciiDigit(c) {
				return false
			}
		}
	}
	return true
}
