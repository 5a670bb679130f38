package token

import (
	"strconv"
	"strings"
)

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsInteger reports whether s is a TOML integer: decimal with optional
// sign and underscores, or a 0x/0o/0b prefixed form.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 || body == "" {
		return false
	}
	base := 10
	switch {
	case strings.HasPrefix(body, "0x"):
		base, body = 16, body[2:]
	case strings.HasPrefix(body, "0o"):
		base, body = 8, body[2:]
	case strings.HasPrefix(body, "0b"):
		base, body = 2, body[2:]
	}
	if body == "" || body[0] == '_' || body[len(body)-1] == '_' || strings.Contains(body, "__") {
		return false
	}
	_, err := strconv.ParseUint(strings.ReplaceAll(body, "_", ""), base, 64)
	if err != nil {
		// allow the int64 negative extreme through ParseInteger
		_, ierr := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, 64)
		return base == 10 && ierr == nil
	}
	return true
}

// ParseInteger decodes a TOML integer representation.
func ParseInteger(s string) (int64, error) {
	s = strings.ReplaceAll(s, "_", "")
	sign := int64(1)
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}
	if base == 10 {
		if sign < 0 {
			s = "-" + s
		}
		return strconv.ParseInt(s, 10, 64)
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, err
	}
	return int64(v) * sign, nil
}

// IsFloat reports whether s is a TOML float: a decimal number with a
// fractional part and/or exponent, or one of the inf/nan forms.
func IsFloat(s string) bool {
	if s == "" {
		return false
	}
	switch strings.TrimLeft(s, "+-") {
	case "inf", "nan":
		return len(s)-len(strings.TrimLeft(s, "+-")) <= 1
	}
	if !strings.ContainsAny(s, ".eE") {
		return false
	}
	body := strings.TrimLeft(s, "+-")
	if strings.ContainsAny(body, ":") {
		return false
	}
	if strings.Contains(body, "-") && !strings.ContainsAny(body, "eE") {
		return false
	}
	clean := strings.ReplaceAll(s, "_", "")
	_, err := strconv.ParseFloat(clean, 64)
	return err == nil
}

// ParseFloat decodes a TOML float representation.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
}
