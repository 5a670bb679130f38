package token

import (
	"strings"
	"time"
)

// RFC 3339 layouts plus the TOML local variants, in matching order.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05.999999999",
	"15:04:05",
}

// IsDateTime reports whether s is an RFC 3339 date-time, a local
// date-time, a local date, or a local time.
func IsDateTime(s string) bool {
	_, err := ParseDateTime(s)
	return err == nil
}

// ParseDateTime decodes any of the TOML date-time forms.
func ParseDateTime(s string) (time.Time, error) {
	// lowercase t/z separators are valid RFC 3339
	norm := s
	if len(norm) > 10 {
		norm = norm[:10] + strings.ToUpper(norm[10:])
	}
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		t, err = time.Parse(layout, norm)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
