package format

import (
	"testing"

	"github.com/toml-fmt/toml-sort/encode"
	"github.com/toml-fmt/toml-sort/parse"
)

func fmtString(t *testing.T, in string, cfg Config) string {
	t.Helper()
	doc, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	Format(doc, &cfg)
	return encode.MustString(doc)
}

func TestFormatDefaults(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"eq spacing added", "a=1\n", "a = 1\n"},
		{"existing eq spacing kept", "a  =  1\n", "a  =  1\n"},
		{"blank lines capped", "a = 1\n\n\n\nb = 2\n", "a = 1\n\nb = 2\n"},
		{"header blank lines capped", "a = 1\n\n\n[t]\nx = 1\n", "a = 1\n\n[t]\nx = 1\n"},
		{"comments kept when capping", "a = 1\n\n\n# note\nb = 2\n", "a = 1\n\n# note\nb = 2\n"},
		{"trailing newline added", "a = 1", "a = 1\n"},
		{"narrow array normalized", "f = [1,2,  3]\n", "f = [1, 2, 3]\n"},
		{"narrow array with comments untouched", "f = [1, # one\n  2]\n", "f = [1, # one\n  2]\n"},
		{"inline table padded", "t = {a=1,  b =2}\n", "t = { a = 1, b = 2 }\n"},
		{"empty doc gains newline", "", "\n"},
		{"leading blank lines dropped", "\n\na = 1\n", "a = 1\n"},
		{"leading blank before header dropped", "\n[package]\nx = 1\n", "[package]\nx = 1\n"},
		{"leading comment kept", "# top\na = 1\n", "# top\na = 1\n"},
	}
	for _, c := range cases {
		if got := fmtString(t, c.in, DefaultConfig()); got != c.want {
			t.Errorf("%s:\ngot  %q\nwant %q", c.name, got, c.want)
		}
	}
}

func TestFormatArrayWrap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArrayLineLen = 20
	in := "f = [\"alpha\", \"beta\", \"gamma\"]\n"
	want := "f = [\n    \"alpha\",\n    \"beta\",\n    \"gamma\",\n]\n"
	if got := fmtString(t, in, cfg); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestFormatArrayWrapIndent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArrayLineLen = 10
	cfg.IndentCount = 2
	in := "f = [\"aaaa\", \"bbbb\"]\n"
	want := "f = [\n  \"aaaa\",\n  \"bbbb\",\n]\n"
	if got := fmtString(t, in, cfg); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestFormatArrayCommentRelocation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArrayLineLen = 10
	in := "f = [\"aaaa\", # first\n\"bbbb\" # last\n]\n"
	want := "f = [\n    \"aaaa\",\n    # first\n    \"bbbb\",\n    # last\n]\n"
	got := fmtString(t, in, cfg)
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
	// a second pass must not move anything
	if again := fmtString(t, got, cfg); again != got {
		t.Errorf("not idempotent:\nfirst  %q\nsecond %q", got, again)
	}
}

func TestFormatArrayLastCommentInline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArrayLineLen = 10
	cfg.MultilineTrailingComma = false
	in := "f = [\"aaaa\",\n\"bbbb\" # last\n]\n"
	want := "f = [\n    \"aaaa\",\n    \"bbbb\" # last\n]\n"
	got := fmtString(t, in, cfg)
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
	if again := fmtString(t, got, cfg); again != got {
		t.Errorf("not idempotent:\nfirst  %q\nsecond %q", got, again)
	}
}

func TestFormatCompactArrays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompactArrays = true
	if got := fmtString(t, "f = [1, 2]\n", cfg); got != "f = [1,2]\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatAlwaysTrailingComma(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlwaysTrailingComma = true
	if got := fmtString(t, "f = [1, 2]\n", cfg); got != "f = [1, 2,]\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatCompactInlineTables(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompactInlineTables = true
	if got := fmtString(t, "t = { a = 1, b = 2 }\n", cfg); got != "t = {a = 1, b = 2}\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatKeyValueNewlinesOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeyValueNewlines = false
	in := "a = 1\n\nb = 2\n# c\n\nc = 3\n"
	want := "a = 1\nb = 2\n# c\nc = 3\n"
	if got := fmtString(t, in, cfg); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestFormatCRLF(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CRLF = true
	if got := fmtString(t, "a = 1\nb = 2\n", cfg); got != "a = 1\r\nb = 2\r\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatNoTrailingNewline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrailingNewline = false
	if got := fmtString(t, "a = 1", cfg); got != "a = 1" {
		t.Errorf("got %q", got)
	}
}
