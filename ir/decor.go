package ir

import "strings"

// Decor is the trivia attached to a token: Prefix holds the whitespace,
// blank lines and comments appearing before it, Suffix the same-line
// text after it.  Decor is the sole carrier of blank lines and comment
// text; transformations rewrite decor strings and nothing else.
type Decor struct {
	Prefix string
	Suffix string
}

// BlankLines counts the comment-free lines in the prefix.  A line that
// starts with '#' is a comment line, anything else counts as blank.
func (d *Decor) BlankLines() int {
	n := 0
	for _, ln := range prefixLines(d.Prefix) {
		if !strings.HasPrefix(strings.TrimLeft(ln, " \t"), "#") {
			n++
		}
	}
	return n
}

// TrimBlankLines drops whole comment-free blank lines from the prefix
// until at most allowed remain.  Comment lines keep their terminating
// newlines; the partial last line, the indentation before the token,
// stays too.
func (d *Decor) TrimBlankLines(allowed int) {
	drop := d.BlankLines() - allowed
	if drop <= 0 {
		return
	}
	var sb strings.Builder
	rest := d.Prefix
	for {
		line, tail, found := strings.Cut(rest, "\n")
		if !found {
			sb.WriteString(line)
			break
		}
		comment := strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
		if !comment && drop > 0 {
			drop--
		} else {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		rest = tail
	}
	d.Prefix = sb.String()
}

// CommentLines returns the comment lines of the prefix in order.
func (d *Decor) CommentLines() []string {
	var res []string
	for _, ln := range prefixLines(d.Prefix) {
		if strings.HasPrefix(strings.TrimLeft(ln, " \t"), "#") {
			res = append(res, strings.TrimLeft(ln, " \t"))
		}
	}
	return res
}

// HasComment reports whether the prefix contains a comment.
func (d *Decor) HasComment() bool {
	return strings.Contains(d.Prefix, "#")
}

func prefixLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
