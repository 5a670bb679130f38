// Package format normalizes the style of a decorated TOML document:
// blank line caps, spacing around '=', array layout and inline table
// padding.  It runs after sorting and rewrites trivia only; values and
// key order are left alone.
package format
