// Package sort reorders dependency-style tables and arrays in a
// decorated TOML document.
//
// A Matcher names the tables whose key/value pairs get sorted and the
// arrays that get sorted as string lists.  Sorting rewrites pair order
// and table positions; all trivia stays attached to the entries it was
// parsed with, so re-encoding an already sorted document is a no-op.
package sort
