// Package encode serializes decorated documents back to TOML bytes.
//
// Encoding is the inverse of parsing: every node re-emits its raw text
// and decor, so a document that was parsed and not modified encodes to
// the original input exactly.  Table blocks come out either in the
// order they were inserted or ordered by their positions.
package encode
