// Package parse builds decorated documents from TOML source.
//
// The parser is a recursive descent scanner over the raw bytes.  Every
// piece of the input ends up somewhere in the resulting document: values
// keep their exact source text, and whitespace, comments and newlines
// attach to the nearest key, value or table as decor.  Re-encoding an
// untouched document reproduces the input byte for byte.
package parse
