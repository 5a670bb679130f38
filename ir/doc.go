// Package ir defines the decorated TOML document tree.
//
// Every node carries both its decoded value and the exact source text
// (representation plus surrounding trivia) used to build it, so a
// document renders back byte for byte unless a transformation touched
// it.  Tables record insertion order and, independently, an optional
// position used for position-ordered rendering; both orders are kept at
// the same time.
package ir
