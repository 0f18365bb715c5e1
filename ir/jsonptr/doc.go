// Package jsonptr parses RFC 6901 JSON Pointer text into structured paths.
//
// A pointer is either empty, addressing the whole document, or a sequence of
// "/"-prefixed tokens:
//
//	""           → the document itself
//	"/"          → the field with the empty name
//	"/foo/0/bar" → field "foo", then index 0, then field "bar"
//
// Tokens are unescaped ("~1" → "/", "~0" → "~") and classified: a token that
// is the canonical decimal form of a non-negative integer becomes an index
// segment, the literal "-" becomes the array append sentinel, and everything
// else is an object key. Classification is context free; resolution against a
// document (ir.GetPath, ir.TransformPath) reinterprets segments against the
// container kind actually found.
//
// The package deliberately knows nothing about documents so that ir can build
// its traversal on top of it.
package jsonptr
