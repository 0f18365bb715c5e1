package ir

import "errors"

// ErrInvalidPath reports a pointer that parses but is undefined against the
// document it is resolved on: a missing object field, an out of range or
// non-integer array index, or traversal past a leaf.
var ErrInvalidPath = errors.New("invalid path")
