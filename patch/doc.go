// Package patch applies RFC 6902 JSON Patch operations to ir documents.
//
// An Operation is one of add, replace, remove, move, copy or test, built with
// the constructor functions or decoded from the wire format with DecodePatch:
//
//	[
//	  {"op": "add", "path": "/foo/0", "value": "bar"},
//	  {"op": "move", "from": "/foo/0", "path": "/baz"}
//	]
//
// Apply applies a single operation; Patch.Apply reduces a list left to right
// over successive document versions, stopping at the first failure. Every
// success returns a new document sharing unmodified subtrees with the input;
// the input is never changed, and no partial document is ever returned.
//
// move is literally fetch, remove, then add: the destination path is resolved
// against the document after removal, so when from and path address
// overlapping regions of one array the index shift is observable. This
// mirrors RFC 6902's sequential reading rather than an atomic rewrite.
package patch
