// Package ir provides the document tree model and the pointer engine built
// on it.
//
// # Overview
//
// A document is a tree of ir.Node values: null, bool, number, string, array
// and object. The shape is the JSON data model; how the bytes got here is the
// parse package's business, and how they leave is the encode package's. The
// ir package itself only addresses and rewrites trees.
//
// # Node Structure
//
// A Node is a closed tagged union selected by its Type field:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (Fields/Values pairs), array (Values)
//
// For ObjectType nodes, Fields[i] is the key node for the value at Values[i],
// so there are always as many fields as values. Keys are string typed and
// unique; field order is preserved but not semantically significant
// (Compare and Equal ignore it). Array values are ordered and contiguous.
//
// Numbers are placed under Int64 if integral, Float64 if floating point, and
// Number as a string fallback when neither can represent them.
//
// # Creating Nodes
//
// Use constructor functions:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{"key": ir.FromString("value")})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Pointers
//
// Nodes are addressed by RFC 6901 pointers, parsed by the ir/jsonptr
// sub-package. Both the textual pointer and the pre-parsed path are accepted
// wherever a location is needed:
//
//	v, err := doc.GetPointer("/foo/0/bar")
//	p, _ := jsonptr.Parse("/foo/0/bar")
//	v, err = doc.GetPath(p)
//
// # Transforms
//
// TransformPointer and TransformPath rewrite a location persistently: the
// input document is never modified, the ancestor chain of the target is
// rebuilt, and every other subtree of the result is shared with the input.
// The rewrite itself is a caller-supplied Update, either Direct (replace the
// addressed value) or OnParent (replace the container holding the final
// segment, for structural edits). The patch package composes all of RFC 6902
// from these two forms.
//
// Because nothing is mutated, the same document may be used as input to any
// number of concurrent Get/Transform calls.
//
// # Related Packages
//
//   - github.com/signadot/go-jsonptr/ir/jsonptr - RFC 6901 pointer parsing
//   - github.com/signadot/go-jsonptr/patch - RFC 6902 patch operations
//   - github.com/signadot/go-jsonptr/parse - decodes JSON/YAML into IR nodes
//   - github.com/signadot/go-jsonptr/encode - encodes IR nodes to text
package ir
