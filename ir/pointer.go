package ir

import (
	"fmt"

	"github.com/signadot/go-jsonptr/ir/jsonptr"
)

// IsArrayIndex reports whether seg addresses an existing element of node:
// node is an array and seg is an in-bounds index.
func IsArrayIndex(node *Node, seg jsonptr.Segment) bool {
	if node.Type != ArrayType || seg.Index == nil {
		return false
	}
	i := *seg.Index
	return 0 <= i && i < len(node.Values)
}

// IsArrayAppend reports whether seg is the append sentinel "-" against an
// array node.
func IsArrayAppend(node *Node, seg jsonptr.Segment) bool {
	return node.Type == ArrayType && seg.Append
}

// IsArraySlot reports whether seg addresses either an existing element or the
// append position of node.
func IsArraySlot(node *Node, seg jsonptr.Segment) bool {
	return IsArrayIndex(node, seg) || IsArrayAppend(node, seg)
}

// GetPointer resolves pointer text against the node. Parse failures surface
// as jsonptr.ErrInvalidPointer without touching the document.
func (node *Node) GetPointer(ptr string) (*Node, error) {
	p, err := jsonptr.Parse(ptr)
	if err != nil {
		return nil, err
	}
	return node.GetPath(p)
}

// GetPath resolves a parsed path against the node. The result shares
// structure with the input; it is not a copy.
func (node *Node) GetPath(p jsonptr.Path) (*Node, error) {
	res := node
	for _, seg := range p {
		switch res.Type {
		case ObjectType:
			field := seg.FieldName()
			v := Get(res, field)
			if v == nil {
				return nil, fmt.Errorf("%w: no field %q in object", ErrInvalidPath, field)
			}
			res = v

		case ArrayType:
			if seg.Append {
				// there is no value at the append position
				return nil, fmt.Errorf("%w: cannot fetch append position %q", ErrInvalidPath, "-")
			}
			if seg.Index == nil {
				return nil, fmt.Errorf("%w: expected array index, got %q", ErrInvalidPath, seg.String())
			}
			i := *seg.Index
			if i < 0 || i >= len(res.Values) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrInvalidPath, i, len(res.Values))
			}
			res = res.Values[i]

		default:
			return nil, fmt.Errorf("%w: cannot traverse %s with %q", ErrInvalidPath, res.Type, seg.String())
		}
	}
	return res, nil
}

// Update rewrites a value located by TransformPath. It is either Direct,
// called with the value at the end of the path and replacing it, or
// OnParent, called with the container holding the final segment plus that
// segment and replacing the whole container. OnParent is the form used when
// the container itself must be restructured (insert, shift, delete).
//
// An error returned by an update aborts the transform and is propagated to
// the caller unchanged.
type Update interface {
	isUpdate()
}

type Direct func(node *Node) (*Node, error)

func (Direct) isUpdate() {}

type OnParent func(parent *Node, last jsonptr.Segment) (*Node, error)

func (OnParent) isUpdate() {}

// TransformPointer parses pointer text and applies TransformPath.
func (node *Node) TransformPointer(ptr string, u Update) (*Node, error) {
	p, err := jsonptr.Parse(ptr)
	if err != nil {
		return nil, err
	}
	return node.TransformPath(p, u)
}

// TransformPath returns a copy of the document with the value at p rewritten
// by u. Only the ancestor chain from root to target is rebuilt; all other
// subtrees are shared with the input, which is never modified. On any error
// no partial result is returned.
func (node *Node) TransformPath(p jsonptr.Path, u Update) (*Node, error) {
	switch up := u.(type) {
	case Direct:
		if len(p) == 0 {
			return up(node)
		}
	case OnParent:
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: document root has no parent container", ErrInvalidPath)
		}
		if len(p) == 1 {
			return up(node, p[0])
		}
	default:
		return nil, fmt.Errorf("unsupported update %T", u)
	}

	seg := p[0]
	switch node.Type {
	case ObjectType:
		field := seg.FieldName()
		i := FieldIndex(node, field)
		if i < 0 {
			return nil, fmt.Errorf("%w: no field %q in object", ErrInvalidPath, field)
		}
		v, err := node.Values[i].TransformPath(p[1:], u)
		if err != nil {
			return nil, err
		}
		return node.WithValue(i, v), nil

	case ArrayType:
		if seg.Index == nil {
			return nil, fmt.Errorf("%w: expected array index, got %q", ErrInvalidPath, seg.String())
		}
		i := *seg.Index
		if i < 0 || i >= len(node.Values) {
			return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrInvalidPath, i, len(node.Values))
		}
		v, err := node.Values[i].TransformPath(p[1:], u)
		if err != nil {
			return nil, err
		}
		return node.WithValue(i, v), nil

	default:
		return nil, fmt.Errorf("%w: cannot traverse %s with %q", ErrInvalidPath, node.Type, seg.String())
	}
}
