package patch

import (
	"fmt"
	"slices"

	"github.com/signadot/go-jsonptr/debug"
	"github.com/signadot/go-jsonptr/ir"
	"github.com/signadot/go-jsonptr/ir/jsonptr"
)

// Apply applies a single operation to doc, returning the patched document.
// doc is never modified; unmodified subtrees are shared between input and
// result.
func Apply(doc *ir.Node, op Operation) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("apply %s path=%q from=%q\n", op.Op, op.Path, op.From)
	}
	path, from, err := op.paths()
	if err != nil {
		return nil, err
	}
	switch op.Op {
	case OpAdd:
		return applyAdd(doc, path, op.value())

	case OpReplace:
		return applyReplace(doc, path, op.value())

	case OpRemove:
		return applyRemove(doc, path)

	case OpMove:
		v, err := doc.GetPath(from)
		if err != nil {
			return nil, err
		}
		res, err := applyRemove(doc, from)
		if err != nil {
			return nil, err
		}
		// path is resolved against the document after removal; if the
		// removal shifted indices path depends on, the shift is observed
		return applyAdd(res, path, v)

	case OpCopy:
		v, err := doc.GetPath(from)
		if err != nil {
			return nil, err
		}
		return applyAdd(doc, path, v)

	case OpTest:
		v, err := doc.GetPath(path)
		if err != nil {
			return nil, err
		}
		if !ir.Equal(v, op.value()) {
			return nil, fmt.Errorf("%w: value at %q differs", ErrTestFailed, op.Path)
		}
		return doc, nil

	default:
		return nil, fmt.Errorf("invalid op %q", op.Op)
	}
}

// Apply reduces the patch left to right over successive document versions,
// stopping at the first operation that fails and returning its error
// verbatim. Intermediate documents are not observable.
func (p Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	res := doc
	for i := range p {
		var err error
		res, err = Apply(res, p[i])
		if err != nil {
			return nil, err
		}
		if debug.Patches() {
			// Logf renders *ir.Node args as JSON strings, so %s is valid at
			// runtime; the any conversion keeps vet's printf check from
			// flagging the static type.
			debug.Logf("after op %d (%s): %s\n", i, p[i].Op, any(res))
		}
	}
	return res, nil
}

// ApplyWithOps is Patch.Apply returning the applied operations alongside the
// final document.
func ApplyWithOps(doc *ir.Node, p Patch) (*ir.Node, Patch, error) {
	res, err := p.Apply(doc)
	if err != nil {
		return nil, nil, err
	}
	return res, p, nil
}

func applyAdd(doc *ir.Node, path jsonptr.Path, value *ir.Node) (*ir.Node, error) {
	if len(path) == 0 {
		// adding at the root replaces the whole document
		return doc.TransformPath(path, replaceDoc(value))
	}
	return doc.TransformPath(path, ir.OnParent(func(parent *ir.Node, last jsonptr.Segment) (*ir.Node, error) {
		switch {
		case ir.IsArrayIndex(parent, last):
			return arrInsert(parent, *last.Index, value), nil
		case ir.IsArrayAppend(parent, last):
			return arrInsert(parent, len(parent.Values), value), nil
		case parent.Type == ir.ObjectType:
			return objSet(parent, last.FieldName(), value), nil
		default:
			return nil, fmt.Errorf("%w: cannot add at %q in %s", ErrInvalidTarget, last.String(), parent.Type)
		}
	}))
}

func applyReplace(doc *ir.Node, path jsonptr.Path, value *ir.Node) (*ir.Node, error) {
	if len(path) == 0 {
		return doc.TransformPath(path, replaceDoc(value))
	}
	return doc.TransformPath(path, ir.OnParent(func(parent *ir.Node, last jsonptr.Segment) (*ir.Node, error) {
		switch {
		case ir.IsArrayIndex(parent, last):
			return parent.WithValue(*last.Index, value), nil
		case parent.Type == ir.ObjectType:
			i := ir.FieldIndex(parent, last.FieldName())
			if i < 0 {
				return nil, fmt.Errorf("%w: no field %q to replace", ErrInvalidTarget, last.FieldName())
			}
			return parent.WithValue(i, value), nil
		default:
			return nil, fmt.Errorf("%w: cannot replace %q in %s", ErrInvalidTarget, last.String(), parent.Type)
		}
	}))
}

func applyRemove(doc *ir.Node, path jsonptr.Path) (*ir.Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: cannot remove the document root", ErrInvalidTarget)
	}
	return doc.TransformPath(path, ir.OnParent(func(parent *ir.Node, last jsonptr.Segment) (*ir.Node, error) {
		switch {
		case ir.IsArrayIndex(parent, last):
			return arrDelete(parent, *last.Index), nil
		case parent.Type == ir.ObjectType:
			i := ir.FieldIndex(parent, last.FieldName())
			if i < 0 {
				return nil, fmt.Errorf("%w: no field %q to remove", ErrInvalidTarget, last.FieldName())
			}
			return objDelete(parent, i), nil
		default:
			return nil, fmt.Errorf("%w: cannot remove %q from %s", ErrInvalidTarget, last.String(), parent.Type)
		}
	}))
}

func replaceDoc(value *ir.Node) ir.Update {
	return ir.Direct(func(*ir.Node) (*ir.Node, error) {
		return value, nil
	})
}

// arrInsert returns a new array with v inserted before index i, later
// elements shifted right. i == len appends.
func arrInsert(arr *ir.Node, i int, v *ir.Node) *ir.Node {
	vs := make([]*ir.Node, 0, len(arr.Values)+1)
	vs = append(vs, arr.Values[:i]...)
	vs = append(vs, v)
	vs = append(vs, arr.Values[i:]...)
	return ir.FromSlice(vs)
}

// arrDelete returns a new array without the element at i, later elements
// shifted left.
func arrDelete(arr *ir.Node, i int) *ir.Node {
	vs := make([]*ir.Node, 0, len(arr.Values)-1)
	vs = append(vs, arr.Values[:i]...)
	vs = append(vs, arr.Values[i+1:]...)
	return ir.FromSlice(vs)
}

// objSet returns a new object with field set to v, overwriting in place or
// appending a new field at the end.
func objSet(obj *ir.Node, field string, v *ir.Node) *ir.Node {
	if i := ir.FieldIndex(obj, field); i >= 0 {
		return obj.WithValue(i, v)
	}
	kvs := make([]ir.KeyVal, 0, len(obj.Fields)+1)
	for i := range obj.Fields {
		kvs = append(kvs, ir.KeyVal{Key: obj.Fields[i], Val: obj.Values[i]})
	}
	kvs = append(kvs, ir.KeyVal{Key: ir.FromString(field), Val: v})
	return ir.FromKeyVals(kvs)
}

// objDelete returns a new object without the i'th field.
func objDelete(obj *ir.Node, i int) *ir.Node {
	res := &ir.Node{Type: ir.ObjectType}
	res.Fields = slices.Delete(slices.Clone(obj.Fields), i, i+1)
	res.Values = slices.Delete(slices.Clone(obj.Values), i, i+1)
	return res
}
