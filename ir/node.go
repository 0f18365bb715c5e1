package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a document tree. The Type field selects which of the
// remaining fields are meaningful. For ObjectType, Fields[i] is the key node
// for Values[i] and is always string typed; for ArrayType only Values is used.
//
// Nodes are treated as immutable once built: GetPath, TransformPath and the
// patch package never modify a node in place, they rebuild the ancestor chain
// and share everything else with the input.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (node *Node) Clone() *Node {
	res := &Node{}
	return node.CloneTo(res)
}

func (node *Node) CloneTo(dst *Node) *Node {
	dst.Type = node.Type
	if node.Fields != nil {
		dst.Fields = make([]*Node, len(node.Fields))
		for i, f := range node.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if node.Values != nil {
		dst.Values = make([]*Node, len(node.Values))
		for i, v := range node.Values {
			dst.Values[i] = v.Clone()
		}
	}
	dst.String = node.String
	dst.Number = node.Number
	if node.Float64 != nil {
		f := *node.Float64
		dst.Float64 = &f
	}
	if node.Int64 != nil {
		i := *node.Int64
		dst.Int64 = &i
	}
	dst.Bool = node.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object node from a map, fields sorted by key.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = m[key]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object node preserving the given field order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// Get returns the value under field in an object node, or nil if the field is
// absent or the node is not an object.
func Get(node *Node, field string) *Node {
	n := len(node.Fields)
	for i := range n {
		if node.Fields[i].String == field {
			return node.Values[i]
		}
	}
	return nil
}

// FieldIndex returns the position of field in an object node, or -1.
func FieldIndex(node *Node, field string) int {
	for i := range node.Fields {
		if node.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// WithValue returns a copy of a container node whose i'th value is v. All
// other children are shared with the receiver.
func (node *Node) WithValue(i int, v *Node) *Node {
	res := &Node{Type: node.Type}
	res.Fields = node.Fields
	res.Values = slices.Clone(node.Values)
	res.Values[i] = v
	return res
}

func (node *Node) Visit(f func(node *Node, isPost bool) (bool, error)) error {
	dive, err := f(node, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range node.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(node, true); err != nil {
		return err
	}
	return nil
}

// NumberString returns the canonical textual form of a number node.
func (node *Node) NumberString() string {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	default:
		return node.Number
	}
}
