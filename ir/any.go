package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromAny converts a JSON-shaped Go value (the result of unmarshalling into
// any) to a node. Maps produce objects with sorted fields; use FromKeyVals
// when field order matters.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return &Node{Type: NumberType, Number: strconv.FormatUint(x, 10)}, nil
		}
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumber(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case map[string]*Node:
		return FromMap(x), nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

func fromNumber(x json.Number) *Node {
	if i, err := x.Int64(); err == nil {
		return FromInt(i)
	}
	// integral text too wide for int64 keeps its text rather than losing
	// precision to a float
	if f, err := x.Float64(); err == nil && strings.ContainsAny(x.String(), ".eE") {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: x.String()}
}

// ToAny converts a node to the corresponding JSON-shaped Go value. Objects
// become maps, so field order is lost.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
