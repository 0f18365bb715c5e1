package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports structural equality of two nodes. Object field order is not
// significant; array order is.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	af, aok := floatValue(a)
	bf, bok := floatValue(b)
	if aok && bok {
		return cmp.Compare(af, bf)
	}
	return strings.Compare(a.NumberString(), b.NumberString())
}

func floatValue(n *Node) (float64, bool) {
	if n.Float64 != nil {
		return *n.Float64, true
	}
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	return 0, false
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares objects by sorted field name, then value, so field
// order does not affect the result.
func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	if lenA != lenB {
		return cmp.Compare(lenA, lenB)
	}
	keysA := sortedFieldIndices(a)
	keysB := sortedFieldIndices(b)
	for i := range keysA {
		ai, bi := keysA[i], keysB[i]
		if c := strings.Compare(a.Fields[ai].String, b.Fields[bi].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[ai], b.Values[bi]); c != 0 {
			return c
		}
	}
	return 0
}

func sortedFieldIndices(node *Node) []int {
	res := make([]int, len(node.Fields))
	for i := range res {
		res[i] = i
	}
	slices.SortFunc(res, func(i, j int) int {
		return strings.Compare(node.Fields[i].String, node.Fields[j].String)
	})
	return res
}
