package ir

import (
	"errors"
	"testing"

	"github.com/signadot/go-jsonptr/ir/jsonptr"
)

func TestGetPointer(t *testing.T) {
	doc := mustJSON(t, `{"foo": {"bar": [1, 2, 3]}, "8": "eight", "": "empty", "a/b": "slash"}`)
	tests := []struct {
		name string
		ptr  string
		want string
	}{
		{"whole document", "", `{"foo":{"bar":[1,2,3]},"8":"eight","":"empty","a/b":"slash"}`},
		{"nested array element", "/foo/bar/1", `2`},
		{"index re-stringified against object", "/8", `"eight"`},
		{"empty key", "/", `"empty"`},
		{"escaped slash", "/a~1b", `"slash"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.GetPointer(tt.ptr)
			if err != nil {
				t.Fatalf("GetPointer(%q): %v", tt.ptr, err)
			}
			if !Equal(got, mustJSON(t, tt.want)) {
				d, _ := ToJSON(got)
				t.Errorf("GetPointer(%q) = %s, want %s", tt.ptr, d, tt.want)
			}
		})
	}
}

func TestGetPointerInvalidPath(t *testing.T) {
	doc := mustJSON(t, `{"foo": [1, 2, 3], "s": "leaf"}`)
	for _, ptr := range []string{
		"/foo/10",  // out of range
		"/foo/-",   // no value at the append position
		"/foo/bar", // key against array
		"/foo/03",  // leading zero token is a key, invalid against array
		"/bar",     // absent field
		"/s/0",     // traversal past a leaf
	} {
		_, err := doc.GetPointer(ptr)
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("GetPointer(%q) = %v, want ErrInvalidPath", ptr, err)
		}
	}
}

func TestGetPointerInvalidPointer(t *testing.T) {
	doc := mustJSON(t, `{}`)
	_, err := doc.GetPointer("foo")
	if !errors.Is(err, jsonptr.ErrInvalidPointer) {
		t.Errorf("GetPointer(foo) = %v, want ErrInvalidPointer", err)
	}
}

func TestGetPathMatchesGetPointer(t *testing.T) {
	doc := mustJSON(t, `{"foo": {"bar": [1, {"baz": true}]}}`)
	for _, ptr := range []string{"", "/foo", "/foo/bar/1/baz", "/foo/bar/0"} {
		p, err := jsonptr.Parse(ptr)
		if err != nil {
			t.Fatal(err)
		}
		a, errA := doc.GetPointer(ptr)
		b, errB := doc.GetPath(p)
		if (errA == nil) != (errB == nil) {
			t.Fatalf("GetPointer/GetPath disagree on %q: %v vs %v", ptr, errA, errB)
		}
		if errA == nil && a != b {
			t.Errorf("GetPointer and GetPath returned different nodes for %q", ptr)
		}
	}
}

func TestGetPathShares(t *testing.T) {
	doc := mustJSON(t, `{"foo": [1, 2]}`)
	got, err := doc.GetPointer("/foo")
	if err != nil {
		t.Fatal(err)
	}
	if got != doc.Values[0] {
		t.Error("fetch should return the subtree itself, not a copy")
	}
}

func TestTransformDirect(t *testing.T) {
	doc := mustJSON(t, `{"foo": [1, 2, 3], "bar": {"keep": true}}`)
	res, err := doc.TransformPointer("/foo/0", Direct(func(node *Node) (*Node, error) {
		return FromInt(*node.Int64 + 1), nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(res, mustJSON(t, `{"foo": [2, 2, 3], "bar": {"keep": true}}`)) {
		t.Errorf("unexpected result")
	}
	// input untouched
	if !Equal(doc, mustJSON(t, `{"foo": [1, 2, 3], "bar": {"keep": true}}`)) {
		t.Errorf("input was modified")
	}
	// untouched sibling subtree is shared, not copied
	if Get(res, "bar") != Get(doc, "bar") {
		t.Errorf("sibling subtree not shared")
	}
	if Get(res, "foo").Values[1] != Get(doc, "foo").Values[1] {
		t.Errorf("sibling array element not shared")
	}
}

func TestTransformDirectAtRoot(t *testing.T) {
	doc := mustJSON(t, `{"a": 1}`)
	res, err := doc.TransformPointer("", Direct(func(node *Node) (*Node, error) {
		if node != doc {
			t.Error("direct update at root should see the document itself")
		}
		return FromString("swapped"), nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Type != StringType || res.String != "swapped" {
		t.Errorf("unexpected result %v", res)
	}
}

func TestTransformOnParent(t *testing.T) {
	doc := mustJSON(t, `{"foo": {"bar": 1}}`)
	res, err := doc.TransformPointer("/foo/bar", OnParent(func(parent *Node, last jsonptr.Segment) (*Node, error) {
		if parent != Get(doc, "foo") {
			t.Error("parent should be the container of the final segment")
		}
		if last.FieldName() != "bar" {
			t.Errorf("last segment = %q", last.FieldName())
		}
		// replace the whole parent container
		return FromMap(map[string]*Node{"rebuilt": FromBool(true)}), nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(res, mustJSON(t, `{"foo": {"rebuilt": true}}`)) {
		t.Errorf("unexpected result")
	}
}

func TestTransformOnParentAtRoot(t *testing.T) {
	doc := mustJSON(t, `{}`)
	_, err := doc.TransformPath(jsonptr.Path{}, OnParent(func(*Node, jsonptr.Segment) (*Node, error) {
		t.Error("update should not run")
		return nil, nil
	}))
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("got %v, want ErrInvalidPath", err)
	}
}

func TestTransformErrorPropagatesVerbatim(t *testing.T) {
	doc := mustJSON(t, `{"foo": [1]}`)
	errBoom := errors.New("boom")
	_, err := doc.TransformPointer("/foo/0", Direct(func(*Node) (*Node, error) {
		return nil, errBoom
	}))
	if !errors.Is(err, errBoom) {
		t.Errorf("got %v, want the update's own error", err)
	}
	if err != errBoom {
		t.Errorf("update error should be untouched, got %v", err)
	}
}

func TestTransformInvalidPath(t *testing.T) {
	doc := mustJSON(t, `{"foo": [1, 2], "s": 3}`)
	direct := Direct(func(node *Node) (*Node, error) { return node, nil })
	for _, ptr := range []string{"/bar/x", "/foo/5/x", "/s/0/x"} {
		res, err := doc.TransformPointer(ptr, direct)
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("TransformPointer(%q) = %v, want ErrInvalidPath", ptr, err)
		}
		if res != nil {
			t.Errorf("no partial document may be returned, got %v", res)
		}
	}
}

func TestPredicates(t *testing.T) {
	arr := mustJSON(t, `[1, 2, 3]`)
	obj := mustJSON(t, `{"0": 1}`)
	tests := []struct {
		name                  string
		node                  *Node
		seg                   jsonptr.Segment
		index, appendTo, slot bool
	}{
		{"in-bounds index", arr, jsonptr.IndexSegment(0), true, false, true},
		{"last index", arr, jsonptr.IndexSegment(2), true, false, true},
		{"out of bounds", arr, jsonptr.IndexSegment(3), false, false, false},
		{"append sentinel on array", arr, jsonptr.AppendSegment(), false, true, true},
		{"key on array", arr, jsonptr.KeySegment("x"), false, false, false},
		{"index on object", obj, jsonptr.IndexSegment(0), false, false, false},
		{"append on object", obj, jsonptr.AppendSegment(), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsArrayIndex(tt.node, tt.seg); got != tt.index {
				t.Errorf("IsArrayIndex = %v, want %v", got, tt.index)
			}
			if got := IsArrayAppend(tt.node, tt.seg); got != tt.appendTo {
				t.Errorf("IsArrayAppend = %v, want %v", got, tt.appendTo)
			}
			if got := IsArraySlot(tt.node, tt.seg); got != tt.slot {
				t.Errorf("IsArraySlot = %v, want %v", got, tt.slot)
			}
		})
	}
}
