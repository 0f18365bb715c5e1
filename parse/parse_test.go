package parse

import (
	"testing"

	"github.com/signadot/go-jsonptr/format"
	"github.com/signadot/go-jsonptr/ir"
)

func TestParseJSON(t *testing.T) {
	node, err := Parse([]byte(`{"a": [1, 2], "b": null}`), ParseFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("unexpected type %s", node.Type)
	}
	if v, err := node.GetPointer("/a/1"); err != nil || *v.Int64 != 2 {
		t.Errorf("GetPointer(/a/1) = %v, %v", v, err)
	}
}

func TestParseYAML(t *testing.T) {
	in := []byte("a: 1\nb:\n  - x\n  - true\n")
	node, err := Parse(in, ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	want, err := ir.FromJSON([]byte(`{"a": 1, "b": ["x", true]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, want) {
		t.Errorf("unexpected YAML parse result")
	}
}

func TestParseAuto(t *testing.T) {
	// JSON is tried first
	node, err := Parse([]byte(`[1, 2]`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ArrayType {
		t.Errorf("unexpected type %s", node.Type)
	}
	// YAML catches what JSON rejects
	node, err = Parse([]byte("a: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType || ir.Get(node, "a") == nil {
		t.Errorf("unexpected fallback parse result")
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte(`{`), ParseFormat(format.JSONFormat)); err == nil {
		t.Error("malformed JSON should fail")
	}
}
