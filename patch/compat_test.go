package patch

import (
	"testing"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/go-jsonptr/ir"
)

// TestAgainstReference cross-checks the evaluator against
// evanphx/json-patch on documents and patches where RFC 6902 pins down a
// single answer.
func TestAgainstReference(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
	}{
		{
			name:  "object add",
			doc:   `{"foo": "bar"}`,
			patch: `[{"op": "add", "path": "/baz", "value": "qux"}]`,
		},
		{
			name:  "array insert shifts right",
			doc:   `{"foo": ["bar", "baz"]}`,
			patch: `[{"op": "add", "path": "/foo/1", "value": "qux"}]`,
		},
		{
			name:  "append sentinel",
			doc:   `{"foo": ["bar"]}`,
			patch: `[{"op": "add", "path": "/foo/-", "value": ["abc", "def"]}]`,
		},
		{
			name:  "replace",
			doc:   `{"baz": "qux", "foo": "bar"}`,
			patch: `[{"op": "replace", "path": "/baz", "value": "boo"}]`,
		},
		{
			name:  "remove object field",
			doc:   `{"baz": "qux", "foo": "bar"}`,
			patch: `[{"op": "remove", "path": "/baz"}]`,
		},
		{
			name:  "remove array element shifts left",
			doc:   `{"foo": ["bar", "qux", "baz"]}`,
			patch: `[{"op": "remove", "path": "/foo/1"}]`,
		},
		{
			name:  "move",
			doc:   `{"foo": {"bar": "baz", "waldo": "fred"}, "qux": {"corge": "grault"}}`,
			patch: `[{"op": "move", "from": "/foo/waldo", "path": "/qux/thud"}]`,
		},
		{
			name:  "copy",
			doc:   `{"foo": {"bar": 1}}`,
			patch: `[{"op": "copy", "from": "/foo/bar", "path": "/baz"}]`,
		},
		{
			name:  "test then replace",
			doc:   `{"foo": 1}`,
			patch: `[{"op": "test", "path": "/foo", "value": 1}, {"op": "replace", "path": "/foo", "value": 2}]`,
		},
		{
			name:  "escaped keys",
			doc:   `{"a/b": 1, "m~n": 2}`,
			patch: `[{"op": "replace", "path": "/a~1b", "value": 10}, {"op": "remove", "path": "/m~0n"}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := DecodePatch([]byte(tt.patch))
			if err != nil {
				t.Fatalf("DecodePatch: %v", err)
			}
			mine, err := ops.Apply(mustJSON(t, tt.doc))
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}

			ref, err := jsonpatch.DecodePatch([]byte(tt.patch))
			if err != nil {
				t.Fatalf("reference DecodePatch: %v", err)
			}
			refOut, err := ref.Apply([]byte(tt.doc))
			if err != nil {
				t.Fatalf("reference Apply: %v", err)
			}
			refNode, err := ir.FromJSON(refOut)
			if err != nil {
				t.Fatalf("decoding reference output: %v", err)
			}
			if !ir.Equal(mine, refNode) {
				d, _ := ir.ToJSON(mine)
				t.Errorf("disagreement with reference:\n  ours:   %s\n  theirs: %s", d, refOut)
			}
		})
	}
}
