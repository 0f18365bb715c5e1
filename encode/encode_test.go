package encode

import (
	"bytes"
	"testing"

	"github.com/signadot/go-jsonptr/format"
	"github.com/signadot/go-jsonptr/ir"
)

func mustJSON(t *testing.T, d string) *ir.Node {
	t.Helper()
	node, err := ir.FromJSON([]byte(d))
	if err != nil {
		t.Fatalf("FromJSON(%q): %v", d, err)
	}
	return node
}

func TestMustString(t *testing.T) {
	node := mustJSON(t, `{"b":1,"a":[true,null]}`)
	if got := MustString(node); got != `{"b":1,"a":[true,null]}` {
		t.Errorf("MustString = %s", got)
	}
}

func TestEncodeIndented(t *testing.T) {
	node := mustJSON(t, `{"a":[1,2],"b":"x"}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": [
    1,
    2
  ],
  "b": "x"
}`
	if buf.String() != want {
		t.Errorf("indented encode:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	for in, want := range map[string]string{
		`{}`: "{}",
		`[]`: "[]",
	} {
		buf := bytes.NewBuffer(nil)
		if err := Encode(mustJSON(t, in), buf); err != nil {
			t.Fatal(err)
		}
		if buf.String() != want {
			t.Errorf("Encode(%s) = %q", in, buf.String())
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	node := mustJSON(t, `{"a":[1,"x"]}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	want := "a:\n- 1\n- x\n"
	if buf.String() != want {
		t.Errorf("yaml encode = %q, want %q", buf.String(), want)
	}
}
