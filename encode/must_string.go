package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/go-jsonptr/ir"
)

// MustString renders node as compact JSON, panicking on unencodable input.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Wire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
