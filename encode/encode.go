// Package encode writes ir nodes as JSON or YAML text.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/signadot/go-jsonptr/format"
	"github.com/signadot/go-jsonptr/ir"
)

type EncState struct {
	format format.Format
	indent int
	wire   bool
	color  bool

	keyColor *color.Color
	strColor *color.Color
	numColor *color.Color
	litColor *color.Color
}

// Encode writes node to w. The default is JSON indented with two spaces;
// see the options for compact, colored and YAML output. YAML output goes
// through a map and loses object field order.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.color {
		es.keyColor = color.New(color.FgCyan)
		es.strColor = color.New(color.FgGreen)
		es.numColor = color.New(color.FgYellow)
		es.litColor = color.New(color.FgMagenta)
	}
	if es.format == format.YAMLFormat {
		d, err := yaml.Marshal(ir.ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return encode(node, w, es, 0)
}

func encode(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.literal("null"))
	case ir.BoolType:
		if node.Bool {
			return writeString(w, es.literal("true"))
		}
		return writeString(w, es.literal("false"))
	case ir.NumberType:
		return writeString(w, es.number(node.NumberString()))
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		return writeString(w, es.str(string(d)))
	case ir.ArrayType:
		return encodeArray(node, w, es, depth)
	case ir.ObjectType:
		return encodeObject(node, w, es, depth)
	default:
		return fmt.Errorf("cannot encode node type %s", node.Type)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if err := writeSeparator(w, es, i, depth+1); err != nil {
			return err
		}
		if err := encode(v, w, es, depth+1); err != nil {
			return err
		}
	}
	if err := writeClose(w, es, depth); err != nil {
		return err
	}
	return writeString(w, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	for i := range node.Fields {
		if err := writeSeparator(w, es, i, depth+1); err != nil {
			return err
		}
		d, err := json.Marshal(node.Fields[i].String)
		if err != nil {
			return err
		}
		key := es.key(string(d)) + ":"
		if !es.wire {
			key += " "
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es, depth+1); err != nil {
			return err
		}
	}
	if err := writeClose(w, es, depth); err != nil {
		return err
	}
	return writeString(w, "}")
}

func writeSeparator(w io.Writer, es *EncState, i, depth int) error {
	sep := ""
	if i > 0 {
		sep = ","
	}
	if !es.wire {
		sep += "\n" + strings.Repeat(" ", es.indent*depth)
	}
	return writeString(w, sep)
}

func writeClose(w io.Writer, es *EncState, depth int) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) key(v string) string {
	if es.keyColor == nil {
		return v
	}
	return es.keyColor.Sprint(v)
}

func (es *EncState) str(v string) string {
	if es.strColor == nil {
		return v
	}
	return es.strColor.Sprint(v)
}

func (es *EncState) number(v string) string {
	if es.numColor == nil {
		return v
	}
	return es.numColor.Sprint(v)
}

func (es *EncState) literal(v string) string {
	if es.litColor == nil {
		return v
	}
	return es.litColor.Sprint(v)
}
