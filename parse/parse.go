// Package parse decodes JSON and YAML document bytes into ir nodes.
package parse

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/go-jsonptr/format"
	"github.com/signadot/go-jsonptr/ir"
)

type ParseOption func(*parseState)

type parseState struct {
	format format.Format
}

func ParseFormat(f format.Format) ParseOption {
	return func(ps *parseState) { ps.format = f }
}

// Parse decodes d into a node. With AutoFormat (the default), JSON is tried
// first and YAML second. JSON input preserves object field order; YAML input
// goes through a map and comes out with sorted fields.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	ps := &parseState{}
	for _, opt := range opts {
		opt(ps)
	}
	switch ps.format {
	case format.JSONFormat:
		return ir.FromJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		node, err := ir.FromJSON(d)
		if err == nil {
			return node, nil
		}
		return parseYAML(d)
	}
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}
