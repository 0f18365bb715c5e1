package encode

import "github.com/signadot/go-jsonptr/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent sets the number of spaces per JSON nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Wire selects compact single-line JSON output.
func Wire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeColors enables ANSI colored JSON output.
func EncodeColors(v bool) EncodeOption {
	return func(es *EncState) { es.color = v }
}
