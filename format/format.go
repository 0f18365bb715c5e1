// Package format names the document serialization formats the module reads
// and writes.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

var ErrBadFormat = errors.New("unrecognized format")

type Format int

const (
	// AutoFormat lets parse sniff the input: JSON first, then YAML.
	AutoFormat Format = iota
	JSONFormat
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	default:
		return "auto"
	}
}

func ParseFormat(v string) (Format, error) {
	switch v {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "yml", "y":
		return YAMLFormat, nil
	case "auto", "":
		return AutoFormat, nil
	default:
		return AutoFormat, fmt.Errorf("%w: %q", ErrBadFormat, v)
	}
}

// FromPath guesses a format from a file extension, falling back to
// AutoFormat.
func FromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return JSONFormat
	case ".yaml", ".yml":
		return YAMLFormat
	default:
		return AutoFormat
	}
}

// Suffix returns the file extension for the given format.
func Suffix(f Format) string {
	switch f {
	case JSONFormat:
		return ".json"
	default:
		return ".yaml"
	}
}
