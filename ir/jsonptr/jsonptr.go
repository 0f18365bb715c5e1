package jsonptr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPointer reports malformed pointer text: non-empty without a
// leading "/".
var ErrInvalidPointer = errors.New("invalid pointer")

// Segment is one step of a parsed pointer. Exactly one of Key, Index is set,
// except for the append sentinel "-" which carries both its literal key text
// and the Append flag so that it can act as a plain object key outside array
// context.
type Segment struct {
	Key    *string
	Index  *int
	Append bool
}

func KeySegment(k string) Segment {
	return Segment{Key: &k}
}

func IndexSegment(i int) Segment {
	return Segment{Index: &i}
}

func AppendSegment() Segment {
	k := appendToken
	return Segment{Key: &k, Append: true}
}

const appendToken = "-"

func (s Segment) IsKey() bool {
	return s.Key != nil && !s.Append
}

func (s Segment) IsIndex() bool {
	return s.Index != nil
}

// FieldName returns the object-key reading of the segment. Index segments are
// re-stringified to their canonical decimal form: objects only ever have
// string keys, and the parser cannot know whether a numeric token will land
// on an object or an array.
func (s Segment) FieldName() string {
	if s.Key != nil {
		return *s.Key
	}
	return strconv.Itoa(*s.Index)
}

// String returns the segment as an escaped pointer token.
func (s Segment) String() string {
	if s.Index != nil {
		return strconv.Itoa(*s.Index)
	}
	return escapeToken(*s.Key)
}

// Path is a parsed pointer, root to leaf. The empty path addresses the whole
// document.
type Path []Segment

// Parse converts pointer text to a Path.
//
//	Parse("")   → Path{}
//	Parse("/")  → Path{KeySegment("")}
//	Parse("/a") → Path{KeySegment("a")}
func Parse(ptr string) (Path, error) {
	if ptr == "" {
		return Path{}, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not start with '/'", ErrInvalidPointer, ptr)
	}
	toks := strings.Split(ptr[1:], "/")
	res := make(Path, len(toks))
	for i, tok := range toks {
		res[i] = classify(unescapeToken(tok))
	}
	return res, nil
}

// MustParse is Parse for statically known pointers.
func MustParse(ptr string) Path {
	p, err := Parse(ptr)
	if err != nil {
		panic(err)
	}
	return p
}

// unescapeToken decodes one pointer token. The replacement order is load
// bearing: quotes and backslashes first, then "~1", then "~0", so that "~01"
// decodes to "~1" and not "/1".
func unescapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, `\"`, `"`)
	tok = strings.ReplaceAll(tok, `\\`, `\`)
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

func escapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return tok
}

// classify decides whether an unescaped token is an array index, the append
// sentinel, or an object key. Only the canonical decimal form of a
// non-negative integer is an index: "0" is, "03" is not (JSON numbers have no
// leading zeros, so "03" can never be a valid index and must be a key), and
// any non-digit content keeps the token a key ("8bar").
func classify(tok string) Segment {
	if tok == appendToken {
		return AppendSegment()
	}
	if !canonicalIndex(tok) {
		return KeySegment(tok)
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		// out of int range, cannot index an array anyway
		return KeySegment(tok)
	}
	return IndexSegment(i)
}

func canonicalIndex(tok string) bool {
	if tok == "" {
		return false
	}
	if tok == "0" {
		return true
	}
	if tok[0] == '0' {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the pointer text for the path, with keys re-escaped. The
// result parses back to an equivalent path; it need not be byte identical to
// the text the path was parsed from (e.g. `\"` escapes are not re-applied).
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	res, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = res
	return nil
}
