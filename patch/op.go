package patch

import (
	"encoding/json"
	"errors"

	"github.com/signadot/go-jsonptr/ir"
	"github.com/signadot/go-jsonptr/ir/jsonptr"
)

var (
	// ErrInvalidTarget reports an operation whose path resolves but whose
	// precondition fails: replace or remove of an absent field or of the
	// append position, add into a non-container.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrTestFailed reports a test operation whose value differs from the
	// document.
	ErrTestFailed = errors.New("test failed")
)

type Op string

const (
	OpAdd     Op = "add"
	OpReplace Op = "replace"
	OpRemove  Op = "remove"
	OpMove    Op = "move"
	OpCopy    Op = "copy"
	OpTest    Op = "test"
)

// Operation is a single patch operation in wire-format shape. A decoded
// "value": null arrives as a nil Value and is treated as an explicit JSON
// null by the operations that require a value.
type Operation struct {
	Op    Op       `json:"op"`
	Path  string   `json:"path"`
	From  string   `json:"from,omitempty"`
	Value *ir.Node `json:"value,omitempty"`

	// set by the *Path constructors so pre-parsed paths skip re-parsing
	path, from jsonptr.Path
	parsed     bool
}

func Add(path string, value *ir.Node) Operation {
	return Operation{Op: OpAdd, Path: path, Value: value}
}

func AddPath(path jsonptr.Path, value *ir.Node) Operation {
	return Operation{Op: OpAdd, Path: path.String(), Value: value, path: path, parsed: true}
}

func Replace(path string, value *ir.Node) Operation {
	return Operation{Op: OpReplace, Path: path, Value: value}
}

func ReplacePath(path jsonptr.Path, value *ir.Node) Operation {
	return Operation{Op: OpReplace, Path: path.String(), Value: value, path: path, parsed: true}
}

func Remove(path string) Operation {
	return Operation{Op: OpRemove, Path: path}
}

func RemovePath(path jsonptr.Path) Operation {
	return Operation{Op: OpRemove, Path: path.String(), path: path, parsed: true}
}

func Move(from, path string) Operation {
	return Operation{Op: OpMove, From: from, Path: path}
}

func MovePath(from, path jsonptr.Path) Operation {
	return Operation{
		Op:     OpMove,
		From:   from.String(),
		Path:   path.String(),
		from:   from,
		path:   path,
		parsed: true,
	}
}

func Copy(from, path string) Operation {
	return Operation{Op: OpCopy, From: from, Path: path}
}

func CopyPath(from, path jsonptr.Path) Operation {
	return Operation{
		Op:     OpCopy,
		From:   from.String(),
		Path:   path.String(),
		from:   from,
		path:   path,
		parsed: true,
	}
}

func Test(path string, value *ir.Node) Operation {
	return Operation{Op: OpTest, Path: path, Value: value}
}

func TestPath(path jsonptr.Path, value *ir.Node) Operation {
	return Operation{Op: OpTest, Path: path.String(), Value: value, path: path, parsed: true}
}

// paths resolves the textual pointers of the operation. Parse failures
// surface as jsonptr.ErrInvalidPointer before the document is touched.
func (o *Operation) paths() (path, from jsonptr.Path, err error) {
	if o.parsed {
		return o.path, o.from, nil
	}
	path, err = jsonptr.Parse(o.Path)
	if err != nil {
		return nil, nil, err
	}
	switch o.Op {
	case OpMove, OpCopy:
		from, err = jsonptr.Parse(o.From)
		if err != nil {
			return nil, nil, err
		}
	}
	return path, from, nil
}

func (o *Operation) value() *ir.Node {
	if o.Value == nil {
		return ir.Null()
	}
	return o.Value
}

// Patch is an ordered list of operations.
type Patch []Operation

// DecodePatch decodes a wire-format patch, a JSON array of operation
// objects.
func DecodePatch(d []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(d, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Encode encodes the patch in wire format.
func (p Patch) Encode() ([]byte, error) {
	return json.Marshal(p)
}
