package debug

import (
	"fmt"
	"os"

	"github.com/signadot/go-jsonptr/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments as compact JSON so
// trace lines stay single line.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			d, err := ir.ToJSON(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
