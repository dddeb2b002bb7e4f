package printer

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"

	"github.com/lukeod/minic/ast"
)

// DumpRepr writes an alternate, Go-syntax debug dump of the tree using
// alecthomas/repr. It exists alongside Dump for callers that want a literal
// view of every field while debugging the parser itself; the CLI exposes
// it behind -repr.
func DumpRepr(w io.Writer, node ast.Node) error {
	_, err := fmt.Fprintln(w, repr.String(node, repr.Indent("  ")))
	return err
}
