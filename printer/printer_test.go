package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/minic/diag"
	"github.com/lukeod/minic/parser"
	"github.com/lukeod/minic/printer"
)

func TestDumpIncludesEveryFunctionName(t *testing.T) {
	tree := parser.Parse(strings.NewReader(`
		int add(int a, int b) {
			return a + b;
		}
		int main(void) {
			return add(1, 2);
		}
	`), "t.c", diag.New(nil))

	var buf strings.Builder
	require.NoError(t, printer.Dump(&buf, tree))

	out := buf.String()
	assert.Contains(t, out, "Function name=add")
	assert.Contains(t, out, "Function name=main")
	assert.Contains(t, out, "BinaryExpr op=+")
	assert.Contains(t, out, "CallExpr")
}

func TestDumpMarksAbsentElseBranch(t *testing.T) {
	tree := parser.Parse(strings.NewReader(`
		int f() {
			if (x)
				return 1;
		}
	`), "t.c", diag.New(nil))

	var buf strings.Builder
	require.NoError(t, printer.Dump(&buf, tree))
	assert.Contains(t, buf.String(), "Else Branch: (none)")
}

func TestDumpReprProducesGoSyntax(t *testing.T) {
	tree := parser.Parse(strings.NewReader(`int x;`), "t.c", diag.New(nil))

	var buf strings.Builder
	require.NoError(t, printer.DumpRepr(&buf, tree))
	assert.Contains(t, buf.String(), "ast.Program")
}
