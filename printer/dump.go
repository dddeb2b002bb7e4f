// Package printer implements a debug pretty-printer for the parse tree: a
// peripheral collaborator to the core lexer/parser, not part of it.
package printer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lukeod/minic/ast"
)

const indentUnit = "  "

// Dump writes a human-readable, indentation-based tree dump: two spaces per
// level, each node's kind and summary on one line, labelled sub-sections
// one level deeper, and their child subtrees a further level deeper.
func Dump(w io.Writer, node ast.Node) error {
	bw := bufio.NewWriter(w)
	d := &dumper{w: bw}
	d.node(node, 0)
	return bw.Flush()
}

type dumper struct {
	w *bufio.Writer
}

func (d *dumper) line(indent int, format string, args ...interface{}) {
	for i := 0; i < indent; i++ {
		d.w.WriteString(indentUnit)
	}
	fmt.Fprintf(d.w, format, args...)
	d.w.WriteByte('\n')
}

// section prints a labelled sub-section header one level deeper than the
// node it belongs to. Callers print the section's content two levels
// deeper.
func (d *dumper) section(indent int, label string) {
	d.line(indent+1, "%s", label)
}

// node prints one node at the given indent, dispatching on concrete type.
// A nil node prints the "NULL" sentinel for a required-but-missing child.
func (d *dumper) node(n ast.Node, indent int) {
	if n == nil || isNilNode(n) {
		d.line(indent, "NULL")
		return
	}
	switch v := n.(type) {
	case *ast.Program:
		d.line(indent, "Program")
		d.section(indent, "Declarations:")
		for _, decl := range v.Decls {
			d.node(decl, indent+2)
		}
	case *ast.Function:
		d.line(indent, "Function name=%s return=%s", v.Name, v.ReturnType)
		d.section(indent, "Parameters:")
		d.node(v.Params, indent+2)
		if v.Body != nil {
			d.section(indent, "Body:")
			d.node(v.Body, indent+2)
		} else {
			d.line(indent+1, "Body: (none)")
		}
	case *ast.ParamList:
		if len(v.Params) == 0 {
			d.line(indent, "ParamList (empty)")
			return
		}
		d.line(indent, "ParamList")
		for _, param := range v.Params {
			d.node(param, indent+1)
		}
	case *ast.Parameter:
		name := v.Name
		if name == "" {
			name = "(none)"
		}
		d.line(indent, "Parameter type=%s name=%s array=%t", v.Type, name, v.IsArray)
	case *ast.CompoundStmt:
		d.line(indent, "CompoundStmt")
		for _, stmt := range v.Stmts {
			d.node(stmt, indent+1)
		}
	case *ast.VariableDecl:
		d.line(indent, "VariableDecl name=%s type=%s array=%t size=%d", v.Name, v.Type, v.IsArray, v.ArraySize)
		if v.Init != nil {
			d.section(indent, "Initializer:")
			d.node(v.Init, indent+2)
		} else {
			d.line(indent+1, "Initializer: (none)")
		}
	case *ast.IfStmt:
		d.line(indent, "IfStmt")
		d.section(indent, "Condition:")
		d.node(v.Cond, indent+2)
		d.section(indent, "Then Branch:")
		d.node(v.Then, indent+2)
		if v.Else != nil {
			d.section(indent, "Else Branch:")
			d.node(v.Else, indent+2)
		} else {
			d.line(indent+1, "Else Branch: (none)")
		}
	case *ast.WhileStmt:
		d.line(indent, "WhileStmt")
		d.section(indent, "Condition:")
		d.node(v.Cond, indent+2)
		d.section(indent, "Body:")
		d.node(v.Body, indent+2)
	case *ast.ReturnStmt:
		d.line(indent, "ReturnStmt")
		if v.Value != nil {
			d.section(indent, "Value:")
			d.node(v.Value, indent+2)
		} else {
			d.line(indent+1, "Value: (none)")
		}
	case *ast.ExprStmt:
		d.line(indent, "ExprStmt")
		if v.Expr != nil {
			d.node(v.Expr, indent+1)
		} else {
			d.line(indent+1, "(none)")
		}
	case *ast.AssignExpr:
		d.line(indent, "AssignExpr")
		d.section(indent, "Target:")
		d.node(v.Target, indent+2)
		d.section(indent, "Value:")
		d.node(v.Value, indent+2)
	case *ast.BinaryExpr:
		d.line(indent, "BinaryExpr op=%s", v.Op)
		d.section(indent, "Left:")
		d.node(v.Left, indent+2)
		d.section(indent, "Right:")
		d.node(v.Right, indent+2)
	case *ast.UnaryExpr:
		d.line(indent, "UnaryExpr op=%s", v.Op)
		d.section(indent, "Operand:")
		d.node(v.Operand, indent+2)
	case *ast.CallExpr:
		d.line(indent, "CallExpr")
		d.section(indent, "Callee:")
		d.node(v.Callee, indent+2)
		d.section(indent, "Arguments:")
		if v.Args != nil {
			d.node(v.Args, indent+2)
		} else {
			d.line(indent+2, "(none)")
		}
	case *ast.ArgList:
		if len(v.Args) == 0 {
			d.line(indent, "ArgList (empty)")
			return
		}
		d.line(indent, "ArgList")
		for _, arg := range v.Args {
			d.node(arg, indent+1)
		}
	case *ast.SubscriptExpr:
		d.line(indent, "SubscriptExpr")
		d.section(indent, "Array:")
		d.node(v.Array, indent+2)
		d.section(indent, "Index:")
		d.node(v.Index, indent+2)
	case *ast.Identifier:
		d.line(indent, "Identifier name=%s", v.Name)
	case *ast.Integer:
		d.line(indent, "Integer value=%d", v.Value)
	case *ast.Character:
		d.line(indent, "Character value=%s", formatChar(v.Value))
	case *ast.String:
		d.line(indent, "String value=%q", v.Value)
	default:
		d.line(indent, "NULL")
	}
}

// formatChar renders a decoded character value as printable ASCII ('c')
// or, for everything else, as '\xHH'.
func formatChar(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("'\\x%02X'", b)
}

// isNilNode reports whether n holds a typed-nil pointer (e.g. a (*ast.IfStmt)(nil)
// stored in an ast.Stmt interface), which n == nil does not catch.
func isNilNode(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.Program:
		return v == nil
	case *ast.Function:
		return v == nil
	case *ast.ParamList:
		return v == nil
	case *ast.Parameter:
		return v == nil
	case *ast.CompoundStmt:
		return v == nil
	case *ast.VariableDecl:
		return v == nil
	case *ast.IfStmt:
		return v == nil
	case *ast.WhileStmt:
		return v == nil
	case *ast.ReturnStmt:
		return v == nil
	case *ast.ExprStmt:
		return v == nil
	case *ast.AssignExpr:
		return v == nil
	case *ast.BinaryExpr:
		return v == nil
	case *ast.UnaryExpr:
		return v == nil
	case *ast.CallExpr:
		return v == nil
	case *ast.ArgList:
		return v == nil
	case *ast.SubscriptExpr:
		return v == nil
	case *ast.Identifier:
		return v == nil
	case *ast.Integer:
		return v == nil
	case *ast.Character:
		return v == nil
	case *ast.String:
		return v == nil
	default:
		return false
	}
}
