package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/minic/ast"
	"github.com/lukeod/minic/diag"
	"github.com/lukeod/minic/parser"
)

func mustParse(t *testing.T, src string) (*ast.Program, *diag.Reporter) {
	t.Helper()
	reporter := diag.New(nil)
	prog := parser.Parse(strings.NewReader(src), "t.c", reporter)
	require.NotNil(t, prog)
	return prog, reporter
}

func TestParseFunctionDefinition(t *testing.T) {
	prog, reporter := mustParse(t, `
		int add(int a, int b) {
			return a + b;
		}
	`)
	require.Equal(t, 0, reporter.Count())
	require.Len(t, prog.Decls, 1)

	fn, ok := prog.Decls[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, ast.Int, fn.ReturnType)
	require.Len(t, fn.Params.Params, 2)
	assert.Equal(t, "a", fn.Params.Params[0].Name)
	assert.Equal(t, "b", fn.Params.Params[1].Name)

	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Stmts, 1)
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Op)
}

func TestParseVoidParamListIsEmpty(t *testing.T) {
	prog, reporter := mustParse(t, `int main(void) { return 0; }`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	assert.Empty(t, fn.Params.Params)
}

func TestParseTopLevelVariableDeclaration(t *testing.T) {
	prog, reporter := mustParse(t, `int counter = 0;`)
	require.Equal(t, 0, reporter.Count())
	require.Len(t, prog.Decls, 1)
	vd, ok := prog.Decls[0].(*ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "counter", vd.Name)
	require.NotNil(t, vd.Init)
	lit, ok := vd.Init.(*ast.Integer)
	require.True(t, ok)
	assert.Equal(t, 0, lit.Value)
}

func TestParseArrayDeclaration(t *testing.T) {
	prog, reporter := mustParse(t, `int nums[10];`)
	require.Equal(t, 0, reporter.Count())
	vd := prog.Decls[0].(*ast.VariableDecl)
	assert.True(t, vd.IsArray)
	assert.Equal(t, 10, vd.ArraySize)
}

// TestParseOperatorPrecedenceAndAssociativity covers arithmetic precedence,
// left-associativity of additive/multiplicative operators, and
// right-associativity of assignment, by checking the tree shape directly.
func TestParseOperatorPrecedenceAndAssociativity(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			x = 1 + 2 * 3 - 4;
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	exprStmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	assign := exprStmt.Expr.(*ast.AssignExpr)

	// (1 + (2*3)) - 4, left-associative at the additive level.
	top := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, ast.Sub, top.Op)

	right := top.Right.(*ast.Integer)
	assert.Equal(t, 4, right.Value)

	left := top.Left.(*ast.BinaryExpr)
	assert.Equal(t, ast.Add, left.Op)
	assert.Equal(t, 1, left.Left.(*ast.Integer).Value)

	mul := left.Right.(*ast.BinaryExpr)
	assert.Equal(t, ast.Mul, mul.Op)
	assert.Equal(t, 2, mul.Left.(*ast.Integer).Value)
	assert.Equal(t, 3, mul.Right.(*ast.Integer).Value)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			a = b = 1;
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	exprStmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	outer := exprStmt.Expr.(*ast.AssignExpr)
	assert.Equal(t, "a", outer.Target.(*ast.Identifier).Name)

	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok, "assignment must nest on the value side, not the target side")
	assert.Equal(t, "b", inner.Target.(*ast.Identifier).Name)
}

func TestParseLogicalAndRelationalPrecedence(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			x = a < b || c == d && e;
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	assign := fn.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr)

	or := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, ast.LogOr, or.Op)
	assert.Equal(t, ast.Lt, or.Left.(*ast.BinaryExpr).Op)

	and := or.Right.(*ast.BinaryExpr)
	assert.Equal(t, ast.LogAnd, and.Op)
	assert.Equal(t, ast.Eq, and.Left.(*ast.BinaryExpr).Op)
}

func TestParseIfElseChain(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			if (x)
				return 1;
			else if (y)
				return 2;
			else
				return 3;
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	outer := fn.Body.Stmts[0].(*ast.IfStmt)
	require.NotNil(t, outer.Else)
	inner, ok := outer.Else.(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, inner.Else)
}

func TestParseWhileLoop(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			while (i < 10)
				i = i + 1;
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	ws, ok := fn.Body.Stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	assert.Equal(t, ast.Lt, ws.Cond.(*ast.BinaryExpr).Op)
}

func TestParseCallWithArguments(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			g(1, 2, x);
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	call := fn.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	require.NotNil(t, call.Args)
	assert.Len(t, call.Args.Args, 3)
}

func TestParseCallWithNoArguments(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			g();
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	call := fn.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	assert.Nil(t, call.Args)
}

func TestParseSubscriptAndPostfixIncrement(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			a[i]++;
		}
	`)
	require.Equal(t, 0, reporter.Count())
	fn := prog.Decls[0].(*ast.Function)
	un := fn.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.UnaryExpr)
	assert.Equal(t, ast.PostInc, un.Op)
	_, ok := un.Operand.(*ast.SubscriptExpr)
	assert.True(t, ok)
}

func TestParsePreprocessorDirectiveIsSkipped(t *testing.T) {
	// A directive is skipped up to and including the next ';', not up to
	// the end of its line.
	prog, reporter := mustParse(t, `
		#include <stdio.h>;
		int main(void) { return 0; }
	`)
	require.Equal(t, 0, reporter.Count())
	require.Len(t, prog.Decls, 1)
	_, ok := prog.Decls[0].(*ast.Function)
	assert.True(t, ok)
}

func TestParseMissingSemicolonRecoversAtTopLevel(t *testing.T) {
	prog, reporter := mustParse(t, `
		int x = 1
		int y = 2;
	`)
	assert.Greater(t, reporter.Count(), 0)
	require.Len(t, prog.Decls, 2, "parser must resynchronize and still see both declarations")
	assert.Equal(t, "y", prog.Decls[1].(*ast.VariableDecl).Name)
}

func TestParseInvalidStatementRecoversInsideBlock(t *testing.T) {
	prog, reporter := mustParse(t, `
		int f() {
			@;
			return 1;
		}
	`)
	assert.Greater(t, reporter.Count(), 0)
	fn := prog.Decls[0].(*ast.Function)
	found := false
	for _, stmt := range fn.Body.Stmts {
		if ret, ok := stmt.(*ast.ReturnStmt); ok {
			found = true
			assert.Equal(t, 1, ret.Value.(*ast.Integer).Value)
		}
	}
	assert.True(t, found, "statements after a malformed one must still be parsed")
}

func TestParseMultipleTopLevelDeclarations(t *testing.T) {
	prog, reporter := mustParse(t, `
		int global;
		int helper(int n) {
			return n;
		}
		int main(void) {
			return helper(global);
		}
	`)
	require.Equal(t, 0, reporter.Count())
	require.Len(t, prog.Decls, 3)
}
