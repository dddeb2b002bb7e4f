// Package parser is a single-token-lookahead recursive-descent consumer of
// the lexer package that builds the ast package's tagged-variant tree.
package parser

import (
	"fmt"
	"io"

	"github.com/lukeod/minic/ast"
	"github.com/lukeod/minic/diag"
	"github.com/lukeod/minic/lexer"
	"github.com/lukeod/minic/lexer/token"
)

// Parser's state is a reference to the lexer, a copy of the current
// lookahead token, and the reporter that receives syntax diagnostics.
type Parser struct {
	lex      *lexer.Lexer
	cur      token.Token
	reporter *diag.Reporter
}

// New wraps an already-constructed lexer. Most callers want Parse instead.
func New(lex *lexer.Lexer, reporter *diag.Reporter) *Parser {
	p := &Parser{lex: lex, reporter: reporter}
	p.cur = lex.Peek()
	return p
}

// Parse reads a complete source file from r and returns its parse tree.
// Diagnostics are reported to reporter; the tree may still contain absent
// slots where the grammar was violated.
func Parse(r io.Reader, filename string, reporter *diag.Reporter) *ast.Program {
	lex := lexer.New(r, filename, reporter)
	defer lex.Close()
	return New(lex, reporter).ParseProgram()
}

// --- Helpers ---

func (p *Parser) check(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) advance() {
	p.lex.Advance()
	p.cur = p.lex.Peek()
}

// eat reports "expected <kind>, got <actual>" and returns false when the
// current token doesn't match; it does not attempt recovery itself.
func (p *Parser) eat(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	p.errorf("expected %s, got %s", k, p.cur)
	return false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	if p.reporter != nil {
		p.reporter.ReportAt(p.cur.Filename, p.cur.Line, p.cur.Column, fmt.Sprintf(format, args...))
	}
}

func posOf(t token.Token) ast.Position {
	return ast.Position{Line: t.Line, Column: t.Column}
}

// ---- program = { top_decl | pp_directive } ----

// ParseProgram parses a whole translation unit.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Position: posOf(p.cur)}
	for !p.check(token.EOF) {
		if p.check(token.Pound) {
			p.parsePPDirective()
			continue
		}
		if decl := p.parseTopDecl(); decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	return prog
}

// pp_directive = '#' IDENT { any token except ';' or EOF } [';']
//
// This skips to the next ';' rather than the next newline, which does not
// match C preprocessor semantics; it's a deliberate simplification, not an
// oversight — directives are discarded, not interpreted.
func (p *Parser) parsePPDirective() {
	p.advance() // '#'
	if !p.check(token.Identifier) {
		p.errorf("expected identifier after '#', got %s", p.cur)
	} else {
		p.advance()
	}
	for !p.check(token.Semicolon) && !p.check(token.EOF) {
		p.advance()
	}
	if p.check(token.Semicolon) {
		p.advance()
	}
}

// parseType recognizes the three-word type-specifier alphabet.
func (p *Parser) parseType() (ast.DataType, bool) {
	switch p.cur.Kind {
	case token.Int:
		p.advance()
		return ast.Int, true
	case token.Char:
		p.advance()
		return ast.Char, true
	case token.Void:
		p.advance()
		return ast.Void, true
	default:
		p.errorf("expected type specifier, got %s", p.cur)
		return ast.Void, false
	}
}

// top_decl = type IDENT ( function_tail | variable_tail )
func (p *Parser) parseTopDecl() ast.Node {
	pos := posOf(p.cur)
	typ, ok := p.parseType()
	if !ok {
		p.syncTopLevel()
		return nil
	}
	if !p.check(token.Identifier) {
		p.errorf("expected identifier, got %s", p.cur)
		p.syncTopLevel()
		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	if p.check(token.LParen) {
		return p.parseFunctionTail(pos, name, typ)
	}
	return p.parseVariableTail(pos, name, typ, nil)
}

// function_tail = '(' [param_list] ')' ( compound_stmt | ';' )
func (p *Parser) parseFunctionTail(pos ast.Position, name string, ret ast.DataType) *ast.Function {
	fn := &ast.Function{Position: pos, Name: name, ReturnType: ret}
	p.eat(token.LParen)
	fn.Params = p.parseParamList()
	p.eat(token.RParen)
	if p.check(token.LBrace) {
		fn.Body = p.parseCompoundStmt()
	} else {
		p.eat(token.Semicolon)
	}
	return fn
}

// param_list = param { ',' param }
//
// A parameter list spelled as just "void" with no identifier yields an
// empty parameter list.
func (p *Parser) parseParamList() *ast.ParamList {
	pl := &ast.ParamList{Position: posOf(p.cur)}
	if p.check(token.RParen) {
		return pl
	}
	pl.Params = append(pl.Params, p.parseParam())
	for p.check(token.Comma) {
		p.advance()
		pl.Params = append(pl.Params, p.parseParam())
	}
	if len(pl.Params) == 1 {
		only := pl.Params[0]
		if only.Type == ast.Void && only.Name == "" && !only.IsArray {
			pl.Params = nil
		}
	}
	return pl
}

// param = type [ IDENT [ '[' ']' ] ]
func (p *Parser) parseParam() *ast.Parameter {
	pos := posOf(p.cur)
	typ, ok := p.parseType()
	param := &ast.Parameter{Position: pos, Type: typ}
	if !ok {
		return param
	}
	if p.check(token.Identifier) {
		param.Name = p.cur.Lexeme
		p.advance()
		if p.check(token.LBracket) {
			p.advance()
			p.eat(token.RBracket)
			param.IsArray = true
		}
	}
	return param
}

// variable_tail = [ '[' [INT] ']' ] [ '=' expression ] ';'
//
// Shared by top-level declarations and var_decl inside a compound
// statement. A missing closing ';' is reported and, when onFail is
// non-nil, onFail is invoked to resynchronize. The statement-level caller
// passes its panic-mode sync; the top-level caller passes nil, so parsing
// resumes at the token where the ';' was expected. A missing optional slot
// elsewhere is left absent, not treated as a failed construct.
func (p *Parser) parseVariableTail(pos ast.Position, name string, typ ast.DataType, onFail func()) *ast.VariableDecl {
	vd := &ast.VariableDecl{Position: pos, Name: name, Type: typ}
	if p.check(token.LBracket) {
		p.advance()
		vd.IsArray = true
		if p.check(token.Integer) {
			vd.ArraySize = atoi(p.cur.Lexeme)
			p.advance()
		}
		p.eat(token.RBracket)
	}
	if p.check(token.Assign) {
		p.advance()
		vd.Init = p.parseExpression()
	}
	if !p.eat(token.Semicolon) && onFail != nil {
		onFail()
	}
	return vd
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
