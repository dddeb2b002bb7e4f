package parser

import (
	"github.com/lukeod/minic/ast"
	"github.com/lukeod/minic/lexer/token"
)

// compound_stmt = '{' { statement } '}'
func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	cs := &ast.CompoundStmt{Position: posOf(p.cur)}
	p.eat(token.LBrace)
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			cs.Stmts = append(cs.Stmts, stmt)
		}
	}
	p.eat(token.RBrace)
	return cs
}

// statement = var_decl | if_stmt | while_stmt | return_stmt
//           | compound_stmt | expression_stmt
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.Int, token.Char, token.Void:
		return p.parseVarDeclStmt()
	case token.If:
		return p.parseIfStmt()
	case token.While:
		return p.parseWhileStmt()
	case token.Return:
		return p.parseReturnStmt()
	case token.LBrace:
		return p.parseCompoundStmt()
	default:
		return p.parseExpressionStmt()
	}
}

// var_decl = type IDENT [ '[' [INT] ']' ] [ '=' expression ] ';'
func (p *Parser) parseVarDeclStmt() ast.Stmt {
	pos := posOf(p.cur)
	typ, ok := p.parseType()
	if !ok {
		p.syncStatement()
		return nil
	}
	if !p.check(token.Identifier) {
		p.errorf("expected identifier, got %s", p.cur)
		p.syncStatement()
		return nil
	}
	name := p.cur.Lexeme
	p.advance()
	return p.parseVariableTail(pos, name, typ, p.syncStatement)
}

// if_stmt = 'if' '(' expression ')' statement [ 'else' statement ]
func (p *Parser) parseIfStmt() ast.Stmt {
	pos := posOf(p.cur)
	p.advance() // 'if'
	p.eat(token.LParen)
	cond := p.parseExpression()
	p.eat(token.RParen)
	then := p.parseStatement()

	stmt := &ast.IfStmt{Position: pos, Cond: cond, Then: then}
	if p.check(token.Else) {
		p.advance()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

// while_stmt = 'while' '(' expression ')' statement
func (p *Parser) parseWhileStmt() ast.Stmt {
	pos := posOf(p.cur)
	p.advance() // 'while'
	p.eat(token.LParen)
	cond := p.parseExpression()
	p.eat(token.RParen)
	body := p.parseStatement()
	return &ast.WhileStmt{Position: pos, Cond: cond, Body: body}
}

// return_stmt = 'return' [ expression ] ';'
func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := posOf(p.cur)
	p.advance() // 'return'
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.parseExpression()
	}
	if !p.eat(token.Semicolon) {
		p.syncStatement()
	}
	return &ast.ReturnStmt{Position: pos, Value: value}
}

// expression_stmt = [ expression ] ';'
func (p *Parser) parseExpressionStmt() ast.Stmt {
	pos := posOf(p.cur)
	if p.check(token.Semicolon) {
		p.advance()
		return &ast.ExprStmt{Position: pos}
	}
	if !p.startsExpression() {
		p.errorf("unexpected token %s", p.cur)
		p.syncStatement()
		return nil
	}
	expr := p.parseExpression()
	if !p.eat(token.Semicolon) {
		p.syncStatement()
	}
	return &ast.ExprStmt{Position: pos, Expr: expr}
}

// startsExpression reports whether the current token can begin a primary
// or unary-prefixed expression.
func (p *Parser) startsExpression() bool {
	switch p.cur.Kind {
	case token.Identifier, token.Integer, token.Character, token.String,
		token.LParen, token.Minus, token.Not, token.BitNot:
		return true
	default:
		return false
	}
}
