package parser

import (
	"github.com/lukeod/minic/ast"
	"github.com/lukeod/minic/lexer/token"
)

// expression = assignment
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// assignment = logical_or [ '=' assignment ]   (right-associative)
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseLogicalOr()
	if p.check(token.Assign) {
		pos := posOf(p.cur)
		p.advance()
		value := p.parseAssignment()
		return &ast.AssignExpr{Position: pos, Target: left, Value: value}
	}
	return left
}

// logical_or = logical_and { '||' logical_and }
func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.check(token.Or) {
		pos := posOf(p.cur)
		p.advance()
		right := p.parseLogicalAnd()
		left = &ast.BinaryExpr{Position: pos, Op: ast.LogOr, Left: left, Right: right}
	}
	return left
}

// logical_and = equality { '&&' equality }
func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.And) {
		pos := posOf(p.cur)
		p.advance()
		right := p.parseEquality()
		left = &ast.BinaryExpr{Position: pos, Op: ast.LogAnd, Left: left, Right: right}
	}
	return left
}

// equality = relational { ('=='|'!=') relational }
func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.check(token.Eq) || p.check(token.Neq) {
		op := ast.Eq
		if p.cur.Kind == token.Neq {
			op = ast.Neq
		}
		pos := posOf(p.cur)
		p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// relational = additive { ('<'|'>'|'<='|'>=') additive }
func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.Lt:
			op = ast.Lt
		case token.Gt:
			op = ast.Gt
		case token.Lte:
			op = ast.Lte
		case token.Gte:
			op = ast.Gte
		default:
			return left
		}
		pos := posOf(p.cur)
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
}

// additive = multiplicative { ('+'|'-') multiplicative }
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.check(token.Plus) || p.check(token.Minus) {
		op := ast.Add
		if p.cur.Kind == token.Minus {
			op = ast.Sub
		}
		pos := posOf(p.cur)
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// multiplicative = unary { ('*'|'/'|'%') unary }
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.Star:
			op = ast.Mul
		case token.Slash:
			op = ast.Div
		case token.Percent:
			op = ast.Mod
		default:
			return left
		}
		pos := posOf(p.cur)
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
}

// unary = ('-'|'!'|'~') unary | postfix
func (p *Parser) parseUnary() ast.Expr {
	pos := posOf(p.cur)
	var op ast.UnaryOp
	switch p.cur.Kind {
	case token.Minus:
		op = ast.Negate
	case token.Not:
		op = ast.LogNot
	case token.BitNot:
		op = ast.BitNot
	default:
		return p.parsePostfix()
	}
	p.advance()
	return &ast.UnaryExpr{Position: pos, Op: op, Operand: p.parseUnary()}
}

// postfix = primary { '[' expression ']' | '(' [ expression { ',' expression } ] ')' | '++' | '--' }
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		pos := posOf(p.cur)
		switch p.cur.Kind {
		case token.LBracket:
			p.advance()
			index := p.parseExpression()
			p.eat(token.RBracket)
			expr = &ast.SubscriptExpr{Position: pos, Array: expr, Index: index}
		case token.LParen:
			p.advance()
			var args *ast.ArgList
			if !p.check(token.RParen) {
				args = p.parseArgList()
			}
			p.eat(token.RParen)
			expr = &ast.CallExpr{Position: pos, Callee: expr, Args: args}
		case token.Inc:
			p.advance()
			expr = &ast.UnaryExpr{Position: pos, Op: ast.PostInc, Operand: expr}
		case token.Dec:
			p.advance()
			expr = &ast.UnaryExpr{Position: pos, Op: ast.PostDec, Operand: expr}
		default:
			return expr
		}
	}
}

// arg_list, inlined from postfix's call production.
func (p *Parser) parseArgList() *ast.ArgList {
	al := &ast.ArgList{Position: posOf(p.cur)}
	al.Args = append(al.Args, p.parseExpression())
	for p.check(token.Comma) {
		p.advance()
		al.Args = append(al.Args, p.parseExpression())
	}
	return al
}

// primary = IDENT | INT_LIT | CHAR_LIT | STR_LIT | '(' expression ')'
func (p *Parser) parsePrimary() ast.Expr {
	pos := posOf(p.cur)
	switch p.cur.Kind {
	case token.Identifier:
		name := p.cur.Lexeme
		p.advance()
		return &ast.Identifier{Position: pos, Name: name}
	case token.Integer:
		v := atoi(p.cur.Lexeme)
		p.advance()
		return &ast.Integer{Position: pos, Value: v}
	case token.Character:
		var v byte
		if len(p.cur.Lexeme) > 0 {
			v = p.cur.Lexeme[0]
		}
		p.advance()
		return &ast.Character{Position: pos, Value: v}
	case token.String:
		v := p.cur.Lexeme
		p.advance()
		return &ast.String{Position: pos, Value: v}
	case token.LParen:
		p.advance()
		expr := p.parseExpression()
		p.eat(token.RParen)
		return expr
	default:
		p.errorf("expected expression, got %s", p.cur)
		return nil
	}
}
