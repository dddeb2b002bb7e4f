package parser

import "github.com/lukeod/minic/lexer/token"

// syncTopLevel performs top-level panic-mode recovery: after an error while
// expecting a type specifier or identifier, discard tokens up to and
// including the next ';' or EOF, then resume.
func (p *Parser) syncTopLevel() {
	for !p.check(token.Semicolon) && !p.check(token.EOF) {
		p.advance()
	}
	if p.check(token.Semicolon) {
		p.advance()
	}
}

// syncStatement performs compound-statement panic-mode recovery: after a
// failed statement, discard tokens up to the next ';', '}', or
// EOF; if ';', consume it and continue the block. Stopping at '}' without
// consuming it lets the enclosing compound_stmt loop see the closing brace
// and terminate normally.
func (p *Parser) syncStatement() {
	for !p.check(token.Semicolon) && !p.check(token.RBrace) && !p.check(token.EOF) {
		p.advance()
	}
	if p.check(token.Semicolon) {
		p.advance()
	}
}
