// Package lexer implements the character source and lexical analyzer for
// the minic grammar: a buffered character source feeding a one-token
// lookahead tokenizer.
package lexer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lukeod/minic/diag"
	"github.com/lukeod/minic/lexer/token"
)

// Lexer consumes characters from a Source and recognizes tokens. The
// public contract is New/Peek/Advance/Close: New pre-loads the first
// token, Peek returns it without consuming, Advance discards it and loads
// the next.
type Lexer struct {
	src      *Source
	filename string
	reporter *diag.Reporter
	closer   io.Closer

	current token.Token
}

// New constructs a Lexer over r and pre-loads the first token. filename is
// borrowed and shared across every token this lexer produces; it must
// outlive the lexer. reporter receives lexical diagnostics; pass
// diag.Default() if the caller doesn't need an isolated reporter.
func New(r io.Reader, filename string, reporter *diag.Reporter) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	l := &Lexer{
		src:      NewSource(br),
		filename: filename,
		reporter: reporter,
	}
	if c, ok := r.(io.Closer); ok {
		l.closer = c
	}
	l.current = l.scan()
	return l
}

// Peek returns the current (un-consumed) token.
func (l *Lexer) Peek() token.Token { return l.current }

// Advance discards the current token and loads the next one.
func (l *Lexer) Advance() { l.current = l.scan() }

// Close releases the underlying input resource, if any.
func (l *Lexer) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func (l *Lexer) errorf(line, column int, format string, args ...interface{}) {
	if l.reporter != nil {
		l.reporter.ReportAt(l.filename, line, column, fmt.Sprintf(format, args...))
	}
}

// scan skips whitespace/comments, then recognizes and returns exactly one
// token, trying identifiers/keywords, numbers, char/string literals, and
// operators/punctuation in that order.
func (l *Lexer) scan() token.Token {
	l.skip()

	line, column := l.src.Line(), l.src.Column()
	c := l.src.Peek()

	switch {
	case c == 0:
		return l.tok(token.EOF, "EOF", line, column)
	case isIdentStart(c):
		return l.scanIdentifier(line, column)
	case isDigit(c):
		return l.scanInteger(line, column)
	case c == '\'':
		return l.scanChar(line, column)
	case c == '"':
		return l.scanString(line, column)
	default:
		return l.scanOperator(line, column)
	}
}

func (l *Lexer) tok(kind token.Kind, lexeme string, line, column int) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column, Filename: l.filename}
}

// skip discards whitespace, line comments, and block comments in a loop
// until none applies, tracking line/column through the skipped content.
func (l *Lexer) skip() {
	for {
		switch c := l.src.Peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.src.Advance()
		case c == '/' && l.src.Peek2() == '/':
			for {
				c := l.src.Peek()
				if c == 0 || c == '\n' {
					break
				}
				l.src.Advance()
			}
		case c == '/' && l.src.Peek2() == '*':
			startLine, startColumn := l.src.Line(), l.src.Column()
			l.src.Advance() // '/'
			l.src.Advance() // '*'
			closed := false
			for {
				c := l.src.Peek()
				if c == 0 {
					break
				}
				if c == '*' && l.src.Peek2() == '/' {
					l.src.Advance()
					l.src.Advance()
					closed = true
					break
				}
				l.src.Advance()
			}
			if !closed {
				l.errorf(startLine, startColumn, "unterminated block comment")
				return
			}
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) scanIdentifier(line, column int) token.Token {
	buf := make([]byte, 0, 8)
	for isIdentChar(l.src.Peek()) {
		buf = append(buf, l.src.Peek())
		l.src.Advance()
	}
	text := string(buf)
	if kind, ok := token.IsKeyword(text); ok {
		return l.tok(kind, text, line, column)
	}
	return l.tok(token.Identifier, text, line, column)
}

func (l *Lexer) scanInteger(line, column int) token.Token {
	buf := make([]byte, 0, 8)
	for isDigit(l.src.Peek()) {
		buf = append(buf, l.src.Peek())
		l.src.Advance()
	}
	return l.tok(token.Integer, string(buf), line, column)
}

// scanChar recognizes a character literal: a single unescaped byte or one
// of the fixed escape sequences, between single quotes.
func (l *Lexer) scanChar(line, column int) token.Token {
	l.src.Advance() // opening '

	c := l.src.Peek()
	if c == 0 {
		l.errorf(line, column, "unterminated character literal")
		return l.tok(token.Error, "unterminated character literal", line, column)
	}

	var value byte
	if c == '\\' {
		l.src.Advance()
		esc := l.src.Peek()
		decoded, ok := decodeEscape(esc)
		if !ok {
			l.errorf(line, column, "invalid escape sequence '\\%c'", esc)
			return l.tok(token.Error, fmt.Sprintf("invalid escape sequence '\\%c'", esc), line, column)
		}
		value = decoded
		l.src.Advance()
	} else {
		value = c
		l.src.Advance()
	}

	if l.src.Peek() != '\'' {
		l.errorf(line, column, "unterminated character literal")
		return l.tok(token.Error, "unterminated character literal", line, column)
	}
	l.src.Advance() // closing '

	return l.tok(token.Character, string([]byte{value}), line, column)
}

func decodeEscape(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// scanString recognizes a string literal. Content is taken raw (no escape
// decoding beyond consuming the character after a backslash).
func (l *Lexer) scanString(line, column int) token.Token {
	l.src.Advance() // opening "

	buf := make([]byte, 0, 16)
	for {
		c := l.src.Peek()
		if c == 0 {
			l.errorf(line, column, "unterminated string literal")
			return l.tok(token.Error, "unterminated string literal", line, column)
		}
		if c == '"' {
			l.src.Advance()
			return l.tok(token.String, string(buf), line, column)
		}
		if c == '\\' {
			buf = append(buf, c)
			l.src.Advance()
			next := l.src.Peek()
			if next == 0 {
				l.errorf(line, column, "unterminated string literal")
				return l.tok(token.Error, "unterminated string literal", line, column)
			}
			buf = append(buf, next)
			l.src.Advance()
			continue
		}
		buf = append(buf, c)
		l.src.Advance()
	}
}

// scanOperator recognizes operators, punctuation, and '#', preferring the
// longer match per the §6.1 disambiguation table, or emits an Error token
// for any unrecognized byte.
func (l *Lexer) scanOperator(line, column int) token.Token {
	c := l.src.Peek()
	l.src.Advance()

	two := func(second byte, twoKind, oneKind token.Kind) token.Token {
		if l.src.Peek() == second {
			l.src.Advance()
			return l.tok(twoKind, string([]byte{c, second}), line, column)
		}
		return l.tok(oneKind, string([]byte{c}), line, column)
	}

	switch c {
	case '+':
		return two('+', token.Inc, token.Plus)
	case '-':
		return two('-', token.Dec, token.Minus)
	case '*':
		return l.tok(token.Star, "*", line, column)
	case '/':
		return l.tok(token.Slash, "/", line, column)
	case '%':
		return l.tok(token.Percent, "%", line, column)
	case '=':
		return two('=', token.Eq, token.Assign)
	case '!':
		return two('=', token.Neq, token.Not)
	case '<':
		if l.src.Peek() == '<' {
			l.src.Advance()
			return l.tok(token.Shl, "<<", line, column)
		}
		return two('=', token.Lte, token.Lt)
	case '>':
		if l.src.Peek() == '>' {
			l.src.Advance()
			return l.tok(token.Shr, ">>", line, column)
		}
		return two('=', token.Gte, token.Gt)
	case '&':
		return two('&', token.And, token.BitAnd)
	case '|':
		return two('|', token.Or, token.BitOr)
	case '^':
		return l.tok(token.BitXor, "^", line, column)
	case '~':
		return l.tok(token.BitNot, "~", line, column)
	case ';':
		return l.tok(token.Semicolon, ";", line, column)
	case ':':
		return l.tok(token.Colon, ":", line, column)
	case ',':
		return l.tok(token.Comma, ",", line, column)
	case '.':
		return l.tok(token.Dot, ".", line, column)
	case '(':
		return l.tok(token.LParen, "(", line, column)
	case ')':
		return l.tok(token.RParen, ")", line, column)
	case '{':
		return l.tok(token.LBrace, "{", line, column)
	case '}':
		return l.tok(token.RBrace, "}", line, column)
	case '[':
		return l.tok(token.LBracket, "[", line, column)
	case ']':
		return l.tok(token.RBracket, "]", line, column)
	case '#':
		return l.tok(token.Pound, "#", line, column)
	default:
		l.errorf(line, column, "unrecognized character %q", c)
		return l.tok(token.Error, fmt.Sprintf("unrecognized character %q", c), line, column)
	}
}
