package lexer

import (
	"bytes"
	"io"
	"strings"

	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/lukeod/minic/lexer/token"
)

// ParticipleDefinition adapts this package's hand-written Lexer to
// participle's lexer.Definition/lexer.Lexer interfaces. The adapter backs a
// real consumer (the CLI's -tokens dump via plex.ConsumeAll) rather than
// sitting unused beside the hand-written lexer it wraps.
type ParticipleDefinition struct{}

var _ plex.Definition = ParticipleDefinition{}

func kindToType(k token.Kind) plex.TokenType {
	return plex.TokenType(-(int(k) + 1))
}

// KindOf inverts kindToType, for callers (the CLI's -tokens dump) that only
// have a participle TokenType and want the token.Kind it stands for.
func KindOf(t plex.TokenType) token.Kind {
	return token.Kind(-int(t) - 1)
}

// Lex implements plex.Definition.
func (ParticipleDefinition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	return &participleLexer{l: New(r, filename, nil)}, nil
}

// LexString implements plex.Definition.
func (d ParticipleDefinition) LexString(filename string, input string) (plex.Lexer, error) {
	return d.Lex(filename, strings.NewReader(input))
}

// LexBytes implements plex.Definition.
func (d ParticipleDefinition) LexBytes(filename string, b []byte) (plex.Lexer, error) {
	return d.Lex(filename, bytes.NewReader(b))
}

// Symbols implements plex.Definition.
func (ParticipleDefinition) Symbols() map[string]plex.TokenType {
	out := make(map[string]plex.TokenType, len(token.Keywords)+32)
	for k := token.EOF; k <= token.Pound; k++ {
		out[k.String()] = kindToType(k)
	}
	return out
}

// participleLexer implements plex.Lexer by draining this package's Lexer.
type participleLexer struct {
	l    *Lexer
	done bool
}

func (p *participleLexer) Next() (plex.Token, error) {
	if p.done {
		return plex.Token{Type: plex.EOF}, nil
	}
	t := p.l.Peek()
	out := plex.Token{
		Type:  kindToType(t.Kind),
		Value: t.Lexeme,
		Pos: plex.Position{
			Filename: t.Filename,
			Line:     t.Line,
			Column:   t.Column,
		},
	}
	if t.Kind == token.EOF {
		p.done = true
	} else {
		p.l.Advance()
	}
	return out, nil
}

// DumpTokens drains filename's full token stream using the participle
// adapter and plex.ConsumeAll. It's the implementation behind the CLI's
// -tokens debug flag.
func DumpTokens(r io.Reader, filename string) ([]plex.Token, error) {
	lex, err := ParticipleDefinition{}.Lex(filename, r)
	if err != nil {
		return nil, err
	}
	return plex.ConsumeAll(lex)
}
