package lexer

import "bufio"

// Source is a buffered character source: a reader with one character of
// lookahead beyond the cursor, tracking line/column as it advances.
//
// Source exposes no "at EOF" predicate; \0 from Peek is the canonical
// end-of-file signal, matching the contract downstream callers rely on.
type Source struct {
	r      *bufio.Reader
	line   int
	column int
	offset int
}

// NewSource wraps r in a buffered reader ready to serve Peek/Peek2/Advance.
func NewSource(r *bufio.Reader) *Source {
	return &Source{r: r, line: 1, column: 1}
}

// Offset returns the number of bytes consumed so far.
func (s *Source) Offset() int { return s.offset }

// Peek returns the character at the cursor, or '\x00' at end of file.
func (s *Source) Peek() byte {
	b, err := s.r.Peek(1)
	if err != nil {
		return 0
	}
	return b[0]
}

// Peek2 returns the character one past the cursor, or '\x00' if unavailable.
func (s *Source) Peek2() byte {
	b, err := s.r.Peek(2)
	if err != nil || len(b) < 2 {
		return 0
	}
	return b[1]
}

// Line returns the 1-based line of the character at the cursor.
func (s *Source) Line() int { return s.line }

// Column returns the 1-based column of the character at the cursor.
func (s *Source) Column() int { return s.column }

// Advance moves the cursor one character forward, updating line/column.
// Advancing past end of file is a no-op.
func (s *Source) Advance() {
	b, err := s.r.ReadByte()
	if err != nil {
		return
	}
	s.offset++
	if b == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
}
