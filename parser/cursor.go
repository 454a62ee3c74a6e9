package parser

import (
	"github.com/krotik/jsqueeze/lexer"
	"github.com/krotik/jsqueeze/token"
)

// Cursor wraps a Lexer with a buffered-lookahead, mark/reset navigation
// interface, replacing ad hoc curToken/peekToken fields with explicit
// state a recursive-descent parser can save and restore freely.
//
// Grounded on the teacher's TokenCursor (internal/parser/cursor.go):
// the same buffer-and-index shape, retyped over token.Token and
// mutated in place rather than returning a fresh cursor per Advance —
// JSqueeze's parser backtracks by index (Mark/Reset) far more than it
// needs independent cursor values, so the immutable-return style was
// dropped in favor of a single growable buffer shared by the whole
// parse.
type Cursor struct {
	lex *lexer.Lexer
	buf []token.Token
	idx int
}

// NewCursor creates a Cursor positioned at the first token of lex.
func NewCursor(lex *lexer.Lexer) *Cursor {
	return &Cursor{lex: lex, buf: []token.Token{lex.NextToken()}, idx: 0}
}

// Current returns the token at the cursor's position.
func (c *Cursor) Current() token.Token { return c.buf[c.idx] }

// Peek returns the token n positions ahead of Current (Peek(0) ==
// Current()), buffering as needed.
func (c *Cursor) Peek(n int) token.Token {
	for c.idx+n >= len(c.buf) {
		c.buf = append(c.buf, c.lex.NextToken())
	}
	return c.buf[c.idx+n]
}

// Advance moves the cursor to the next token and returns it.
func (c *Cursor) Advance() token.Token {
	c.Peek(1)
	c.idx++
	return c.buf[c.idx]
}

// Is reports whether Current's kind matches any of ks.
func (c *Cursor) Is(ks ...token.Kind) bool { return c.Current().Is(ks...) }

// PeekIs reports whether the token n ahead matches any of ks.
func (c *Cursor) PeekIs(n int, ks ...token.Kind) bool { return c.Peek(n).Is(ks...) }

// IsEOF reports whether Current is the end-of-input token.
func (c *Cursor) IsEOF() bool { return c.Current().Kind == token.EOF }

// Mark captures the cursor's position for later backtracking.
type Mark struct{ idx int }

func (c *Cursor) Mark() Mark { return Mark{idx: c.idx} }

// Reset rewinds the cursor to a previously captured Mark.
func (c *Cursor) Reset(m Mark) { c.idx = m.idx }

// RescanAsRegex reinterprets Current, which must be a not-yet-consumed
// SLASH or SLASH_ASSIGN token at the frontier of the buffer (nothing
// has been peeked past it), as a regex literal. It returns ok=false,
// leaving the cursor untouched, when Current isn't eligible or the
// input doesn't form a well-formed regex (spec §4.1 "Regex vs divide":
// the parser alone decides when a `/` can start an expression).
func (c *Cursor) RescanAsRegex() (token.Token, bool) {
	if c.idx != len(c.buf)-1 {
		return token.Token{}, false
	}
	cur := c.buf[c.idx]
	if !cur.Is(token.SLASH, token.SLASH_ASSIGN) {
		return token.Token{}, false
	}
	tok, ok := c.lex.RescanSlashAsRegex(cur)
	if !ok {
		return token.Token{}, false
	}
	c.buf[c.idx] = tok
	return tok, true
}

// DrainImportantComments forwards to the underlying lexer's queue of
// pending important-comment pseudo-statements (spec §4.1, §4.2).
func (c *Cursor) DrainImportantComments() []token.Token {
	return c.lex.DrainImportantComments()
}
