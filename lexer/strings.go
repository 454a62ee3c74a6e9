package lexer

import (
	"strconv"
	"strings"

	"github.com/krotik/jsqueeze/token"
)

// scanString scans a single- or double-quoted string literal, decoding
// escapes into Literal while preserving Raw verbatim, and setting
// MayHaveIssue when an escape or character would lose information on
// an exact round trip (spec §4.1 "String literals").
func (l *Lexer) scanString(start int, quote rune) token.Token {
	l.readChar() // opening quote
	var decoded strings.Builder
	mayHaveIssue := false
	terminated := false

	for l.ch != 0 {
		if l.ch == quote {
			l.readChar()
			terminated = true
			break
		}
		if isLineTerminator(l.ch) {
			break // unterminated: line terminators end a single/double-quoted string
		}
		if l.ch == '\\' {
			l.readChar()
			r, issue := l.decodeEscape()
			if r >= 0 {
				decoded.WriteRune(r)
			}
			if issue {
				mayHaveIssue = true
			}
			continue
		}
		decoded.WriteRune(l.ch)
		l.readChar()
	}

	raw := l.in[start:l.position]
	ctx := l.ctx(start)
	if !terminated {
		l.addError("unterminated string literal", ctx)
		mayHaveIssue = true
	}
	return token.Token{Kind: token.STRING, Context: ctx, Raw: raw, Literal: decoded.String(), MayHaveIssue: mayHaveIssue}
}

// decodeEscape decodes one escape sequence after the leading backslash
// has already been consumed. Returns the decoded rune (or -1 for a
// line-continuation escape that contributes nothing) and whether the
// escape is one the printer cannot regenerate byte-for-byte.
func (l *Lexer) decodeEscape() (rune, bool) {
	switch l.ch {
	case 'n':
		l.readChar()
		return '\n', false
	case 't':
		l.readChar()
		return '\t', false
	case 'r':
		l.readChar()
		return '\r', false
	case 'b':
		l.readChar()
		return '\b', false
	case 'f':
		l.readChar()
		return '\f', false
	case 'v':
		l.readChar()
		return '\v', false
	case '0':
		l.readChar()
		return 0, false
	case '\n', '\r', ' ', ' ':
		l.readChar()
		return -1, false // line continuation
	case 'x':
		l.readChar()
		return l.decodeHexEscape(2)
	case 'u':
		l.readChar()
		if l.ch == '{' {
			l.readChar()
			start := l.position
			for l.ch != '}' && l.ch != 0 {
				l.readChar()
			}
			digits := l.in[start:l.position]
			if l.ch == '}' {
				l.readChar()
			}
			v, err := strconv.ParseInt(digits, 16, 32)
			if err != nil {
				return 0xFFFD, true
			}
			return rune(v), false
		}
		return l.decodeHexEscape(4)
	default:
		r := l.ch
		l.readChar()
		return r, false
	}
}

func (l *Lexer) decodeHexEscape(n int) (rune, bool) {
	start := l.position
	for i := 0; i < n && isHexDigit(l.ch); i++ {
		l.readChar()
	}
	digits := l.in[start:l.position]
	if len(digits) != n {
		return 0xFFFD, true
	}
	v, err := strconv.ParseInt(digits, 16, 32)
	if err != nil {
		return 0xFFFD, true
	}
	return rune(v), false
}

// scanTemplate scans a template literal `...` as an opaque string-like
// token. Template substitution expressions are not decomposed further;
// the spec's grammar additions do not require it and treating the whole
// literal as an atomic lexeme keeps the lowering contract (spec §4.3)
// intact: no AST rewriting beyond what's documented.
func (l *Lexer) scanTemplate(start int) token.Token {
	l.readChar() // opening `
	depth := 0
	for l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '$' && l.peekChar() == '{' {
			depth++
			l.readChar()
			l.readChar()
			continue
		}
		if depth > 0 && l.ch == '}' {
			depth--
			l.readChar()
			continue
		}
		if l.ch == '`' && depth == 0 {
			l.readChar()
			raw := l.in[start:l.position]
			return token.Token{Kind: token.TEMPLATE, Context: l.ctx(start), Raw: raw, Literal: raw}
		}
		l.readChar()
	}
	raw := l.in[start:l.position]
	ctx := l.ctx(start)
	l.addError("unterminated template literal", ctx)
	return token.Token{Kind: token.TEMPLATE, Context: ctx, Raw: raw, Literal: raw, MayHaveIssue: true}
}
