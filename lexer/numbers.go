package lexer

import (
	"strconv"
	"unicode"

	"github.com/krotik/jsqueeze/token"
)

// scanNumber scans an integer or numeric literal, distinguishing
// integer (no fraction/exponent) from numeric, and flagging literals
// that may not round-trip exactly (spec §4.1 "Numeric literal tokens",
// §4.2 "Numeric conversion").
func (l *Lexer) scanNumber(start int) token.Token {
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		return l.scanRadixInt(start, 16, "0x", "0X", isHexDigit)
	}
	if l.ch == '0' && (l.peekChar() == 'o' || l.peekChar() == 'O') {
		return l.scanRadixInt(start, 8, "0o", "0O", isOctalDigit)
	}
	if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		return l.scanRadixInt(start, 2, "0b", "0B", isBinaryDigit)
	}

	isLegacyOctalCandidate := l.ch == '0' && isOctalDigit(l.peekChar())

	for unicode.IsDigit(l.ch) {
		l.readChar()
	}

	isNumeric := false
	if l.ch == '.' {
		isNumeric = true
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		save := l.snapshotAt(l.position)
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if unicode.IsDigit(l.ch) {
			isNumeric = true
			for unicode.IsDigit(l.ch) {
				l.readChar()
			}
		} else {
			l.restore(save)
		}
	}

	raw := l.in[start:l.position]
	ctx := l.ctx(start)

	if !isNumeric {
		// Pure integer lexeme. Try legacy octal first when it looks
		// like one (leading zero followed by octal digits).
		if isLegacyOctalCandidate && allOctalDigits(raw) {
			octVal, octErr := strconv.ParseInt(raw, 8, 64)
			decVal, decErr := strconv.ParseInt(raw, 10, 64)
			mayHaveIssue := false
			if octErr == nil && decErr == nil && octVal != decVal {
				mayHaveIssue = true
				l.addError("legacy octal literal "+raw+" differs from its decimal interpretation", ctx)
			}
			return token.Token{Kind: token.INT, Context: ctx, Raw: raw, Literal: raw, MayHaveIssue: mayHaveIssue}
		}
		f, err := strconv.ParseFloat(raw, 64)
		mayHaveIssue := err != nil || f > maxSafeInteger
		return token.Token{Kind: token.INT, Context: ctx, Raw: raw, Literal: raw, MayHaveIssue: mayHaveIssue}
	}

	f, err := strconv.ParseFloat(raw, 64)
	mayHaveIssue := err != nil || f > maxSafeInteger || f < -maxSafeInteger
	return token.Token{Kind: token.NUMERIC, Context: ctx, Raw: raw, Literal: raw, MayHaveIssue: mayHaveIssue}
}

// maxSafeInteger is the documented ±2^53 precision boundary (spec §4.1,
// §4.2) beyond which a numeric literal may not round-trip exactly
// through float64 arithmetic.
const maxSafeInteger = 1 << 53

func (l *Lexer) scanRadixInt(start, _ int, prefixLower, prefixUpper string, isDigit func(rune) bool) token.Token {
	l.readChar() // 0
	l.readChar() // x/o/b
	digitsStart := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	raw := l.in[start:l.position]
	ctx := l.ctx(start)
	if l.position == digitsStart {
		l.addError("missing digits after "+prefixLower+"/"+prefixUpper, ctx)
		return token.Token{Kind: token.INT, Context: ctx, Raw: raw, Literal: raw, MayHaveIssue: true}
	}
	return token.Token{Kind: token.INT, Context: ctx, Raw: raw, Literal: raw}
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }

func allOctalDigits(s string) bool {
	for _, r := range s {
		if !isOctalDigit(r) {
			return false
		}
	}
	return true
}
