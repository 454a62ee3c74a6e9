package token

import "github.com/krotik/jsqueeze/source"

// Token is the pair of (kind, context) the scanner hands to the parser,
// plus the decoded literal value for literal-kind tokens and the two
// side-channel bits the scanner surfaces per spec §3: whether a
// line terminator was crossed before this token, and whether the
// lexeme may not round-trip exactly (legacy octal, lossy escape,
// out-of-range magnitude).
type Token struct {
	Kind    Kind
	Context source.Context
	Literal string // decoded value (identifier name, unescaped string, ...)
	Raw     string // original source lexeme, verbatim

	FoundEOL     bool // a line terminator was crossed since the previous token
	MayHaveIssue bool // literal may not survive an exact round trip
}

// Lexeme returns the raw source text of the token.
func (t Token) Lexeme() string { return t.Raw }

// Is reports whether the token's kind matches any of ks.
func (t Token) Is(ks ...Kind) bool {
	for _, k := range ks {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// String renders the token for diagnostics and debugging.
func (t Token) String() string {
	if t.Raw != "" {
		return t.Raw
	}
	return t.Kind.String()
}
