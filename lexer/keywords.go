package lexer

import "github.com/krotik/jsqueeze/token"

// keywordBucketTable organizes reserved words into 26 per-first-letter
// buckets, each ordered by length then alphabetically, mirroring the
// teacher's keyword-lookup design: a scan that can bail out early on a
// length mismatch or first diverging character, yielding "not found"
// (an ordinary identifier) with minimal comparisons (spec §4.1
// "Keyword recognition").
type keywordBucketTable struct {
	buckets [26][]keywordEntry
}

type keywordEntry struct {
	word string
	kind token.Kind
}

var keywordBuckets = buildKeywordBuckets()

func buildKeywordBuckets() *keywordBucketTable {
	t := &keywordBucketTable{}
	words := []struct {
		word string
		kind token.Kind
	}{
		{"break", token.BREAK}, {"case", token.CASE}, {"catch", token.CATCH},
		{"continue", token.CONTINUE}, {"debugger", token.DEBUGGER},
		{"default", token.DEFAULT}, {"delete", token.DELETE}, {"do", token.DO},
		{"else", token.ELSE}, {"finally", token.FINALLY}, {"for", token.FOR},
		{"function", token.FUNCTION}, {"if", token.IF}, {"in", token.IN},
		{"instanceof", token.INSTANCEOF}, {"new", token.NEW},
		{"return", token.RETURN}, {"switch", token.SWITCH}, {"this", token.THIS},
		{"throw", token.THROW}, {"try", token.TRY}, {"typeof", token.TYPEOF},
		{"var", token.VAR}, {"void", token.VOID}, {"while", token.WHILE},
		{"with", token.WITH}, {"null", token.NULL_LIT}, {"true", token.TRUE_LIT},
		{"false", token.FALSE_LIT}, {"let", token.LET}, {"const", token.CONST},
		{"get", token.GET}, {"set", token.SET}, {"yield", token.YIELD},
		{"of", token.OF}, {"implements", token.IMPLEMENTS},
	}
	for _, w := range words {
		first := w.word[0] - 'a'
		t.buckets[first] = append(t.buckets[first], keywordEntry{w.word, w.kind})
	}
	for i := range t.buckets {
		b := t.buckets[i]
		for a := 1; a < len(b); a++ {
			for j := a; j > 0 && bucketLess(b[j], b[j-1]); j-- {
				b[j], b[j-1] = b[j-1], b[j]
			}
		}
	}
	return t
}

func bucketLess(a, b keywordEntry) bool {
	if len(a.word) != len(b.word) {
		return len(a.word) < len(b.word)
	}
	return a.word < b.word
}

// lookup finds ident's keyword Kind. It terminates early on length
// mismatch (bucket is length-sorted, so once a candidate is longer than
// ident no later entry can match) or on the first diverging byte.
func (t *keywordBucketTable) lookup(ident string) (token.Kind, bool) {
	if len(ident) == 0 {
		return token.ILLEGAL, false
	}
	c := ident[0]
	if c < 'a' || c > 'z' {
		return token.ILLEGAL, false
	}
	bucket := t.buckets[c-'a']
	for _, e := range bucket {
		if len(e.word) > len(ident) {
			break
		}
		if len(e.word) < len(ident) {
			continue
		}
		if e.word == ident {
			return e.kind, true
		}
	}
	return token.ILLEGAL, false
}

// IsReservedInStrictMode reports whether name is disallowed as a binding
// identifier in strict-mode code (e.g. "implements" and friends are
// future-reserved words only in strict mode — spec's directive-prologue
// interaction with strict_mode).
func IsReservedInStrictMode(name string) bool {
	switch name {
	case "implements", "interface", "package", "private", "protected",
		"public", "static", "yield", "let":
		return true
	}
	return false
}

// IsKeyword reports whether name is reserved independent of strict
// mode (spec §4.4's "not a reserved word" in the object-literal
// property-name unquoting rule).
func IsKeyword(name string) bool {
	_, ok := keywordBuckets.lookup(name)
	return ok
}

// IsIdentifierName reports whether name has the IdentifierStart
// IdentifierPart* shape object-literal property-name unquoting
// requires (spec §4.4), independent of whether it's also reserved.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}
