// Package lexer implements the hand-written JavaScript scanner: the
// only component that reads raw source bytes (spec §4.1).
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/krotik/common/logutil"

	"github.com/krotik/jsqueeze/source"
	"github.com/krotik/jsqueeze/token"
)

// Lexer scans a Document into a sequence of Tokens. It buffers
// lazily-produced tokens to support N-token lookahead (Peek) and
// independent snapshots (Clone) for parser backtracking, the way the
// teacher's Lexer.Peek/SaveState/RestoreState pair works.
type Lexer struct {
	doc *source.Document
	in  string

	position     int // offset of ch
	readPosition int // offset of next rune
	line         int
	column       int
	ch           rune

	tokenBuffer []token.Token

	foundEOL           bool
	importantComments  []token.Token
	newModule          bool
	preprocessorValues map[string]string

	ignoreConditionalCompilation bool
	allowASPNetBlocks            bool

	errors []Error
	log    logutil.Logger
}

// Error is a lexical-level problem the scanner recovered from by
// synthesizing a best-effort token and continuing (spec §4.1, §7).
type Error struct {
	Context source.Context
	Message string
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithPreprocessorValues seeds the preprocessor name→value map consulted
// by conditional-compilation directives.
func WithPreprocessorValues(values map[string]string) Option {
	return func(l *Lexer) { l.preprocessorValues = values }
}

// WithIgnoreConditionalCompilation disables `/*@cc_on*/` family
// recognition; such tokens are rejected with a diagnostic instead.
func WithIgnoreConditionalCompilation(ignore bool) Option {
	return func(l *Lexer) { l.ignoreConditionalCompilation = ignore }
}

// WithAllowASPNetBlocks enables recognition of `<% ... %>` as an opaque
// expression token.
func WithAllowASPNetBlocks(allow bool) Option {
	return func(l *Lexer) { l.allowASPNetBlocks = allow }
}

// WithLogger attaches a krotik/common logutil.Logger for Debug-level
// scan tracing. Nil (the default) disables tracing entirely.
func WithLogger(log logutil.Logger) Option {
	return func(l *Lexer) { l.log = log }
}

// New creates a Lexer over doc.
func New(doc *source.Document, opts ...Option) *Lexer {
	l := &Lexer{
		doc:                doc,
		in:                 doc.Text(),
		line:               1,
		preprocessorValues: map[string]string{},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// Errors returns the accumulated lexical errors.
func (l *Lexer) Errors() []Error { return l.errors }

// NewModule reports whether a `///#SOURCE` directive has been crossed.
func (l *Lexer) NewModule() bool { return l.newModule }

func (l *Lexer) addError(msg string, ctx source.Context) {
	l.errors = append(l.errors, Error{Context: ctx, Message: msg})
	if l.log != nil {
		l.log.Debug("lexer: ", msg)
	}
}

// readChar advances to the next rune, tracking line/column. Column is a
// rune count, matching the teacher's documented Unicode convention.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.in) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.in[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
	if r == utf8.RuneError && size == 1 {
		l.addError("invalid UTF-8 encoding", l.spanHere())
	}
	if r == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.in) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.in[l.readPosition:])
	return r
}

func (l *Lexer) peekCharN(n int) rune {
	pos := l.readPosition
	for i := 0; i < n-1 && pos < len(l.in); i++ {
		_, size := utf8.DecodeRuneInString(l.in[pos:])
		pos += size
	}
	if pos >= len(l.in) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.in[pos:])
	return r
}

// matchAndConsume reports whether the current rune is expected. It does
// not advance: on a match the caller consumes the rune with readChar.
func (l *Lexer) matchAndConsume(expected rune) bool {
	return l.ch == expected
}

func (l *Lexer) spanHere() source.Context {
	return source.NewContext(l.doc, l.position, l.position+1)
}

func (l *Lexer) ctx(start int) source.Context {
	return source.NewContext(l.doc, start, l.position)
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == ' ' || r == ' '
}

// skipWhitespaceAndComments advances past insignificant input, setting
// foundEOL and collecting important comments along the way (spec §4.1).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == 0:
			return
		case isLineTerminator(l.ch):
			l.foundEOL = true
			l.readChar()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\v' || l.ch == '\f':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			l.readLineComment()
		case l.ch == '/' && l.peekChar() == '*':
			if !l.readBlockComment() {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) readLineComment() {
	start := l.position
	if strings.HasPrefix(l.in[l.position:], "///#SOURCE") {
		for l.ch != 0 && !isLineTerminator(l.ch) {
			l.readChar()
		}
		l.newModule = true
		l.foundEOL = true
		l.handleImportantText(l.in[start:l.position])
		return
	}
	for l.ch != 0 && !isLineTerminator(l.ch) {
		l.readChar()
	}
	l.handleImportantText(l.in[start:l.position])
}

// readBlockComment reads a /* ... */ comment. A `/*@cc_on ... @*/`
// comment is skipped like any other; only bare `@name` tokens outside
// comments are scanned as conditional-compilation tokens. Returns false
// if EOF was reached before the closing */.
func (l *Lexer) readBlockComment() bool {
	start := l.position
	l.readChar() // skip /
	l.readChar() // skip *
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			l.handleImportantText(l.in[start:l.position])
			return true
		}
		l.readChar()
	}
	l.addError("unterminated comment", l.ctx(start))
	return false
}

// handleImportantText inspects a just-scanned comment's text and, if it
// qualifies as "important" (spec §4.1: begins with `!` or contains
// `@preserve`/`@license`, case-insensitive), appends it to the queue the
// parser drains as pseudo-statements.
func (l *Lexer) handleImportantText(raw string) {
	inner := strings.TrimPrefix(raw, "//")
	inner = strings.TrimPrefix(inner, "/*")
	inner = strings.TrimSuffix(inner, "*/")
	lower := strings.ToLower(inner)
	important := strings.HasPrefix(strings.TrimSpace(inner), "!") ||
		strings.Contains(lower, "@preserve") || strings.Contains(lower, "@license")
	if !important {
		return
	}
	l.importantComments = append(l.importantComments, token.Token{
		Kind: token.IMPORTANT_COMMENT,
		Raw:  raw,
	})
}

// DrainImportantComments returns and clears the important-comment queue
// accumulated since the previous call.
func (l *Lexer) DrainImportantComments() []token.Token {
	if len(l.importantComments) == 0 {
		return nil
	}
	out := l.importantComments
	l.importantComments = nil
	return out
}

// tokenHandlers dispatches on the leading character of an operator or
// punctuator, the way the teacher's lexer.go replaces a giant switch
// with a map of (*Lexer) Token methods.
var tokenHandlers map[rune]func(*Lexer, int) token.Token

func init() {
	tokenHandlers = map[rune]func(*Lexer, int) token.Token{
		'+': (*Lexer).handlePlus,
		'-': (*Lexer).handleMinus,
		'*': (*Lexer).handleStar,
		'%': (*Lexer).handlePercent,
		'=': (*Lexer).handleEquals,
		'<': (*Lexer).handleLess,
		'>': (*Lexer).handleGreater,
		'!': (*Lexer).handleBang,
		'&': (*Lexer).handleAmp,
		'|': (*Lexer).handlePipe,
		'^': (*Lexer).handleCaret,
		'~': (*Lexer).handleTilde,
		'?': (*Lexer).handleQuestion,
	}
}

// NextToken returns the oldest token buffered by Peek, or scans a new
// one when the buffer is empty.
func (l *Lexer) NextToken() token.Token {
	if len(l.tokenBuffer) > 0 {
		t := l.tokenBuffer[0]
		l.tokenBuffer = l.tokenBuffer[1:]
		return t
	}
	return l.scan()
}

// Peek returns the token n positions ahead (0 = next token) without
// consuming it, buffering as needed (spec §4.1 `clone()`/lookahead).
func (l *Lexer) Peek(n int) token.Token {
	for len(l.tokenBuffer) <= n {
		l.tokenBuffer = append(l.tokenBuffer, l.scan())
	}
	return l.tokenBuffer[n]
}

// Clone returns an independent snapshot of the lexer's state. Mutating
// the clone never affects the receiver. This is the teacher's
// SaveState/RestoreState pair collapsed into a value-returning method
// since JSqueeze's Lexer is small enough to copy wholesale.
func (l *Lexer) Clone() *Lexer {
	c := *l
	c.tokenBuffer = append([]token.Token(nil), l.tokenBuffer...)
	c.importantComments = append([]token.Token(nil), l.importantComments...)
	c.errors = nil // a speculative clone must not record permanent errors
	return &c
}

// RescanSlashAsRegex re-interprets a previously produced `/` token (at
// the front of the internal buffer, or the next token about to be
// scanned) as the start of a regular-expression literal. The parser
// calls this only when syntactic context says a `/` begins an
// expression, never after seeing one in an operator position (spec
// §4.1 "Regex vs divide"). It returns ok=false, leaving the lexer
// state untouched, if the input at that position is not a well-formed
// regex literal.
func (l *Lexer) RescanSlashAsRegex(slash token.Token) (token.Token, bool) {
	start := slash.Context.StartByte
	save := l.snapshotAt(start)
	tok, ok := l.scanRegexAt(start)
	if !ok {
		l.restore(save)
		return token.Token{}, false
	}
	// Drop any buffered tokens scanned past the slash; they must be
	// rescanned from the regex's new end position.
	l.tokenBuffer = nil
	return tok, true
}

type lexSnapshot struct {
	position, readPosition, line, column int
	ch                                    rune
}

func (l *Lexer) snapshotAt(byteOffset int) lexSnapshot {
	save := lexSnapshot{position: l.position, readPosition: l.readPosition, line: l.line, column: l.column, ch: l.ch}
	return save
}

func (l *Lexer) restore(s lexSnapshot) {
	l.position, l.readPosition, l.line, l.column, l.ch = s.position, s.readPosition, s.line, s.column, s.ch
}

// scanRegexAt scans a regex literal assuming in[byteOffset] == '/',
// independent of the lexer's running cursor, then repositions the
// lexer to continue immediately after the flags on success.
func (l *Lexer) scanRegexAt(byteOffset int) (token.Token, bool) {
	i := byteOffset + 1 // skip leading /
	inClass := false
	closed := false
	for i < len(l.in) {
		r, size := utf8.DecodeRuneInString(l.in[i:])
		if isLineTerminator(r) || r == 0 {
			return token.Token{}, false
		}
		if r == '\\' {
			i += size
			if i >= len(l.in) {
				return token.Token{}, false
			}
			_, size2 := utf8.DecodeRuneInString(l.in[i:])
			i += size2
			continue
		}
		if r == '[' {
			inClass = true
		} else if r == ']' {
			inClass = false
		} else if r == '/' && !inClass {
			i += size
			closed = true
			break
		}
		i += size
		if i > byteOffset+1 && l.in[i-size:i] == "/" && !inClass {
			break
		}
	}
	if !closed {
		return token.Token{}, false
	}
	patternEnd := i
	// flags: identifier-continuation characters
	for patternEnd < len(l.in) {
		r, size := utf8.DecodeRuneInString(l.in[patternEnd:])
		if !isIdentPart(r) {
			break
		}
		patternEnd += size
	}
	raw := l.in[byteOffset:patternEnd]
	ctx := source.NewContext(l.doc, byteOffset, patternEnd)
	// reposition the lexer to patternEnd
	l.position = patternEnd
	l.readPosition = patternEnd
	if patternEnd < len(l.in) {
		r, size := utf8.DecodeRuneInString(l.in[patternEnd:])
		l.ch = r
		l.readPosition = patternEnd + size
	} else {
		l.ch = 0
	}
	ln, col := l.doc.LineCol(patternEnd)
	l.line, l.column = ln, col
	return token.Token{Kind: token.REGEX, Context: ctx, Raw: raw, Literal: raw}, true
}

// scan performs one full token scan: skip trivia, then dispatch on the
// current character.
func (l *Lexer) scan() token.Token {
	l.foundEOL = false
	l.skipWhitespaceAndComments()
	foundEOL := l.foundEOL
	start := l.position

	if l.ch == 0 {
		t := token.Token{Kind: token.EOF, Context: l.ctx(start), FoundEOL: foundEOL}
		return t
	}

	var tok token.Token
	switch {
	case isIdentStart(l.ch):
		tok = l.scanIdentOrKeyword(start)
	case unicode.IsDigit(l.ch) || (l.ch == '.' && unicode.IsDigit(l.peekChar())):
		tok = l.scanNumber(start)
	case l.ch == '"' || l.ch == '\'':
		tok = l.scanString(start, l.ch)
	case l.ch == '`':
		tok = l.scanTemplate(start)
	case l.ch == '@' && l.allowConditionalCompilation():
		tok = l.scanConditionalCompilation(start)
	default:
		if h, ok := tokenHandlers[l.ch]; ok {
			tok = h(l, start)
		} else {
			tok = l.scanPunctuation(start)
		}
	}
	tok.FoundEOL = foundEOL
	return tok
}

func (l *Lexer) allowConditionalCompilation() bool {
	return !l.ignoreConditionalCompilation
}

func (l *Lexer) scanPunctuation(start int) token.Token {
	ch := l.ch
	var kind token.Kind
	switch ch {
	case '{':
		kind = token.LBRACE
	case '}':
		kind = token.RBRACE
	case '(':
		kind = token.LPAREN
	case ')':
		kind = token.RPAREN
	case '[':
		kind = token.LBRACK
	case ']':
		kind = token.RBRACK
	case ';':
		kind = token.SEMICOLON
	case ',':
		kind = token.COMMA
	case ':':
		kind = token.COLON
	case '.':
		kind = token.DOT
	case '/':
		return l.handleSlash(start)
	default:
		l.addError("illegal character "+string(ch), l.ctx(start))
		l.readChar()
		return token.Token{Kind: token.ILLEGAL, Context: l.ctx(start), Raw: string(ch)}
	}
	l.readChar()
	return token.Token{Kind: kind, Context: l.ctx(start), Raw: string(ch)}
}

// handleSlash always produces a SLASH/compound-assign token; regex
// reinterpretation happens only via RescanSlashAsRegex at the parser's
// request (spec §4.1 "Regex vs divide").
func (l *Lexer) handleSlash(start int) token.Token {
	l.readChar() // consume /
	if l.matchAndConsume('=') {
		l.readChar()
		return token.Token{Kind: token.SLASH_ASSIGN, Context: l.ctx(start), Raw: "/="}
	}
	return token.Token{Kind: token.SLASH, Context: l.ctx(start), Raw: "/"}
}

func (l *Lexer) handlePlus(start int) token.Token {
	l.readChar()
	switch {
	case l.matchAndConsume('+'):
		l.readChar()
		return token.Token{Kind: token.INC, Context: l.ctx(start), Raw: "++"}
	case l.matchAndConsume('='):
		l.readChar()
		return token.Token{Kind: token.PLUS_ASSIGN, Context: l.ctx(start), Raw: "+="}
	}
	return token.Token{Kind: token.PLUS, Context: l.ctx(start), Raw: "+"}
}

func (l *Lexer) handleMinus(start int) token.Token {
	l.readChar()
	switch {
	case l.matchAndConsume('-'):
		l.readChar()
		return token.Token{Kind: token.DEC, Context: l.ctx(start), Raw: "--"}
	case l.matchAndConsume('='):
		l.readChar()
		return token.Token{Kind: token.MINUS_ASSIGN, Context: l.ctx(start), Raw: "-="}
	}
	return token.Token{Kind: token.MINUS, Context: l.ctx(start), Raw: "-"}
}

func (l *Lexer) handleStar(start int) token.Token {
	l.readChar()
	if l.matchAndConsume('=') {
		l.readChar()
		return token.Token{Kind: token.STAR_ASSIGN, Context: l.ctx(start), Raw: "*="}
	}
	return token.Token{Kind: token.STAR, Context: l.ctx(start), Raw: "*"}
}

func (l *Lexer) handlePercent(start int) token.Token {
	l.readChar()
	if l.matchAndConsume('=') {
		l.readChar()
		return token.Token{Kind: token.PERCENT_ASSIGN, Context: l.ctx(start), Raw: "%="}
	}
	return token.Token{Kind: token.PERCENT, Context: l.ctx(start), Raw: "%"}
}

func (l *Lexer) handleEquals(start int) token.Token {
	l.readChar()
	if l.matchAndConsume('=') {
		l.readChar()
		if l.matchAndConsume('=') {
			l.readChar()
			return token.Token{Kind: token.SEQ, Context: l.ctx(start), Raw: "==="}
		}
		return token.Token{Kind: token.EQ, Context: l.ctx(start), Raw: "=="}
	}
	return token.Token{Kind: token.ASSIGN, Context: l.ctx(start), Raw: "="}
}

func (l *Lexer) handleBang(start int) token.Token {
	l.readChar()
	if l.matchAndConsume('=') {
		l.readChar()
		if l.matchAndConsume('=') {
			l.readChar()
			return token.Token{Kind: token.SNEQ, Context: l.ctx(start), Raw: "!=="}
		}
		return token.Token{Kind: token.NEQ, Context: l.ctx(start), Raw: "!="}
	}
	return token.Token{Kind: token.NOT, Context: l.ctx(start), Raw: "!"}
}

func (l *Lexer) handleLess(start int) token.Token {
	l.readChar()
	switch {
	case l.matchAndConsume('='):
		l.readChar()
		return token.Token{Kind: token.LE, Context: l.ctx(start), Raw: "<="}
	case l.matchAndConsume('<'):
		l.readChar()
		if l.matchAndConsume('=') {
			l.readChar()
			return token.Token{Kind: token.SHL_ASSIGN, Context: l.ctx(start), Raw: "<<="}
		}
		return token.Token{Kind: token.SHL, Context: l.ctx(start), Raw: "<<"}
	case l.ch == '%':
		return l.scanASPNetBlock(start)
	}
	return token.Token{Kind: token.LT, Context: l.ctx(start), Raw: "<"}
}

func (l *Lexer) handleGreater(start int) token.Token {
	l.readChar()
	switch {
	case l.matchAndConsume('='):
		l.readChar()
		return token.Token{Kind: token.GE, Context: l.ctx(start), Raw: ">="}
	case l.matchAndConsume('>'):
		l.readChar()
		if l.matchAndConsume('>') {
			l.readChar()
			if l.matchAndConsume('=') {
				l.readChar()
				return token.Token{Kind: token.USHR_ASSIGN, Context: l.ctx(start), Raw: ">>>="}
			}
			return token.Token{Kind: token.USHR, Context: l.ctx(start), Raw: ">>>"}
		}
		if l.matchAndConsume('=') {
			l.readChar()
			return token.Token{Kind: token.SHR_ASSIGN, Context: l.ctx(start), Raw: ">>="}
		}
		return token.Token{Kind: token.SHR, Context: l.ctx(start), Raw: ">>"}
	}
	return token.Token{Kind: token.GT, Context: l.ctx(start), Raw: ">"}
}

func (l *Lexer) handleAmp(start int) token.Token {
	l.readChar()
	switch {
	case l.matchAndConsume('&'):
		l.readChar()
		return token.Token{Kind: token.LOGAND, Context: l.ctx(start), Raw: "&&"}
	case l.matchAndConsume('='):
		l.readChar()
		return token.Token{Kind: token.AND_ASSIGN, Context: l.ctx(start), Raw: "&="}
	}
	return token.Token{Kind: token.BITAND, Context: l.ctx(start), Raw: "&"}
}

func (l *Lexer) handlePipe(start int) token.Token {
	l.readChar()
	switch {
	case l.matchAndConsume('|'):
		l.readChar()
		return token.Token{Kind: token.LOGOR, Context: l.ctx(start), Raw: "||"}
	case l.matchAndConsume('='):
		l.readChar()
		return token.Token{Kind: token.OR_ASSIGN, Context: l.ctx(start), Raw: "|="}
	}
	return token.Token{Kind: token.BITOR, Context: l.ctx(start), Raw: "|"}
}

func (l *Lexer) handleCaret(start int) token.Token {
	l.readChar()
	if l.matchAndConsume('=') {
		l.readChar()
		return token.Token{Kind: token.XOR_ASSIGN, Context: l.ctx(start), Raw: "^="}
	}
	return token.Token{Kind: token.BITXOR, Context: l.ctx(start), Raw: "^"}
}

func (l *Lexer) handleTilde(start int) token.Token {
	l.readChar()
	return token.Token{Kind: token.BITNOT, Context: l.ctx(start), Raw: "~"}
}

func (l *Lexer) handleQuestion(start int) token.Token {
	l.readChar()
	return token.Token{Kind: token.QUESTION, Context: l.ctx(start), Raw: "?"}
}

func (l *Lexer) scanIdentOrKeyword(start int) token.Token {
	for isIdentPart(l.ch) {
		l.readChar()
	}
	name := l.in[start:l.position]
	ctx := l.ctx(start)
	if kw, ok := keywordBuckets.lookup(name); ok {
		return token.Token{Kind: kw, Context: ctx, Raw: name, Literal: name}
	}
	return token.Token{Kind: token.IDENT, Context: ctx, Raw: name, Literal: name}
}

func (l *Lexer) scanASPNetBlock(start int) token.Token {
	if !l.allowASPNetBlocks {
		l.addError("embedded ASP.NET block not allowed", l.ctx(start))
	}
	l.readChar() // skip %
	for l.ch != 0 {
		if l.ch == '%' && l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	raw := l.in[start:l.position]
	return token.Token{Kind: token.ASPNET_BLOCK, Context: l.ctx(start), Raw: raw, Literal: raw}
}

func (l *Lexer) scanConditionalCompilation(start int) token.Token {
	l.readChar() // skip @
	nameStart := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	name := l.in[nameStart:l.position]
	raw := l.in[start:l.position]
	ctx := l.ctx(start)
	switch name {
	case "set":
		return token.Token{Kind: token.CONDCOMP_SET, Context: ctx, Raw: raw}
	case "if":
		return token.Token{Kind: token.CONDCOMP_IF, Context: ctx, Raw: raw}
	case "elif":
		return token.Token{Kind: token.CONDCOMP_ELIF, Context: ctx, Raw: raw}
	case "else":
		return token.Token{Kind: token.CONDCOMP_ELSE, Context: ctx, Raw: raw}
	case "end":
		return token.Token{Kind: token.CONDCOMP_END, Context: ctx, Raw: raw}
	case "cc_on":
		return token.Token{Kind: token.CONDCOMP_ON, Context: ctx, Raw: raw}
	default:
		l.addError("unknown conditional-compilation directive @"+name, ctx)
		return token.Token{Kind: token.ILLEGAL, Context: ctx, Raw: raw}
	}
}
