package parser

import (
	"github.com/krotik/common/errorutil"
	"github.com/krotik/jsqueeze/diag"
	"github.com/krotik/jsqueeze/token"
)

// statementStarters are tokens that legally begin a new statement; the
// panic-mode recovery below treats reaching one as a synchronization
// point even if it wasn't explicitly requested (spec §4.2, §7).
var statementStarters = []token.Kind{
	token.LBRACE, token.VAR, token.LET, token.CONST, token.FUNCTION,
	token.IF, token.FOR, token.WHILE, token.DO, token.SWITCH, token.TRY,
	token.THROW, token.RETURN, token.BREAK, token.CONTINUE, token.WITH,
	token.DEBUGGER, token.SEMICOLON, token.IDENT,
}

var blockClosers = []token.Kind{token.RBRACE, token.EOF}

// maxConsecutiveSkippedTokens bounds panic-mode recovery (spec §4.2,
// §5, §7): a pathological input that never reaches a synchronization
// point aborts the whole parse rather than skipping tokens forever.
const maxConsecutiveSkippedTokens = 50

// recovery centralizes panic-mode synchronization, grounded on the
// teacher's ErrorRecovery wrapper: skip tokens until one of an explicit
// set, a statement starter, or a block closer is reached, then let the
// caller resume from there (spec §4.2's no-skip-set philosophy: a
// single bad token never aborts the whole parse).
type recovery struct {
	p *Parser
}

func newRecovery(p *Parser) *recovery { return &recovery{p: p} }

// synchronizeOn advances the cursor until Current is one of tokens, a
// statement starter, a block closer, or EOF.
func (r *recovery) synchronizeOn(tokens ...token.Kind) bool {
	if r.p.aborted {
		return false
	}
	want := make(map[token.Kind]bool, len(tokens)+len(statementStarters)+len(blockClosers))
	for _, t := range tokens {
		want[t] = true
	}
	for _, t := range statementStarters {
		want[t] = true
	}
	for _, t := range blockClosers {
		want[t] = true
	}
	for !r.p.cur.IsEOF() {
		if want[r.p.cur.Current().Kind] {
			return true
		}
		before := r.p.cur.Mark()
		r.p.cur.Advance()
		errorutil.AssertTrue(r.p.cur.Mark() != before, "synchronizeOn must make forward progress")
		if r.bumpSkipBudget() {
			return false
		}
	}
	return false
}

// skipUntil advances until Current matches one of tokens or EOF,
// without the implicit statement-starter/block-closer sync points —
// for narrowly-scoped recovery (e.g. inside a parameter list).
func (r *recovery) skipUntil(tokens ...token.Kind) bool {
	if r.p.aborted {
		return false
	}
	for !r.p.cur.IsEOF() {
		if r.p.cur.Is(tokens...) {
			return true
		}
		r.p.cur.Advance()
		if r.bumpSkipBudget() {
			return false
		}
	}
	return false
}

// bumpSkipBudget counts one more recovery-skipped token and, once the
// consecutive-skip budget is spent, reports CodeTooManySkippedTokens
// and aborts the whole parse (spec §4.2 "A counter aborts parsing
// entirely after 50 consecutive skipped tokens").
func (r *recovery) bumpSkipBudget() (aborted bool) {
	r.p.skipBudget++
	if r.p.skipBudget <= maxConsecutiveSkippedTokens {
		return false
	}
	ctx := r.p.cur.Current().Context
	msg := "aborting parse: more than 50 consecutive tokens skipped during error recovery"
	r.p.diags.Add(diag.New(diag.CodeTooManySkippedTokens, diag.SeverityFatal, ctx, msg))
	if r.p.log != nil {
		r.p.log.Warning("parser: ", msg)
	}
	r.p.aborted = true
	return true
}

// expect reports a diagnostic and synchronizes when Current doesn't
// match k; otherwise it consumes k and returns true.
func (r *recovery) expect(k token.Kind, context string, syncOn ...token.Kind) bool {
	if r.p.cur.Is(k) {
		r.p.cur.Advance()
		return true
	}
	r.errExpected(k, context)
	r.synchronizeOn(syncOn...)
	return false
}

func (r *recovery) errExpected(expected token.Kind, context string) {
	got := r.p.cur.Current()
	msg := "expected " + expected.String()
	if context != "" {
		msg += " " + context
	}
	msg += ", got " + got.Kind.String() + " instead"
	r.p.diags.Add(diag.New(codeForMissing(expected), diag.SeverityError, got.Context, msg))
}

func codeForMissing(k token.Kind) diag.Code {
	switch k {
	case token.SEMICOLON:
		return diag.CodeMissingSemicolon
	case token.LPAREN:
		return diag.CodeMissingLParen
	case token.RPAREN:
		return diag.CodeMissingRParen
	case token.LBRACE:
		return diag.CodeMissingLBrace
	case token.RBRACE:
		return diag.CodeMissingRBrace
	case token.RBRACK:
		return diag.CodeMissingRBracket
	case token.COLON:
		return diag.CodeMissingColon
	case token.IDENT:
		return diag.CodeMissingIdentifier
	default:
		return diag.CodeUnexpectedToken
	}
}
