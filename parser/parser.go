// Package parser implements the recursive-descent parser: statement
// and expression grammar, ASI, and panic-mode error recovery over a
// token.Kind stream (spec §4.2).
package parser

import (
	"github.com/krotik/common/logutil"

	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/diag"
	"github.com/krotik/jsqueeze/lexer"
	"github.com/krotik/jsqueeze/scope"
	"github.com/krotik/jsqueeze/source"
	"github.com/krotik/jsqueeze/token"
)

// Settings configures parser-level behavior the spec leaves as explicit
// options rather than fixed semantics (spec §9, SPEC_FULL.md §13).
type Settings struct {
	// ConstStatementsMozilla sets LexicalDeclaration.MozillaConst on
	// every `const` declaration. Parsing and scoping do not change: the
	// names are declared block-scoped either way.
	ConstStatementsMozilla bool
}

// Parser consumes a token stream via a Cursor and produces an
// *ast.Program, collecting diagnostics rather than aborting on the
// first syntax error (spec §4.2, §7).
type Parser struct {
	cur      *Cursor
	diags    *diag.Bag
	rec      *recovery
	settings Settings

	loopDepth   int
	switchDepth int
	labels      map[string]bool
	inFunction  bool

	skipBudget int  // consecutive tokens skipped by recovery since the last successful statement
	aborted    bool // set once skipBudget exceeds the recovery budget (spec §4.2, §7)

	log    logutil.Logger
	scopes *scope.Builder
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger attaches a krotik/common logutil.Logger for Warning-level
// recovery tracing (spec §11: logged when the skipped-token budget is
// spent). Nil (the default) disables it entirely.
func WithLogger(log logutil.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New creates a Parser over lex.
func New(lex *lexer.Lexer, settings Settings, opts ...Option) *Parser {
	p := &Parser{
		cur:      NewCursor(lex),
		diags:    &diag.Bag{},
		settings: settings,
		labels:   map[string]bool{},
		scopes:   scope.NewBuilder(),
	}
	p.rec = newRecovery(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Diagnostics returns all diagnostics collected so far.
func (p *Parser) Diagnostics() []diag.Diagnostic { return p.diags.All() }

// Scopes returns the scope tree built alongside the most recently
// parsed Program (spec §2 "Scopes & fields"), ready for a
// scope.Resolver to walk. Safe to call only after Parse returns.
func (p *Parser) Scopes() *scope.Tree { return p.scopes.Tree() }

// Parse parses the entire token stream into a Program.
func (p *Parser) Parse() (*ast.Program, []diag.Diagnostic) {
	start := p.cur.Current().Context
	body := p.parseSourceElements(token.EOF)
	end := p.cur.Current().Context
	prog := ast.NewProgram(start.Merge(end), body)
	applyDirectivePrologues(prog.Body)
	p.scopes.Bind(prog, p.scopes.Tree().Root)
	return prog, p.diags.All()
}

// parseSourceElements parses statements (including function
// declarations and directive prologues) until Current is end or EOF.
func (p *Parser) parseSourceElements(end token.Kind) []ast.Statement {
	var body []ast.Statement
	for !p.cur.Is(end) && !p.cur.IsEOF() && !p.aborted {
		body = append(body, p.drainImportantComments()...)
		if p.cur.Is(end) || p.cur.IsEOF() {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
			p.skipBudget = 0
		}
	}
	return body
}

func (p *Parser) drainImportantComments() []ast.Statement {
	toks := p.cur.DrainImportantComments()
	if len(toks) == 0 {
		return nil
	}
	out := make([]ast.Statement, 0, len(toks))
	for _, t := range toks {
		out = append(out, ast.NewImportantComment(t.Context, t.Raw))
	}
	return out
}

// applyDirectivePrologues re-tags the leading run of bare string-literal
// expression statements at the head of a statement list as
// DirectivePrologue nodes (spec §4.2).
func applyDirectivePrologues(body []ast.Statement) {
	for i, s := range body {
		es, ok := s.(*ast.ExpressionStatement)
		if !ok {
			break
		}
		cw, ok := es.Expr.(*ast.ConstantWrapper)
		if !ok || cw.Kind != ast.ConstString {
			break
		}
		body[i] = ast.NewDirectivePrologue(es.Context(), cw.Value)
	}
}

// consumeSemicolon applies automatic semicolon insertion (spec §4.2):
// an explicit `;` is always consumed; otherwise ASI fires when a line
// terminator preceded the current token, the current token is `}` or
// EOF. Anything else is a missing-semicolon diagnostic with recovery.
func (p *Parser) consumeSemicolon() {
	if p.cur.Is(token.SEMICOLON) {
		p.cur.Advance()
		return
	}
	if p.cur.Is(token.RBRACE) || p.cur.IsEOF() {
		return
	}
	if p.cur.Current().FoundEOL {
		ctx := p.cur.Current().Context
		p.diags.Addf(diag.CodeASIInserted, diag.SeverityWarning, ctx,
			"semicolon automatically inserted before %s", p.cur.Current().Kind)
		return
	}
	p.rec.errExpected(token.SEMICOLON, "")
	p.rec.synchronizeOn(token.SEMICOLON)
	if p.cur.Is(token.SEMICOLON) {
		p.cur.Advance()
	}
}

// parseStatement dispatches on the current token's kind (spec §4.2
// "Statement dispatch").
func (p *Parser) parseStatement() ast.Statement {
	tok := p.cur.Current()
	switch tok.Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.VAR:
		return p.parseVarStatement()
	case token.LET, token.CONST:
		return p.parseLexicalDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.SWITCH:
		return p.parseSwitch()
	case token.TRY:
		return p.parseTry()
	case token.THROW:
		return p.parseThrow()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	case token.WITH:
		return p.parseWith()
	case token.DEBUGGER:
		ctx := tok.Context
		p.cur.Advance()
		p.consumeSemicolon()
		return ast.NewDebugger(ctx)
	case token.SEMICOLON:
		ctx := tok.Context
		p.cur.Advance()
		return ast.NewEmpty(ctx)
	case token.ASPNET_BLOCK:
		p.cur.Advance()
		return ast.NewExpressionStatement(tok.Context, ast.NewASPNetBlock(tok.Context, tok.Raw))
	case token.CONDCOMP_ON, token.CONDCOMP_SET, token.CONDCOMP_IF, token.CONDCOMP_ELIF, token.CONDCOMP_ELSE, token.CONDCOMP_END:
		p.cur.Advance()
		directive := tok.Kind.String()[1:] // strip leading '@'
		return ast.NewConditionalCompilation(tok.Context, directive, tok.Raw)
	case token.IDENT:
		if p.cur.PeekIs(1, token.COLON) {
			return p.parseLabeled()
		}
		return p.parseExpressionStatement()
	default:
		if p.cur.Is(token.RBRACE) || p.cur.IsEOF() {
			return nil
		}
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.cur.Current().Context
	p.cur.Advance() // {
	blockScope := p.scopes.EnterBlock()
	stmts := p.parseSourceElements(token.RBRACE)
	p.scopes.Exit()
	end := p.cur.Current().Context
	p.rec.expect(token.RBRACE, "to close block", token.RBRACE)
	block := ast.NewBlock(start.Merge(end), stmts)
	p.scopes.Bind(block, blockScope)
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.cur.Current().Context
	expr := p.parseExpression(false)
	p.consumeSemicolon()
	return ast.NewExpressionStatement(start, expr)
}

func (p *Parser) parseLabeled() ast.Statement {
	tok := p.cur.Current()
	label := tok.Raw
	p.cur.Advance() // ident
	p.cur.Advance() // :
	p.labels[label] = true
	body := p.parseStatement()
	delete(p.labels, label)
	return ast.NewLabeled(tok.Context, label, body)
}

func (p *Parser) parseThrow() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // throw
	arg := p.parseExpression(false)
	p.consumeSemicolon()
	return ast.NewThrow(start, arg)
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // return
	var arg ast.Expression
	if !p.cur.Is(token.SEMICOLON, token.RBRACE) && !p.cur.IsEOF() && !p.cur.Current().FoundEOL {
		arg = p.parseExpression(false)
	}
	p.consumeSemicolon()
	return ast.NewReturn(start, arg)
}

func (p *Parser) parseBreak() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // break
	label := ""
	if p.cur.Is(token.IDENT) && !p.cur.Current().FoundEOL {
		label = p.cur.Current().Raw
		p.cur.Advance()
	}
	if label == "" && p.loopDepth == 0 && p.switchDepth == 0 {
		p.diags.Addf(diag.CodeIllegalBreak, diag.SeverityError, start, "'break' outside a loop or switch")
	}
	p.consumeSemicolon()
	return ast.NewBreak(start, label)
}

func (p *Parser) parseContinue() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // continue
	label := ""
	if p.cur.Is(token.IDENT) && !p.cur.Current().FoundEOL {
		label = p.cur.Current().Raw
		p.cur.Advance()
	}
	if p.loopDepth == 0 {
		p.diags.Addf(diag.CodeIllegalContinue, diag.SeverityError, start, "'continue' outside a loop")
	}
	p.consumeSemicolon()
	return ast.NewContinue(start, label)
}

func (p *Parser) parseWith() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // with
	p.rec.expect(token.LPAREN, "after 'with'", token.RPAREN)
	obj := p.parseExpression(false)
	p.rec.expect(token.RPAREN, "to close 'with' condition", token.LBRACE)
	withScope := p.scopes.EnterWith()
	body := p.parseStatement()
	p.scopes.Exit()
	n := ast.NewWith(start, obj, body)
	p.scopes.Bind(n, withScope)
	return n
}

func (p *Parser) parseIf() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // if
	p.rec.expect(token.LPAREN, "after 'if'", token.RPAREN)
	test := p.parseExpression(false)
	p.rec.expect(token.RPAREN, "to close 'if' condition", token.LBRACE)
	cons := p.parseStatement()
	var alt ast.Statement
	if p.cur.Is(token.ELSE) {
		p.cur.Advance()
		alt = p.parseStatement()
	}
	return ast.NewIf(start, test, cons, alt)
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // while
	p.rec.expect(token.LPAREN, "after 'while'", token.RPAREN)
	test := p.parseExpression(false)
	p.rec.expect(token.RPAREN, "to close 'while' condition", token.LBRACE)
	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--
	return ast.NewWhile(start, test, body)
}

func (p *Parser) parseDoWhile() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // do
	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--
	p.rec.expect(token.WHILE, "after 'do' body", token.LPAREN)
	p.rec.expect(token.LPAREN, "after 'while'", token.RPAREN)
	test := p.parseExpression(false)
	p.rec.expect(token.RPAREN, "to close 'while' condition", token.SEMICOLON)
	p.consumeSemicolon()
	return ast.NewDoWhile(start, body, test)
}

// parseFor disambiguates the classic three-clause form from
// for-in/for-of by speculatively parsing the init clause then checking
// for IN/OF (spec §4.2).
func (p *Parser) parseFor() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // for
	p.rec.expect(token.LPAREN, "after 'for'", token.RPAREN)

	var init ast.Node
	if p.cur.Is(token.VAR) {
		varStart := p.cur.Current().Context
		p.cur.Advance()
		decls := p.parseVariableDeclarationList(true)
		v := ast.NewVar(varStart, decls)
		if (p.cur.Is(token.IN) || p.cur.Is(token.OF)) && len(decls) == 1 {
			return p.finishForInOf(start, v, decls[0].Name)
		}
		init = v
	} else if !p.cur.Is(token.SEMICOLON) {
		expr := p.parseExpression(true)
		if p.cur.Is(token.IN) || p.cur.Is(token.OF) {
			return p.finishForInOf(start, expr, "")
		}
		init = expr
	}

	p.rec.expect(token.SEMICOLON, "after 'for' initializer", token.SEMICOLON, token.RPAREN)
	var test ast.Expression
	if !p.cur.Is(token.SEMICOLON) {
		test = p.parseExpression(false)
	}
	p.rec.expect(token.SEMICOLON, "after 'for' condition", token.SEMICOLON, token.RPAREN)
	var update ast.Expression
	if !p.cur.Is(token.RPAREN) {
		update = p.parseExpression(false)
	}
	p.rec.expect(token.RPAREN, "to close 'for' clauses", token.LBRACE)
	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--
	return ast.NewFor(start, init, test, update, body)
}

// finishForInOf completes `for (Variable in/of Collection) Body` once
// the IN or OF token has been recognized. The third parameter (the
// declared name) is not used.
func (p *Parser) finishForInOf(start source.Context, variable ast.Node, _ string) ast.Statement {
	ofLoop := p.cur.Is(token.OF)
	p.cur.Advance() // in / of
	collection := p.parseExpression(false)
	p.rec.expect(token.RPAREN, "to close 'for' head", token.LBRACE)
	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--
	return ast.NewForIn(start, variable, collection, body, ofLoop)
}
