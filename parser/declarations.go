package parser

import (
	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/diag"
	"github.com/krotik/jsqueeze/token"
)

func (p *Parser) parseVarStatement() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // var
	decls := p.parseVariableDeclarationList(false)
	for _, d := range decls {
		p.scopes.DeclareVar(d.Name, d.Context())
	}
	p.consumeSemicolon()
	return ast.NewVar(start, decls)
}

func (p *Parser) parseLexicalDeclaration() ast.Statement {
	start := p.cur.Current().Context
	isConst := p.cur.Is(token.CONST)
	p.cur.Advance() // let / const
	decls := p.parseVariableDeclarationList(false)
	for _, d := range decls {
		p.scopes.DeclareLexical(d.Name, isConst, d.Context())
	}
	p.consumeSemicolon()
	return ast.NewLexicalDeclaration(start, isConst, decls, isConst && p.settings.ConstStatementsMozilla)
}

// parseVariableDeclarationList parses one or more `name [= init]`
// bindings. noIn suppresses the bare `in` operator in each
// initializer, the way a for-head's declaration clause must (spec
// §4.2 "for" ambiguity with for-in).
func (p *Parser) parseVariableDeclarationList(noIn bool) []*ast.VariableDeclaration {
	var decls []*ast.VariableDeclaration
	for {
		decls = append(decls, p.parseVariableDeclaration(noIn))
		if !p.cur.Is(token.COMMA) {
			break
		}
		p.cur.Advance()
	}
	return decls
}

func (p *Parser) parseVariableDeclaration(noIn bool) *ast.VariableDeclaration {
	tok := p.cur.Current()
	name := tok.Raw
	if !p.cur.Is(token.IDENT) {
		p.rec.errExpected(token.IDENT, "in variable declaration")
	} else {
		p.cur.Advance()
	}
	var init ast.Expression
	if p.cur.Is(token.ASSIGN) {
		p.cur.Advance()
		init = p.parseAssignment(noIn)
	}
	return ast.NewVariableDeclaration(tok.Context, name, init)
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	fn := p.parseFunction(ast.FunctionDeclaration)
	return fn
}

// parseFunction parses `function [name] (params) { body }`. role
// distinguishes a declaration (name required) from an expression (name
// optional) and from a getter/setter body (name absent, no `function`
// keyword consumed by the caller in that case — see parseObjectLiteral).
func (p *Parser) parseFunction(role ast.FunctionRole) *ast.FunctionObject {
	start := p.cur.Current().Context
	if role != ast.FunctionGetter && role != ast.FunctionSetter {
		p.cur.Advance() // function
	}
	name := ""
	if p.cur.Is(token.IDENT) {
		name = p.cur.Current().Raw
		p.cur.Advance()
	} else if role == ast.FunctionDeclaration {
		p.rec.errExpected(token.IDENT, "after 'function'")
	}
	// A declaration's own name hoists into the *enclosing* scope (so
	// sibling statements and the function body itself can call it
	// recursively by name); a named function expression's name is
	// instead only visible inside its own scope (spec §2).
	if role == ast.FunctionDeclaration && name != "" {
		p.scopes.DeclareFunction(name, start)
	}
	fnScope := p.scopes.EnterFunction()
	if role != ast.FunctionDeclaration && name != "" {
		p.scopes.DeclareFunction(name, start)
	}
	params := p.parseParameterList()
	wasInFunction := p.inFunction
	p.inFunction = true
	body := p.parseFunctionBody()
	p.inFunction = wasInFunction
	p.scopes.Exit()
	end := body.Context()
	fn := ast.NewFunctionObject(start.Merge(end), role, name, params, body)
	fn.StrictMode = bodyIsStrict(body)
	p.scopes.Bind(fn, fnScope)
	p.scopes.Bind(body, fnScope)
	return fn
}

func (p *Parser) parseParameterList() []*ast.ParameterDeclaration {
	p.rec.expect(token.LPAREN, "in parameter list", token.RPAREN)
	var params []*ast.ParameterDeclaration
	for !p.cur.Is(token.RPAREN) && !p.cur.IsEOF() {
		tok := p.cur.Current()
		if p.cur.Is(token.IDENT) {
			params = append(params, ast.NewParameterDeclaration(tok.Context, tok.Raw))
			p.scopes.DeclareParameter(tok.Raw, tok.Context)
			p.cur.Advance()
		} else {
			p.rec.errExpected(token.IDENT, "in parameter list")
			p.rec.skipUntil(token.COMMA, token.RPAREN)
		}
		if p.cur.Is(token.COMMA) {
			p.cur.Advance()
			continue
		}
		break
	}
	p.rec.expect(token.RPAREN, "to close parameter list", token.LBRACE)
	return params
}

// parseFunctionBody parses the statement list that makes up a function
// body, sharing the enclosing function scope a caller already pushed
// via scopes.EnterFunction (a function body is not itself a nested
// Block scope — its `var`s and the function's parameters live in one
// and the same scope, per ES5 function scoping).
func (p *Parser) parseFunctionBody() *ast.Block {
	start := p.cur.Current().Context
	p.rec.expect(token.LBRACE, "to open function body", token.RBRACE)
	stmts := p.parseSourceElements(token.RBRACE)
	applyDirectivePrologues(stmts)
	end := p.cur.Current().Context
	if p.cur.IsEOF() {
		// Reaching end-of-file while still inside a function body is its
		// own diagnosis (spec §7), carrying the function body's own
		// opening position rather than the generic "expected '}',
		// got EOF" message anchored on the EOF token.
		p.diags.Add(diag.New(diag.CodeUnclosedFunctionBody, diag.SeverityError, start,
			"function body starting here was never closed before end of input"))
	} else {
		p.rec.expect(token.RBRACE, "to close function body", token.RBRACE)
	}
	return ast.NewBlock(start.Merge(end), stmts)
}

func bodyIsStrict(body *ast.Block) bool {
	for _, s := range body.Statements {
		d, ok := s.(*ast.DirectivePrologue)
		if !ok {
			break
		}
		if d.Value == "use strict" {
			return true
		}
	}
	return false
}

func (p *Parser) parseSwitch() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // switch
	p.rec.expect(token.LPAREN, "after 'switch'", token.RPAREN)
	disc := p.parseExpression(false)
	p.rec.expect(token.RPAREN, "to close 'switch' discriminant", token.LBRACE)
	p.rec.expect(token.LBRACE, "to open 'switch' body", token.RBRACE)

	p.switchDepth++
	var cases []*ast.SwitchCase
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		cases = append(cases, p.parseSwitchCase())
	}
	p.switchDepth--
	end := p.cur.Current().Context
	p.rec.expect(token.RBRACE, "to close 'switch' body", token.RBRACE)
	return ast.NewSwitch(start.Merge(end), disc, cases)
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	start := p.cur.Current().Context
	var test ast.Expression
	if p.cur.Is(token.CASE) {
		p.cur.Advance()
		test = p.parseExpression(false)
	} else {
		p.rec.expect(token.DEFAULT, "to start a switch case", token.COLON)
	}
	p.rec.expect(token.COLON, "after switch case label", token.CASE, token.DEFAULT, token.RBRACE)
	var stmts []ast.Statement
	for !p.cur.Is(token.CASE, token.DEFAULT, token.RBRACE) && !p.cur.IsEOF() {
		stmts = append(stmts, p.drainImportantComments()...)
		if p.cur.Is(token.CASE, token.DEFAULT, token.RBRACE) {
			break
		}
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return ast.NewSwitchCase(start, test, stmts)
}

func (p *Parser) parseTry() ast.Statement {
	start := p.cur.Current().Context
	p.cur.Advance() // try
	block := p.parseBlock()

	hasCatch := false
	catchParam := ""
	var handler *ast.Block
	if p.cur.Is(token.CATCH) {
		hasCatch = true
		p.cur.Advance()
		p.rec.expect(token.LPAREN, "after 'catch'", token.RPAREN)
		tok := p.cur.Current()
		p.scopes.EnterCatch()
		if p.cur.Is(token.IDENT) {
			catchParam = tok.Raw
			p.scopes.DeclareCatchParam(catchParam, tok.Context)
			p.cur.Advance()
		} else {
			p.rec.errExpected(token.IDENT, "as catch parameter")
		}
		p.rec.expect(token.RPAREN, "to close 'catch' parameter", token.LBRACE)
		handler = p.parseBlock() // its own nested Block scope, parented on the catch scope
		p.scopes.Exit()
	}

	var finalizer *ast.Block
	if p.cur.Is(token.FINALLY) {
		p.cur.Advance()
		finalizer = p.parseBlock()
	}

	if !hasCatch && finalizer == nil {
		p.rec.errExpected(token.CATCH, "or 'finally' after 'try' block")
	}

	return ast.NewTry(start, block, hasCatch, catchParam, handler, finalizer)
}
