package parser

import (
	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/diag"
	"github.com/krotik/jsqueeze/token"
)

// parseExpression parses a full Expression production: one or more
// AssignmentExpressions joined by the comma operator (spec §3, §4.2).
// noIn suppresses the bare `in` relational operator, used while parsing
// a classic for-head's init clause.
func (p *Parser) parseExpression(noIn bool) ast.Expression {
	first := p.parseAssignment(noIn)
	for p.cur.Is(token.COMMA) {
		ctx := p.cur.Current().Context
		p.cur.Advance()
		right := p.parseAssignment(noIn)
		first = ast.NewBinaryOperator(ctx, ",", first, right)
	}
	return first
}

// parseAssignment parses a ConditionalExpression, then (if the next
// token is an assignment operator) recurses right-associatively,
// validating the left-hand side is a legal assignment target (spec
// §4.2 "Assignment").
func (p *Parser) parseAssignment(noIn bool) ast.Expression {
	left := p.parseConditional(noIn)
	if !p.cur.Current().Kind.IsAssignment() {
		return left
	}
	op := p.cur.Current()
	if !isAssignable(left) {
		p.diags.Addf(diag.CodeInvalidAssignTarget, diag.SeverityError, op.Context, "invalid assignment target")
	}
	p.cur.Advance()
	right := p.parseAssignment(noIn)
	return ast.NewBinaryOperator(op.Context, op.Raw, left, right)
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.Member:
		return true
	case *ast.Call:
		return e.(*ast.Call).InBrackets
	}
	return false
}

func (p *Parser) parseConditional(noIn bool) ast.Expression {
	test := p.parseBinary(0, noIn)
	if !p.cur.Is(token.QUESTION) {
		return test
	}
	ctx := p.cur.Current().Context
	p.cur.Advance()
	cons := p.parseAssignment(false)
	p.rec.expect(token.COLON, "in conditional expression", token.COLON)
	alt := p.parseAssignment(noIn)
	return ast.NewConditional(ctx, test, cons, alt)
}

// parseBinary implements precedence climbing over token.BinaryPrecedence
// (spec §4.2 "Expression parser"). minPrec is the lowest precedence the
// loop accepts; recursive calls raise it for left-associative operators
// and keep it for right-associative ones.
func (p *Parser) parseBinary(minPrec token.Precedence, noIn bool) ast.Expression {
	left := p.parseUnary()
	for {
		cur := p.cur.Current()
		if noIn && cur.Kind == token.IN {
			break
		}
		if cur.Kind == token.QUESTION || cur.Kind.IsAssignment() {
			break // handled by parseConditional/parseAssignment
		}
		prec, ok := token.BinaryPrecedence(cur.Kind)
		if !ok || prec < minPrec || prec <= token.PrecAssignment {
			break
		}
		p.cur.Advance()
		nextMin := prec + 1
		if token.IsRightAssociative(cur.Kind) {
			nextMin = prec
		}
		right := p.parseBinary(nextMin, noIn)
		left = ast.NewBinaryOperator(cur.Context, cur.Raw, left, right)
	}
	return left
}

// parseUnary parses prefix unary operators and delegates to
// parsePostfix for the operand (spec §4.2 "Unary and postfix").
func (p *Parser) parseUnary() ast.Expression {
	cur := p.cur.Current()
	if token.IsUnaryPrefix(cur.Kind) {
		p.cur.Advance()
		operand := p.parseUnary()
		return ast.NewUnaryOperator(cur.Context, cur.Raw, operand, false)
	}
	return p.parsePostfix()
}

// parsePostfix parses a LeftHandSideExpression, then a trailing
// non-line-broken `++`/`--` if present (spec §4.2: ASI forbids a
// postfix operator after a line terminator).
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseCallMemberChain(p.parsePrimary())
	if (p.cur.Is(token.INC) || p.cur.Is(token.DEC)) && !p.cur.Current().FoundEOL {
		op := p.cur.Current()
		p.cur.Advance()
		return ast.NewUnaryOperator(op.Context, op.Raw, expr, true)
	}
	return expr
}

// parseCallMemberChain parses the `.ident`, `[expr]`, and `(args)`
// suffixes of a LeftHandSideExpression, including `new` already
// consumed in base. Computed member access `a[b]` is represented as a
// Call with InBrackets=true per spec §4.2's normalization.
func (p *Parser) parseCallMemberChain(base ast.Expression) ast.Expression {
	for {
		switch {
		case p.cur.Is(token.DOT):
			p.cur.Advance()
			prop := p.cur.Current()
			if !p.cur.Is(token.IDENT) && !prop.Kind.IsKeyword() {
				p.rec.errExpected(token.IDENT, "after '.'")
			} else {
				p.cur.Advance()
			}
			base = ast.NewMember(prop.Context, base, prop.Raw)
		case p.cur.Is(token.LBRACK):
			ctx := p.cur.Current().Context
			p.cur.Advance()
			index := p.parseExpression(false)
			end := p.cur.Current().Context
			p.rec.expect(token.RBRACK, "to close computed member access", token.RBRACK)
			base = ast.NewCall(ctx.Merge(end), base, []ast.Expression{index}, false, true)
		case p.cur.Is(token.LPAREN):
			ctx := p.cur.Current().Context
			args := p.parseArguments()
			end := p.cur.Current().Context
			base = ast.NewCall(ctx.Merge(end), base, args, false, false)
		default:
			return base
		}
	}
}

func (p *Parser) parseArguments() []ast.Expression {
	p.cur.Advance() // (
	var args []ast.Expression
	for !p.cur.Is(token.RPAREN) && !p.cur.IsEOF() {
		args = append(args, p.parseAssignment(false))
		if p.cur.Is(token.COMMA) {
			p.cur.Advance()
			continue
		}
		break
	}
	p.rec.expect(token.RPAREN, "to close argument list", token.RPAREN)
	return args
}

// parsePrimary parses the atomic expression forms: literals, `this`,
// identifiers, parenthesized expressions, array/object literals,
// function expressions, `new` expressions, and opaque ASP.NET blocks
// (spec §3, §4.2).
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur.Current()
	switch tok.Kind {
	case token.THIS:
		p.cur.Advance()
		return ast.NewThisLiteral(tok.Context)
	case token.IDENT, token.GET, token.SET, token.YIELD, token.OF, token.IMPLEMENTS, token.LET:
		p.cur.Advance()
		return ast.NewIdentifier(tok.Context, tok.Raw)
	case token.INT, token.NUMERIC:
		p.cur.Advance()
		return ast.NewConstantWrapper(tok.Context, ast.ConstNumber, tok.Raw, tok.Literal, tok.MayHaveIssue)
	case token.STRING, token.TEMPLATE:
		p.cur.Advance()
		return ast.NewConstantWrapper(tok.Context, ast.ConstString, tok.Raw, tok.Literal, tok.MayHaveIssue)
	case token.TRUE_LIT, token.FALSE_LIT:
		p.cur.Advance()
		return ast.NewConstantWrapper(tok.Context, ast.ConstBoolean, tok.Raw, tok.Raw, false)
	case token.NULL_LIT:
		p.cur.Advance()
		return ast.NewConstantWrapper(tok.Context, ast.ConstNull, tok.Raw, tok.Raw, false)
	case token.SLASH, token.SLASH_ASSIGN:
		if regexTok, ok := p.cur.RescanAsRegex(); ok {
			p.cur.Advance()
			return ast.NewRegExpLiteral(regexTok.Context, regexPattern(regexTok.Raw), regexFlags(regexTok.Raw))
		}
		p.rec.errExpected(token.IDENT, "an expression, not '/'")
		p.cur.Advance()
		return ast.NewIdentifier(tok.Context, tok.Raw)
	case token.LPAREN:
		p.cur.Advance()
		inner := p.parseExpression(false)
		end := p.cur.Current().Context
		p.rec.expect(token.RPAREN, "to close parenthesized expression", token.RPAREN)
		return ast.NewGroupingOperator(tok.Context.Merge(end), inner)
	case token.LBRACK:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.FUNCTION:
		return p.parseFunction(ast.FunctionExpression)
	case token.NEW:
		return p.parseNewExpression()
	case token.ASPNET_BLOCK:
		p.cur.Advance()
		return ast.NewASPNetBlock(tok.Context, tok.Raw)
	default:
		p.rec.errExpected(token.IDENT, "to start an expression")
		p.cur.Advance()
		return ast.NewIdentifier(tok.Context, tok.Raw)
	}
}

func regexPattern(raw string) string {
	end := len(raw) - 1
	for end > 0 && raw[end] != '/' {
		end--
	}
	return raw[1:end]
}

func regexFlags(raw string) string {
	end := len(raw) - 1
	for end > 0 && raw[end] != '/' {
		end--
	}
	return raw[end+1:]
}

func (p *Parser) parseNewExpression() ast.Expression {
	start := p.cur.Current().Context
	p.cur.Advance() // new
	callee := p.parseCallMemberChainNoCalls(p.parsePrimary())
	var args []ast.Expression
	if p.cur.Is(token.LPAREN) {
		args = p.parseArguments()
	}
	end := p.cur.Current().Context
	return ast.NewCall(start.Merge(end), callee, args, true, false)
}

// parseCallMemberChainNoCalls parses only `.ident`/`[expr]` suffixes,
// stopping before a `(`, so `new a.b.c(args)` attaches args to the
// whole member chain rather than swallowing an inner call (spec §4.2
// "new expression").
func (p *Parser) parseCallMemberChainNoCalls(base ast.Expression) ast.Expression {
	for {
		switch {
		case p.cur.Is(token.DOT):
			p.cur.Advance()
			prop := p.cur.Current()
			if !p.cur.Is(token.IDENT) && !prop.Kind.IsKeyword() {
				p.rec.errExpected(token.IDENT, "after '.'")
			} else {
				p.cur.Advance()
			}
			base = ast.NewMember(prop.Context, base, prop.Raw)
		case p.cur.Is(token.LBRACK):
			ctx := p.cur.Current().Context
			p.cur.Advance()
			index := p.parseExpression(false)
			end := p.cur.Current().Context
			p.rec.expect(token.RBRACK, "to close computed member access", token.RBRACK)
			base = ast.NewCall(ctx.Merge(end), base, []ast.Expression{index}, false, true)
		default:
			return base
		}
	}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.cur.Current().Context
	p.cur.Advance() // [
	var elements []ast.Expression
	for !p.cur.Is(token.RBRACK) && !p.cur.IsEOF() {
		if p.cur.Is(token.COMMA) {
			elements = append(elements, nil) // elision
			p.cur.Advance()
			continue
		}
		elements = append(elements, p.parseAssignment(false))
		if p.cur.Is(token.COMMA) {
			p.cur.Advance()
			continue
		}
		break
	}
	end := p.cur.Current().Context
	p.rec.expect(token.RBRACK, "to close array literal", token.RBRACK)
	return ast.NewArrayLiteral(start.Merge(end), elements)
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	start := p.cur.Current().Context
	p.cur.Advance() // {
	var props []ast.Expression
	for !p.cur.Is(token.RBRACE) && !p.cur.IsEOF() {
		props = append(props, p.parseObjectProperty())
		if p.cur.Is(token.COMMA) {
			p.cur.Advance()
			continue
		}
		break
	}
	end := p.cur.Current().Context
	p.rec.expect(token.RBRACE, "to close object literal", token.RBRACE)
	return ast.NewObjectLiteral(start.Merge(end), props)
}

// parseObjectProperty parses one `key: value`, `get key() {...}`, or
// `set key(v) {...}` entry (spec §3 "GetterSetter").
func (p *Parser) parseObjectProperty() ast.Expression {
	tok := p.cur.Current()
	if (tok.Kind == token.GET || tok.Kind == token.SET) && !p.cur.PeekIs(1, token.COLON) && !p.cur.PeekIs(1, token.COMMA) && !p.cur.PeekIs(1, token.RBRACE) {
		isGetter := tok.Kind == token.GET
		p.cur.Advance()
		key, _, _ := p.parsePropertyKey()
		role := ast.FunctionSetter
		if isGetter {
			role = ast.FunctionGetter
		}
		fnScope := p.scopes.EnterFunction()
		params := p.parseParameterList()
		wasInFunction := p.inFunction
		p.inFunction = true
		body := p.parseFunctionBody()
		p.inFunction = wasInFunction
		p.scopes.Exit()
		fn := ast.NewFunctionObject(tok.Context.Merge(body.Context()), role, "", params, body)
		p.scopes.Bind(fn, fnScope)
		p.scopes.Bind(body, fnScope)
		return ast.NewGetterSetter(tok.Context, key, isGetter, fn)
	}

	key, keyIsNum, keyIsStr := p.parsePropertyKey()
	p.rec.expect(token.COLON, "after object property key", token.COMMA, token.RBRACE)
	value := p.parseAssignment(false)
	return ast.NewObjectLiteralProperty(tok.Context, key, keyIsNum, keyIsStr, value)
}

func (p *Parser) parsePropertyKey() (key string, isNum, isStr bool) {
	tok := p.cur.Current()
	switch tok.Kind {
	case token.STRING:
		p.cur.Advance()
		return tok.Raw, false, true
	case token.INT, token.NUMERIC:
		p.cur.Advance()
		return tok.Raw, true, false
	default:
		if tok.Kind == token.IDENT || tok.Kind.IsKeyword() {
			p.cur.Advance()
			return tok.Raw, false, false
		}
		p.rec.errExpected(token.IDENT, "as object property key")
		return tok.Raw, false, false
	}
}
