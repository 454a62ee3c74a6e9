package printer

import (
	"strings"

	"github.com/krotik/common/logutil"

	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/lexer"
	"github.com/krotik/jsqueeze/token"
)

// Printer renders an *ast.Program back into source text. It implements
// ast.Visitor (spec §4.3's external-extension contract) with identity
// traversal: a Visit method's job here is the side effect of writing
// bytes, not producing a replacement node, so every Visit method returns
// its argument unchanged. The actual recursive-descent rendering lives
// in the printXxx methods below, called directly rather than through
// Accept, since precedence and ASI decisions need parent-context
// parameters (minimum precedence, no-in scope) that the fixed Visitor
// signature has no room for.
type Printer struct {
	ast.BaseVisitor
	w        *writer
	settings Settings
	strict   bool // current strict-mode status (spec §4.4 property-key quoting)

	log logutil.Logger
}

// Option configures a Printer at construction time.
type Option func(*Printer)

// WithLogger attaches a krotik/common logutil.Logger for Debug-level
// output tracing (spec §11: logged when replaceable_semicolon() elides
// a terminator). Nil (the default) disables it entirely.
func WithLogger(log logutil.Logger) Option {
	return func(p *Printer) { p.log = log }
}

// New builds a Printer for settings.
func New(settings Settings, opts ...Option) *Printer {
	p := &Printer{w: newWriter(settings), settings: settings}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders prog and returns the resulting source text.
func Print(prog *ast.Program, settings Settings, opts ...Option) string {
	p := New(settings, opts...)
	p.strict = directivePrologueIsStrict(prog.Body)
	p.printStatementList(prog.Body)
	return p.w.String()
}

// emitReplaceableSemicolon wraps writer.replaceableSemicolon with the
// Debug-level trace spec §11 documents for an actual elision.
func (p *Printer) emitReplaceableSemicolon() {
	if !p.w.replaceableSemicolon() && p.log != nil {
		p.log.Debug("printer: elided replaceable semicolon at line ", p.w.line)
	}
}

// directivePrologueIsStrict reports whether body's leading run of
// DirectivePrologue statements includes "use strict".
func directivePrologueIsStrict(body []ast.Statement) bool {
	for _, s := range body {
		d, ok := s.(*ast.DirectivePrologue)
		if !ok {
			return false
		}
		if d.Value == "use strict" {
			return true
		}
	}
	return false
}

func (p *Printer) String() string { return p.w.String() }

// --- statement list / block plumbing -------------------------------

func (p *Printer) printStatementList(stmts []ast.Statement) {
	for i, s := range stmts {
		isLast := i == len(stmts)-1
		p.printStatement(s, isLast)
		if !isLast {
			p.w.newlineOrSpace()
		}
		if statementNeedsSemicolon(s) {
			if !isLast || p.settings.TermSemicolons {
				p.w.token(";")
			}
		}
		p.w.wrapIfNeeded()
	}
}

func statementNeedsSemicolon(s ast.Statement) bool {
	switch s.(type) {
	case *ast.Block, *ast.If, *ast.For, *ast.ForIn, *ast.While, *ast.Switch,
		*ast.Try, *ast.FunctionObject, *ast.Labeled, *ast.With, *ast.Empty,
		*ast.ImportantComment, *ast.ConditionalCompilation:
		return false
	}
	return true
}

func (p *Printer) printBlock(b *ast.Block) {
	p.w.openBlock()
	p.printStatementList(b.Statements)
	p.w.closeBlock()
}

// printStatement dispatches on the concrete statement type. isTail
// reports whether s occupies the very last slot of its enclosing
// statement list (program, block, or switch-case body): that position
// is where a non-block sub-statement's own trailing semicolon may be
// elided instead of forced, the same way a block's last statement
// already can be before its closing '}' (spec §4.2 ASI).
func (p *Printer) printStatement(s ast.Statement, isTail bool) {
	switch n := s.(type) {
	case *ast.Block:
		p.printBlock(n)
	case *ast.If:
		p.printIf(n, isTail)
	case *ast.For:
		p.printFor(n, isTail)
	case *ast.ForIn:
		p.printForIn(n, isTail)
	case *ast.While:
		p.w.token("while")
		p.w.token("(")
		p.printExpr(n.Test, token.PrecNone, false)
		p.w.token(")")
		p.printSubStatement(n.Body, isTail, false)
	case *ast.DoWhile:
		p.w.token("do")
		// the do-while body is never textually last within the
		// statement ("while(test)" always follows it), but that
		// following "while" is itself one of replaceable_semicolon()'s
		// safe followers (spec §4.4).
		p.printSubStatement(n.Body, false, true)
		p.w.token("while")
		p.w.token("(")
		p.printExpr(n.Test, token.PrecNone, false)
		p.w.token(")")
	case *ast.Switch:
		p.printSwitch(n)
	case *ast.Try:
		p.printTry(n)
	case *ast.Throw:
		p.w.token("throw")
		p.w.raw(" ")
		p.printExpr(n.Argument, token.PrecComma+1, false)
	case *ast.Return:
		p.w.token("return")
		if n.Argument != nil {
			p.w.raw(" ")
			p.printExpr(n.Argument, token.PrecComma+1, false)
		}
	case *ast.Break:
		p.w.token("break")
		if n.Label != "" {
			p.w.raw(" ")
			p.w.token(n.Label)
		}
	case *ast.Continue:
		p.w.token("continue")
		if n.Label != "" {
			p.w.raw(" ")
			p.w.token(n.Label)
		}
	case *ast.With:
		p.w.token("with")
		p.w.token("(")
		p.printExpr(n.Object, token.PrecNone, false)
		p.w.token(")")
		p.printSubStatement(n.Body, isTail, false)
	case *ast.Labeled:
		p.w.token(n.Label)
		p.w.token(":")
		p.printSubStatement(n.Body, isTail, false)
	case *ast.Debugger:
		p.w.token("debugger")
	case *ast.Empty:
		p.w.token(";")
	case *ast.Var:
		p.printVar(n)
	case *ast.LexicalDeclaration:
		p.printLexicalDeclaration(n)
	case *ast.ExpressionStatement:
		p.printExpressionStatement(n)
	case *ast.DirectivePrologue:
		p.w.token(formatString(n.Value, p.settings))
	case *ast.ImportantComment:
		if p.settings.PreserveImportantComments {
			p.w.raw(n.Text)
			if strings.HasPrefix(n.Text, "//") {
				// a line comment swallows whatever follows on the same
				// line, so compact mode needs a real newline here too,
				// not just the pretty-mode indentation break.
				p.w.raw("\n")
			} else {
				p.w.newlineOrSpace()
			}
		}
	case *ast.ConditionalCompilation:
		p.w.raw(n.Raw)
	case *ast.FunctionObject:
		p.printFunctionObject(n)
	default:
		// unknown statement variant (e.g. a transformation pass's own
		// node): never fail, self-serialize nothing rather than panic
		// (spec §4.4 "printer never fails on well-formed AST").
	}
}

// printSubStatement prints a statement occupying a single-statement
// body position (if/while/for/with's Body) without an enclosing block,
// matching the source author's choice of braced vs. bare body. isTail
// reports whether s is both the textually-last part of its own
// compound statement AND that compound statement is itself in tail
// position — only then may its trailing semicolon be elided outright
// (spec §4.2 ASI, §8 scenario 2). elidableBefore reports whether the
// very next token is one of replaceable_semicolon()'s safe followers
// (else, do-while's while) — when isTail is false but elidableBefore
// is true, the semicolon is only conditionally replaceable by the
// following line break (spec §4.4), not unconditionally dropped.
func (p *Printer) printSubStatement(s ast.Statement, isTail, elidableBefore bool) {
	if b, ok := s.(*ast.Block); ok {
		p.printBlock(b)
		return
	}
	p.w.newlineOrSpace()
	p.printStatement(s, isTail)
	if !statementNeedsSemicolon(s) {
		return
	}
	switch {
	case isTail:
		if p.settings.TermSemicolons {
			p.w.token(";")
		}
	case elidableBefore:
		p.emitReplaceableSemicolon()
	default:
		p.w.token(";")
	}
}

func (p *Printer) printIf(n *ast.If, isTail bool) {
	p.w.token("if")
	p.w.token("(")
	p.printExpr(n.Test, token.PrecNone, false)
	p.w.token(")")
	// the consequent is only the if-statement's tail when there is no
	// else branch; otherwise "else" always follows it, and that "else"
	// is one of replaceable_semicolon()'s safe followers (spec §4.4).
	p.printSubStatement(n.Consequent, isTail && n.Alternate == nil, n.Alternate != nil)
	if n.Alternate != nil {
		p.w.newlineOrSpace()
		p.w.token("else")
		if _, ok := n.Alternate.(*ast.If); ok {
			p.w.raw(" ")
			p.printStatement(n.Alternate, isTail)
		} else {
			p.printSubStatement(n.Alternate, isTail, false)
		}
	}
}

func (p *Printer) printFor(n *ast.For, isTail bool) {
	p.w.token("for")
	p.w.token("(")
	switch init := n.Init.(type) {
	case nil:
	case *ast.Var:
		p.printVarNoTerminator(init, true)
	case *ast.LexicalDeclaration:
		p.printLexicalDeclarationNoTerminator(init, true)
	case ast.Expression:
		p.printExpr(init, token.PrecNone, true)
	}
	p.w.token(";")
	if n.Test != nil {
		p.printExpr(n.Test, token.PrecNone, false)
	}
	p.w.token(";")
	if n.Update != nil {
		p.printExpr(n.Update, token.PrecNone, false)
	}
	p.w.token(")")
	p.printSubStatement(n.Body, isTail, false)
}

func (p *Printer) printForIn(n *ast.ForIn, isTail bool) {
	p.w.token("for")
	p.w.token("(")
	switch v := n.Variable.(type) {
	case *ast.Var:
		p.printVarNoTerminator(v, true)
	case ast.Expression:
		p.printExpr(v, token.PrecNone, true)
	}
	if n.OfLoop {
		p.w.raw(" ")
		p.w.token("of")
	} else {
		p.w.raw(" ")
		p.w.token("in")
	}
	p.w.raw(" ")
	p.printExpr(n.Collection, token.PrecNone, false)
	p.w.token(")")
	p.printSubStatement(n.Body, isTail, false)
}

func (p *Printer) printSwitch(n *ast.Switch) {
	p.w.token("switch")
	p.w.token("(")
	p.printExpr(n.Discriminant, token.PrecNone, false)
	p.w.token(")")
	p.w.openBlock()
	for _, c := range n.Cases {
		if c.Test != nil {
			p.w.token("case")
			p.w.raw(" ")
			p.printExpr(c.Test, token.PrecComma+1, false)
		} else {
			p.w.token("default")
		}
		p.w.token(":")
		p.w.indent++
		p.w.newlineOrSpace()
		p.printStatementList(c.Statements)
		p.w.indent--
		p.w.newlineOrSpace()
	}
	p.w.closeBlock()
}

func (p *Printer) printTry(n *ast.Try) {
	p.w.token("try")
	p.printBlock(n.Block)
	if n.HasCatch {
		p.w.newlineOrSpace()
		p.w.token("catch")
		p.w.token("(")
		p.w.token(n.CatchParam)
		p.w.token(")")
		p.printBlock(n.Handler)
	}
	if n.Finalizer != nil {
		p.w.newlineOrSpace()
		p.w.token("finally")
		p.printBlock(n.Finalizer)
	}
}

func (p *Printer) printVar(n *ast.Var) { p.printVarNoTerminator(n, false) }

func (p *Printer) printVarNoTerminator(n *ast.Var, noIn bool) {
	p.w.token("var")
	p.w.raw(" ")
	for i, d := range n.Declarations {
		if i > 0 {
			p.w.token(",")
		}
		p.printVariableDeclaration(d, noIn)
	}
}

func (p *Printer) printLexicalDeclaration(n *ast.LexicalDeclaration) {
	p.printLexicalDeclarationNoTerminator(n, false)
}

func (p *Printer) printLexicalDeclarationNoTerminator(n *ast.LexicalDeclaration, noIn bool) {
	if n.IsConst {
		p.w.token("const")
	} else {
		p.w.token("let")
	}
	p.w.raw(" ")
	for i, d := range n.Declarations {
		if i > 0 {
			p.w.token(",")
		}
		p.printVariableDeclaration(d, noIn)
	}
}

func (p *Printer) printVariableDeclaration(d *ast.VariableDeclaration, noIn bool) {
	p.w.token(d.Name)
	if d.Init != nil {
		p.w.token("=")
		p.printExpr(d.Init, token.PrecComma+1, noIn)
	}
}

func (p *Printer) printExpressionStatement(n *ast.ExpressionStatement) {
	p.printGuarded(n.Expr, token.PrecNone, false)
}

// printGuarded prints e as the sole expression of an ExpressionStatement,
// parenthesizing a bare function expression or object literal reached
// through e's leftmost spine instead of the whole expression (spec §4.4's
// function/object-literal statement-start ambiguity) — only that atom's
// leading keyword or brace is what confuses the grammar, an IIFE like
// `(function(){})()` needs parens around just the function, not the call.
func (p *Printer) printGuarded(e ast.Expression, minPrec token.Precedence, noIn bool) {
	for {
		if g, ok := e.(*ast.GroupingOperator); ok {
			e = g.Inner
			continue
		}
		break
	}
	switch n := e.(type) {
	case *ast.FunctionObject:
		if n.Role == ast.FunctionExpression {
			p.w.token("(")
			p.printFunctionObject(n)
			p.w.token(")")
			return
		}
	case *ast.ObjectLiteral:
		p.w.token("(")
		p.printObjectLiteral(n)
		p.w.token(")")
		return
	case *ast.BinaryOperator:
		prec := exprPrecedence(n)
		if prec >= minPrec {
			rightAssoc := token.OperatorIsRightAssociative(n.Operator) && n.Operator != ","
			leftMin := prec
			if rightAssoc {
				leftMin = prec + 1
			}
			p.printGuarded(n.Left, leftMin, noIn)
			if n.Operator == "," {
				p.w.token(",")
			} else {
				p.w.token(n.Operator)
			}
			rightMin := prec + 1
			if rightAssoc || token.OperatorIsAssociativeForPrinting(n.Operator) {
				rightMin = prec
			}
			p.printExpr(n.Right, rightMin, noIn)
			return
		}
	case *ast.Conditional:
		p.printGuarded(n.Test, token.PrecConditional+1, noIn)
		p.w.token("?")
		p.printExpr(n.Consequent, token.PrecAssignment, false)
		p.w.token(":")
		p.printExpr(n.Alternate, token.PrecAssignment, noIn)
		return
	case *ast.UnaryOperator:
		if n.Postfix {
			p.printGuarded(n.Operand, token.PrecPostfix, noIn)
			p.w.token(n.Operator)
			return
		}
	case *ast.Call:
		if !n.IsNew {
			p.printGuarded(n.Callee, token.PrecFieldAccess, false)
			if n.InBrackets {
				p.w.token("[")
				if len(n.Args) > 0 {
					p.printExpr(n.Args[0], token.PrecNone, false)
				}
				p.w.token("]")
			} else {
				p.w.token("(")
				p.printArgs(n.Args)
				p.w.token(")")
			}
			return
		}
	case *ast.Member:
		p.printGuarded(n.Object, token.PrecFieldAccess, false)
		p.w.token(".")
		p.w.token(n.Property)
		return
	}
	p.printExpr(e, minPrec, noIn)
}

func (p *Printer) printFunctionObject(n *ast.FunctionObject) {
	p.w.token("function")
	name := n.Name
	if n.Role == ast.FunctionExpression && p.settings.RemoveFunctionExpressionNames {
		name = ""
	}
	if name != "" {
		p.w.raw(" ")
		p.w.token(name)
	}
	p.w.token("(")
	for i, param := range n.Params {
		if i > 0 {
			p.w.token(",")
		}
		p.w.token(param.Name)
	}
	p.w.token(")")
	wasStrict := p.strict
	p.strict = p.strict || n.StrictMode
	p.printBlock(n.Body)
	p.strict = wasStrict
}

// --- expressions -----------------------------------------------------

func (p *Printer) printExpr(e ast.Expression, minPrec token.Precedence, noIn bool) {
	for {
		if g, ok := e.(*ast.GroupingOperator); ok {
			e = g.Inner
			continue
		}
		break
	}

	prec := exprPrecedence(e)
	if bin, ok := e.(*ast.BinaryOperator); ok && noIn && bin.Operator == "in" {
		p.w.token("(")
		p.printBinaryBody(bin, token.PrecNone, false)
		p.w.token(")")
		return
	}
	if prec < minPrec {
		p.w.token("(")
		p.printExprBody(e, token.PrecNone, noIn)
		p.w.token(")")
		return
	}
	p.printExprBody(e, minPrec, noIn)
}

func exprPrecedence(e ast.Expression) token.Precedence {
	switch n := e.(type) {
	case *ast.BinaryOperator:
		if n.Operator == "," {
			return token.PrecComma
		}
		if prec, ok := token.OperatorPrecedence(n.Operator); ok {
			return prec
		}
		return token.PrecAssignment
	case *ast.Conditional:
		return token.PrecConditional
	case *ast.UnaryOperator:
		if n.Postfix {
			return token.PrecPostfix
		}
		return token.PrecUnary
	case *ast.GroupingOperator:
		return exprPrecedence(n.Inner)
	default:
		return token.PrecFieldAccess
	}
}

// printExprBody emits e's own tokens assuming the caller has already
// decided no enclosing parens are needed around e as a whole.
func (p *Printer) printExprBody(e ast.Expression, minPrec token.Precedence, noIn bool) {
	switch n := e.(type) {
	case *ast.Identifier:
		p.w.token(n.Name)
	case *ast.ThisLiteral:
		p.w.token("this")
	case *ast.ConstantWrapper:
		p.printConstant(n)
	case *ast.RegExpLiteral:
		p.w.token("/" + n.Pattern + "/" + n.Flags)
	case *ast.BinaryOperator:
		p.printBinaryBody(n, minPrec, noIn)
	case *ast.UnaryOperator:
		p.printUnary(n, noIn)
	case *ast.Conditional:
		p.printConditional(n, noIn)
	case *ast.Call:
		p.printCall(n)
	case *ast.Member:
		p.printExpr(n.Object, token.PrecFieldAccess, false)
		p.w.token(".")
		p.w.token(n.Property)
	case *ast.ArrayLiteral:
		p.printArrayLiteral(n)
	case *ast.ObjectLiteral:
		p.printObjectLiteral(n)
	case *ast.ObjectLiteralProperty:
		p.printObjectProperty(n)
	case *ast.GetterSetter:
		p.printGetterSetter(n)
	case *ast.FunctionObject:
		p.printFunctionObject(n)
	case *ast.ASPNetBlock:
		p.w.raw(n.Raw)
	default:
		// unknown expression variant: self-serialize as nothing, matching
		// the statement dispatch's unknown-node policy.
	}
}

func (p *Printer) printConstant(n *ast.ConstantWrapper) {
	switch n.Kind {
	case ast.ConstNumber:
		p.w.token(formatNumber(n.Value, n.MayHaveIssue, p.settings.MinifyCode))
	case ast.ConstString:
		if strings.HasPrefix(n.Raw, "`") {
			p.w.raw(n.Raw) // template literal: opaque passthrough
			return
		}
		p.w.token(formatString(n.Value, p.settings))
	case ast.ConstBoolean:
		p.w.token(n.Value)
	case ast.ConstNull:
		p.w.token("null")
	default:
		p.w.raw(n.Raw)
	}
}

func (p *Printer) printBinaryBody(n *ast.BinaryOperator, minPrec token.Precedence, noIn bool) {
	prec := exprPrecedence(n)
	rightAssoc := token.OperatorIsRightAssociative(n.Operator)
	if n.Operator == "," {
		rightAssoc = false // left-associative list, printed flat
	}

	leftMin, rightMin := prec, prec+1
	if rightAssoc {
		leftMin, rightMin = prec+1, prec
	} else if token.OperatorIsAssociativeForPrinting(n.Operator) {
		rightMin = prec
	}

	p.printExpr(n.Left, leftMin, noIn)
	if n.Operator == "," {
		p.w.token(",")
	} else {
		p.w.token(n.Operator)
	}
	p.printExpr(n.Right, rightMin, noIn)
}

func (p *Printer) printUnary(n *ast.UnaryOperator, noIn bool) {
	if n.Postfix {
		p.printExpr(n.Operand, token.PrecPostfix, false)
		p.w.token(n.Operator)
		return
	}
	p.w.token(n.Operator)
	if isWordOperator(n.Operator) {
		p.w.raw(" ")
	}
	p.printExpr(n.Operand, token.PrecUnary, false)
}

func isWordOperator(op string) bool {
	switch op {
	case "void", "typeof", "delete":
		return true
	}
	return false
}

func (p *Printer) printConditional(n *ast.Conditional, noIn bool) {
	p.printExpr(n.Test, token.PrecConditional+1, noIn)
	p.w.token("?")
	p.printExpr(n.Consequent, token.PrecAssignment, false)
	p.w.token(":")
	p.printExpr(n.Alternate, token.PrecAssignment, noIn)
}

func (p *Printer) printCall(n *ast.Call) {
	if n.InBrackets {
		p.printExpr(n.Callee, token.PrecFieldAccess, false)
		p.w.token("[")
		if len(n.Args) > 0 {
			p.printExpr(n.Args[0], token.PrecNone, false)
		}
		p.w.token("]")
		return
	}
	if n.IsNew {
		p.w.token("new")
		p.w.raw(" ")
		p.printNewCallee(n.Callee)
		p.w.token("(")
		p.printArgs(n.Args)
		p.w.token(")")
		return
	}
	p.printExpr(n.Callee, token.PrecFieldAccess, false)
	p.w.token("(")
	p.printArgs(n.Args)
	p.w.token(")")
}

// printNewCallee prints a `new` expression's callee, forcing parens
// around any nested call so its argument list isn't mistaken for the
// `new` operator's own argument list (spec §8: "new (f())() must not
// lose inner parens").
func (p *Printer) printNewCallee(e ast.Expression) {
	for {
		if g, ok := e.(*ast.GroupingOperator); ok {
			e = g.Inner
			continue
		}
		break
	}
	if containsBareCall(e) {
		p.w.token("(")
		p.printExpr(e, token.PrecNone, false)
		p.w.token(")")
		return
	}
	p.printExpr(e, token.PrecFieldAccess, false)
}

// containsBareCall reports whether e's leftmost member-chain spine
// passes through an unparenthesized Call (spec §4.2 "new"-expression
// argument scoping).
func containsBareCall(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Call:
		if n.InBrackets {
			return containsBareCall(n.Callee)
		}
		return true
	case *ast.Member:
		return containsBareCall(n.Object)
	case *ast.GroupingOperator:
		return false
	default:
		return false
	}
}

func (p *Printer) printArgs(args []ast.Expression) {
	for i, a := range args {
		if i > 0 {
			p.w.token(",")
		}
		p.printExpr(a, token.PrecComma+1, false)
	}
}

func (p *Printer) printArrayLiteral(n *ast.ArrayLiteral) {
	p.w.token("[")
	for i, el := range n.Elements {
		if i > 0 {
			p.w.token(",")
		}
		if el != nil {
			p.printExpr(el, token.PrecComma+1, false)
		}
	}
	p.w.token("]")
}

func (p *Printer) printObjectLiteral(n *ast.ObjectLiteral) {
	p.w.token("{")
	for i, prop := range n.Properties {
		if i > 0 {
			p.w.token(",")
		}
		p.printExprBody(prop, token.PrecNone, false)
	}
	p.w.token("}")
}

func (p *Printer) printObjectProperty(n *ast.ObjectLiteralProperty) {
	p.printPropertyKey(n.Key, n.KeyIsNum, n.KeyIsStr)
	p.w.token(":")
	p.printExpr(n.Value, token.PrecComma+1, false)
}

func (p *Printer) printPropertyKey(key string, isNum, isStr bool) {
	switch {
	case isNum:
		p.w.token(formatNumber(key, false, p.settings.MinifyCode))
	case isStr:
		// key already carries its original quoting (parser captured the
		// raw quoted lexeme); re-emit as-is rather than re-decode, since
		// property keys don't need the full minified-string pipeline.
		p.w.token(key)
	case p.settings.QuoteObjectLiteralProperties || p.needsPropertyKeyQuoting(key):
		p.w.token(formatString(key, p.settings))
	default:
		p.w.token(key)
	}
}

// needsPropertyKeyQuoting reports whether a bare identifier-shaped
// property key must be quoted: spec §4.4 only allows the unquoted form
// "if the name is a valid identifier and not a reserved word in the
// current strict mode".
func (p *Printer) needsPropertyKeyQuoting(key string) bool {
	if !lexer.IsIdentifierName(key) {
		return true
	}
	if lexer.IsKeyword(key) {
		return true
	}
	return p.strict && lexer.IsReservedInStrictMode(key)
}

func (p *Printer) printGetterSetter(n *ast.GetterSetter) {
	if n.IsGetter {
		p.w.token("get")
	} else {
		p.w.token("set")
	}
	p.w.raw(" ")
	p.printPropertyKey(n.Key, false, false)
	p.w.token("(")
	for i, param := range n.Function.Params {
		if i > 0 {
			p.w.token(",")
		}
		p.w.token(param.Name)
	}
	p.w.token(")")
	p.printBlock(n.Function.Body)
}
