package ast

import "github.com/krotik/jsqueeze/source"

// Block holds an ordered list of statements; statement order is
// significant (spec §3). It is used both as a function body and as any
// braced `{ ... }` statement block.
type Block struct {
	base
	Statements []Statement
}

func NewBlock(ctx source.Context, stmts []Statement) *Block {
	b := &Block{base: base{ctx: ctx}, Statements: stmts}
	for _, s := range stmts {
		adopt(b, s)
	}
	return b
}

func (b *Block) statementNode() {}
func (b *Block) Children() []Node {
	out := make([]Node, 0, len(b.Statements))
	for _, s := range b.Statements {
		out = append(out, s)
	}
	return compact(out)
}
func (b *Block) Accept(v Visitor) Node { return v.VisitBlock(b) }

func (b *Block) Equal(other Node) bool {
	o, ok := other.(*Block)
	if !ok || len(o.Statements) != len(b.Statements) {
		return false
	}
	for i := range b.Statements {
		if !b.Statements[i].Equal(o.Statements[i]) {
			return false
		}
	}
	return true
}

// If is an `if (Test) Consequent [else Alternate]` statement.
type If struct {
	base
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if no else branch
}

func NewIf(ctx source.Context, test Expression, cons, alt Statement) *If {
	n := &If{base: base{ctx: ctx}, Test: test, Consequent: cons, Alternate: alt}
	adopt(n, test, cons, alt)
	return n
}

func (n *If) statementNode()        {}
func (n *If) Children() []Node      { return compact([]Node{n.Test, n.Consequent, n.Alternate}) }
func (n *If) Accept(v Visitor) Node { return v.VisitIf(n) }

func (n *If) Equal(other Node) bool {
	o, ok := other.(*If)
	if !ok || !n.Test.Equal(o.Test) || !n.Consequent.Equal(o.Consequent) {
		return false
	}
	if (n.Alternate == nil) != (o.Alternate == nil) {
		return false
	}
	if n.Alternate != nil && !n.Alternate.Equal(o.Alternate) {
		return false
	}
	return true
}

// For is a classic three-clause `for (Init; Test; Update) Body` loop.
// Init may be an Expression, a *Var, or nil.
type For struct {
	base
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func NewFor(ctx source.Context, init Node, test, update Expression, body Statement) *For {
	n := &For{base: base{ctx: ctx}, Init: init, Test: test, Update: update, Body: body}
	adopt(n, init, test, update, body)
	return n
}

func (n *For) statementNode() {}
func (n *For) Children() []Node {
	return compact([]Node{n.Init, n.Test, n.Update, n.Body})
}
func (n *For) Accept(v Visitor) Node { return v.VisitFor(n) }

func (n *For) Equal(other Node) bool {
	o, ok := other.(*For)
	if !ok {
		return false
	}
	if (n.Init == nil) != (o.Init == nil) || (n.Init != nil && !n.Init.Equal(o.Init)) {
		return false
	}
	if (n.Test == nil) != (o.Test == nil) || (n.Test != nil && !n.Test.Equal(o.Test)) {
		return false
	}
	if (n.Update == nil) != (o.Update == nil) || (n.Update != nil && !n.Update.Equal(o.Update)) {
		return false
	}
	return n.Body.Equal(o.Body)
}

// ForIn is `for (Variable in Collection) Body`, also used to model the
// `for...of` extension (spec §4.2); OfLoop distinguishes the two.
type ForIn struct {
	base
	Variable   Node // *Var or Expression (assignment target)
	Collection Expression
	Body       Statement
	OfLoop     bool
}

func NewForIn(ctx source.Context, variable Node, collection Expression, body Statement, ofLoop bool) *ForIn {
	n := &ForIn{base: base{ctx: ctx}, Variable: variable, Collection: collection, Body: body, OfLoop: ofLoop}
	adopt(n, variable, collection, body)
	return n
}

func (n *ForIn) statementNode() {}
func (n *ForIn) Children() []Node {
	return compact([]Node{n.Variable, n.Collection, n.Body})
}
func (n *ForIn) Accept(v Visitor) Node { return v.VisitForIn(n) }

func (n *ForIn) Equal(other Node) bool {
	o, ok := other.(*ForIn)
	return ok && o.OfLoop == n.OfLoop && n.Variable.Equal(o.Variable) &&
		n.Collection.Equal(o.Collection) && n.Body.Equal(o.Body)
}

// While is `while (Test) Body`.
type While struct {
	base
	Test Expression
	Body Statement
}

func NewWhile(ctx source.Context, test Expression, body Statement) *While {
	n := &While{base: base{ctx: ctx}, Test: test, Body: body}
	adopt(n, test, body)
	return n
}

func (n *While) statementNode()        {}
func (n *While) Children() []Node      { return compact([]Node{n.Test, n.Body}) }
func (n *While) Accept(v Visitor) Node { return v.VisitWhile(n) }

func (n *While) Equal(other Node) bool {
	o, ok := other.(*While)
	return ok && n.Test.Equal(o.Test) && n.Body.Equal(o.Body)
}

// DoWhile is `do Body while (Test);`.
type DoWhile struct {
	base
	Body Statement
	Test Expression
}

func NewDoWhile(ctx source.Context, body Statement, test Expression) *DoWhile {
	n := &DoWhile{base: base{ctx: ctx}, Body: body, Test: test}
	adopt(n, body, test)
	return n
}

func (n *DoWhile) statementNode()        {}
func (n *DoWhile) Children() []Node      { return compact([]Node{n.Body, n.Test}) }
func (n *DoWhile) Accept(v Visitor) Node { return v.VisitDoWhile(n) }

func (n *DoWhile) Equal(other Node) bool {
	o, ok := other.(*DoWhile)
	return ok && n.Body.Equal(o.Body) && n.Test.Equal(o.Test)
}

// SwitchCase is one `case Test:` or `default:` arm.
type SwitchCase struct {
	base
	Test       Expression // nil for default
	Statements []Statement
}

func NewSwitchCase(ctx source.Context, test Expression, stmts []Statement) *SwitchCase {
	n := &SwitchCase{base: base{ctx: ctx}, Test: test, Statements: stmts}
	adopt(n, test)
	for _, s := range stmts {
		adopt(n, s)
	}
	return n
}

func (n *SwitchCase) statementNode() {}
func (n *SwitchCase) Children() []Node {
	out := []Node{n.Test}
	for _, s := range n.Statements {
		out = append(out, s)
	}
	return compact(out)
}
func (n *SwitchCase) Accept(v Visitor) Node { return v.VisitSwitchCase(n) }

func (n *SwitchCase) Equal(other Node) bool {
	o, ok := other.(*SwitchCase)
	if !ok || len(o.Statements) != len(n.Statements) {
		return false
	}
	if (n.Test == nil) != (o.Test == nil) || (n.Test != nil && !n.Test.Equal(o.Test)) {
		return false
	}
	for i := range n.Statements {
		if !n.Statements[i].Equal(o.Statements[i]) {
			return false
		}
	}
	return true
}

// Switch is the `switch (Discriminant) { Cases }` statement.
type Switch struct {
	base
	Discriminant Expression
	Cases        []*SwitchCase
}

func NewSwitch(ctx source.Context, disc Expression, cases []*SwitchCase) *Switch {
	n := &Switch{base: base{ctx: ctx}, Discriminant: disc, Cases: cases}
	adopt(n, disc)
	for _, c := range cases {
		adopt(n, c)
	}
	return n
}

func (n *Switch) statementNode() {}
func (n *Switch) Children() []Node {
	out := []Node{n.Discriminant}
	for _, c := range n.Cases {
		out = append(out, c)
	}
	return compact(out)
}
func (n *Switch) Accept(v Visitor) Node { return v.VisitSwitch(n) }

func (n *Switch) Equal(other Node) bool {
	o, ok := other.(*Switch)
	if !ok || !n.Discriminant.Equal(o.Discriminant) || len(o.Cases) != len(n.Cases) {
		return false
	}
	for i := range n.Cases {
		if !n.Cases[i].Equal(o.Cases[i]) {
			return false
		}
	}
	return true
}

// Try is `try Block [catch (Param) Handler] [finally Finalizer]`.
type Try struct {
	base
	Block      *Block
	CatchParam string // empty if no catch clause
	HasCatch   bool
	Handler    *Block
	Finalizer  *Block // nil if no finally clause
}

func NewTry(ctx source.Context, block *Block, hasCatch bool, catchParam string, handler, finalizer *Block) *Try {
	n := &Try{base: base{ctx: ctx}, Block: block, HasCatch: hasCatch, CatchParam: catchParam, Handler: handler, Finalizer: finalizer}
	adopt(n, block, handler, finalizer)
	return n
}

func (n *Try) statementNode() {}
func (n *Try) Children() []Node {
	return compact([]Node{n.Block, n.Handler, n.Finalizer})
}
func (n *Try) Accept(v Visitor) Node { return v.VisitTry(n) }

func (n *Try) Equal(other Node) bool {
	o, ok := other.(*Try)
	if !ok || !n.Block.Equal(o.Block) || n.HasCatch != o.HasCatch {
		return false
	}
	if n.HasCatch && (n.CatchParam != o.CatchParam || !n.Handler.Equal(o.Handler)) {
		return false
	}
	if (n.Finalizer == nil) != (o.Finalizer == nil) {
		return false
	}
	if n.Finalizer != nil && !n.Finalizer.Equal(o.Finalizer) {
		return false
	}
	return true
}

// Throw is `throw Argument;`.
type Throw struct {
	base
	Argument Expression
}

func NewThrow(ctx source.Context, arg Expression) *Throw {
	n := &Throw{base: base{ctx: ctx}, Argument: arg}
	adopt(n, arg)
	return n
}

func (n *Throw) statementNode()        {}
func (n *Throw) Children() []Node      { return compact([]Node{n.Argument}) }
func (n *Throw) Accept(v Visitor) Node { return v.VisitThrow(n) }
func (n *Throw) Equal(other Node) bool {
	o, ok := other.(*Throw)
	return ok && n.Argument.Equal(o.Argument)
}

// Return is `return [Argument];`. Argument is nil when ASI terminates
// the statement before an operand is consumed (spec §4.2).
type Return struct {
	base
	Argument Expression
}

func NewReturn(ctx source.Context, arg Expression) *Return {
	n := &Return{base: base{ctx: ctx}, Argument: arg}
	adopt(n, arg)
	return n
}

func (n *Return) statementNode()        {}
func (n *Return) Children() []Node      { return compact([]Node{n.Argument}) }
func (n *Return) Accept(v Visitor) Node { return v.VisitReturn(n) }
func (n *Return) Equal(other Node) bool {
	o, ok := other.(*Return)
	if !ok || (n.Argument == nil) != (o.Argument == nil) {
		return false
	}
	return n.Argument == nil || n.Argument.Equal(o.Argument)
}

// Break is `break [Label];`.
type Break struct {
	base
	Label string
}

func NewBreak(ctx source.Context, label string) *Break {
	return &Break{base: base{ctx: ctx}, Label: label}
}

func (n *Break) statementNode()        {}
func (n *Break) Children() []Node      { return nil }
func (n *Break) Accept(v Visitor) Node { return v.VisitBreak(n) }
func (n *Break) Equal(other Node) bool {
	o, ok := other.(*Break)
	return ok && o.Label == n.Label
}

// Continue is `continue [Label];`.
type Continue struct {
	base
	Label string
}

func NewContinue(ctx source.Context, label string) *Continue {
	return &Continue{base: base{ctx: ctx}, Label: label}
}

func (n *Continue) statementNode()        {}
func (n *Continue) Children() []Node      { return nil }
func (n *Continue) Accept(v Visitor) Node { return v.VisitContinue(n) }
func (n *Continue) Equal(other Node) bool {
	o, ok := other.(*Continue)
	return ok && o.Label == n.Label
}

// With is `with (Object) Body`.
type With struct {
	base
	Object Expression
	Body   Statement
}

func NewWith(ctx source.Context, object Expression, body Statement) *With {
	n := &With{base: base{ctx: ctx}, Object: object, Body: body}
	adopt(n, object, body)
	return n
}

func (n *With) statementNode()        {}
func (n *With) Children() []Node      { return compact([]Node{n.Object, n.Body}) }
func (n *With) Accept(v Visitor) Node { return v.VisitWith(n) }
func (n *With) Equal(other Node) bool {
	o, ok := other.(*With)
	return ok && n.Object.Equal(o.Object) && n.Body.Equal(o.Body)
}

// Labeled is `Label: Body`.
type Labeled struct {
	base
	Label string
	Body  Statement
}

func NewLabeled(ctx source.Context, label string, body Statement) *Labeled {
	n := &Labeled{base: base{ctx: ctx}, Label: label, Body: body}
	adopt(n, body)
	return n
}

func (n *Labeled) statementNode()        {}
func (n *Labeled) Children() []Node      { return compact([]Node{n.Body}) }
func (n *Labeled) Accept(v Visitor) Node { return v.VisitLabeled(n) }
func (n *Labeled) Equal(other Node) bool {
	o, ok := other.(*Labeled)
	return ok && o.Label == n.Label && n.Body.Equal(o.Body)
}

// Debugger is the `debugger;` statement.
type Debugger struct{ base }

func NewDebugger(ctx source.Context) *Debugger { return &Debugger{base{ctx: ctx}} }

func (n *Debugger) statementNode()        {}
func (n *Debugger) Children() []Node      { return nil }
func (n *Debugger) Accept(v Visitor) Node { return v.VisitDebugger(n) }
func (n *Debugger) Equal(other Node) bool { _, ok := other.(*Debugger); return ok }

// Empty is the `;` empty statement.
type Empty struct{ base }

func NewEmpty(ctx source.Context) *Empty { return &Empty{base{ctx: ctx}} }

func (n *Empty) statementNode()        {}
func (n *Empty) Children() []Node      { return nil }
func (n *Empty) Accept(v Visitor) Node { return v.VisitEmpty(n) }
func (n *Empty) Equal(other Node) bool { _, ok := other.(*Empty); return ok }

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	base
	Expr Expression
}

func NewExpressionStatement(ctx source.Context, expr Expression) *ExpressionStatement {
	n := &ExpressionStatement{base: base{ctx: ctx}, Expr: expr}
	adopt(n, expr)
	return n
}

func (n *ExpressionStatement) statementNode()        {}
func (n *ExpressionStatement) Children() []Node      { return compact([]Node{n.Expr}) }
func (n *ExpressionStatement) Accept(v Visitor) Node { return v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) Equal(other Node) bool {
	o, ok := other.(*ExpressionStatement)
	return ok && n.Expr.Equal(o.Expr)
}

// DirectivePrologue re-tags a leading string-literal expression
// statement of a program or function body (spec §4.2). Value is the
// decoded string; "use strict" sets the enclosing scope's strict flag.
type DirectivePrologue struct {
	base
	Value string
}

func NewDirectivePrologue(ctx source.Context, value string) *DirectivePrologue {
	return &DirectivePrologue{base: base{ctx: ctx}, Value: value}
}

func (n *DirectivePrologue) statementNode()        {}
func (n *DirectivePrologue) Children() []Node      { return nil }
func (n *DirectivePrologue) Accept(v Visitor) Node { return v.VisitDirectivePrologue(n) }
func (n *DirectivePrologue) Equal(other Node) bool {
	o, ok := other.(*DirectivePrologue)
	return ok && o.Value == n.Value
}

// ImportantComment is a pseudo-statement carrying a preserved comment
// (spec §4.1 "important comments", §4.2).
type ImportantComment struct {
	base
	Text string
}

func NewImportantComment(ctx source.Context, text string) *ImportantComment {
	return &ImportantComment{base: base{ctx: ctx}, Text: text}
}

func (n *ImportantComment) statementNode()        {}
func (n *ImportantComment) Children() []Node      { return nil }
func (n *ImportantComment) Accept(v Visitor) Node { return v.VisitImportantComment(n) }
func (n *ImportantComment) Equal(other Node) bool {
	o, ok := other.(*ImportantComment)
	return ok && o.Text == n.Text
}

// ConditionalCompilation is the `/*@cc_on ... @*/` family, preserved
// structurally with semantics left unspecified (spec §1, §9).
type ConditionalCompilation struct {
	base
	Directive string // "cc_on", "set", "if", "elif", "else", "end"
	Raw       string
}

func NewConditionalCompilation(ctx source.Context, directive, raw string) *ConditionalCompilation {
	return &ConditionalCompilation{base: base{ctx: ctx}, Directive: directive, Raw: raw}
}

func (n *ConditionalCompilation) statementNode()        {}
func (n *ConditionalCompilation) Children() []Node      { return nil }
func (n *ConditionalCompilation) Accept(v Visitor) Node { return v.VisitConditionalCompilation(n) }
func (n *ConditionalCompilation) Equal(other Node) bool {
	o, ok := other.(*ConditionalCompilation)
	return ok && o.Directive == n.Directive && o.Raw == n.Raw
}

// ASPNetBlock is an embedded `<% ... %>` block treated as an opaque
// expression escape hatch (spec §1, §4.2).
type ASPNetBlock struct {
	base
	Raw string
}

func NewASPNetBlock(ctx source.Context, raw string) *ASPNetBlock {
	return &ASPNetBlock{base: base{ctx: ctx}, Raw: raw}
}

func (n *ASPNetBlock) expressionNode()                  {}
func (n *ASPNetBlock) Children() []Node                 { return nil }
func (n *ASPNetBlock) Accept(v Visitor) Node            { return v.VisitASPNetBlock(n) }
func (n *ASPNetBlock) FindPrimitiveType() PrimitiveType { return TypeOther }
func (n *ASPNetBlock) Equal(other Node) bool {
	o, ok := other.(*ASPNetBlock)
	return ok && o.Raw == n.Raw
}
