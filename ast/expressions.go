package ast

import "github.com/krotik/jsqueeze/source"

// BinaryOperator represents a binary operation, including the comma
// operator (spec §3: "the sole place where a sequence of expressions is
// represented at binary level"). Operator is the operator's raw lexeme
// (e.g. "+", "&&", ",").
type BinaryOperator struct {
	base
	Operator string
	Left     Expression
	Right    Expression
	NoIn     bool // true while printed inside a for-init no-in context
}

func NewBinaryOperator(ctx source.Context, op string, left, right Expression) *BinaryOperator {
	b := &BinaryOperator{base: base{ctx: ctx}, Operator: op, Left: left, Right: right}
	adopt(b, left, right)
	return b
}

func (b *BinaryOperator) expressionNode()       {}
func (b *BinaryOperator) Children() []Node      { return compact([]Node{b.Left, b.Right}) }
func (b *BinaryOperator) Accept(v Visitor) Node { return v.VisitBinaryOperator(b) }

// FindPrimitiveType implements spec §4.3's binary-operator rules.
func (b *BinaryOperator) FindPrimitiveType() PrimitiveType {
	switch b.Operator {
	case ",":
		return b.Right.FindPrimitiveType()
	case "=", "+=", "-=", "*=", "/=", "%=", "<<=", ">>=", ">>>=", "&=", "|=", "^=":
		return b.Right.FindPrimitiveType()
	case "==", "!=", "===", "!==", "<", ">", "<=", ">=", "in", "instanceof":
		return TypeBoolean
	case "&", "|", "^", "<<", ">>", ">>>", "-", "*", "/", "%":
		return TypeNumber
	case "+":
		lt, rt := b.Left.FindPrimitiveType(), b.Right.FindPrimitiveType()
		if lt == TypeString || rt == TypeString {
			return TypeString
		}
		if lt != TypeOther && rt != TypeOther {
			return TypeNumber
		}
		return TypeOther
	case "&&", "||":
		lt, rt := b.Left.FindPrimitiveType(), b.Right.FindPrimitiveType()
		if lt == rt {
			return lt
		}
		return TypeOther
	}
	return TypeOther
}

func (b *BinaryOperator) Equal(other Node) bool {
	o, ok := other.(*BinaryOperator)
	return ok && o.Operator == b.Operator && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// LeftHandSide returns the leftmost sub-expression of the rightmost
// operand for a comma chain (spec §3); for any other node it is the
// node itself. It is a free function, not a Node method, since only
// BinaryOperator(",") has non-trivial behavior.
func LeftHandSide(e Expression) Expression {
	b, ok := e.(*BinaryOperator)
	if !ok || b.Operator != "," {
		return e
	}
	return LeftHandSide(b.Right)
}

// UnaryOperator represents a prefix or postfix unary operation.
type UnaryOperator struct {
	base
	Operator string
	Operand  Expression
	Postfix  bool
}

func NewUnaryOperator(ctx source.Context, op string, operand Expression, postfix bool) *UnaryOperator {
	u := &UnaryOperator{base: base{ctx: ctx}, Operator: op, Operand: operand, Postfix: postfix}
	adopt(u, operand)
	return u
}

func (u *UnaryOperator) expressionNode()       {}
func (u *UnaryOperator) Children() []Node      { return compact([]Node{u.Operand}) }
func (u *UnaryOperator) Accept(v Visitor) Node { return v.VisitUnaryOperator(u) }

func (u *UnaryOperator) FindPrimitiveType() PrimitiveType {
	switch u.Operator {
	case "typeof":
		return TypeString
	case "!":
		return TypeBoolean
	case "void", "delete":
		return TypeOther
	default:
		return TypeNumber
	}
}

func (u *UnaryOperator) Equal(other Node) bool {
	o, ok := other.(*UnaryOperator)
	return ok && o.Operator == u.Operator && o.Postfix == u.Postfix && u.Operand.Equal(o.Operand)
}

// Conditional is the ternary `a ? b : c` expression.
type Conditional struct {
	base
	Test, Consequent, Alternate Expression
}

func NewConditional(ctx source.Context, test, cons, alt Expression) *Conditional {
	c := &Conditional{base: base{ctx: ctx}, Test: test, Consequent: cons, Alternate: alt}
	adopt(c, test, cons, alt)
	return c
}

func (c *Conditional) expressionNode() {}
func (c *Conditional) Children() []Node {
	return compact([]Node{c.Test, c.Consequent, c.Alternate})
}
func (c *Conditional) Accept(v Visitor) Node { return v.VisitConditional(c) }

func (c *Conditional) FindPrimitiveType() PrimitiveType {
	ct, at := c.Consequent.FindPrimitiveType(), c.Alternate.FindPrimitiveType()
	if ct == at {
		return ct
	}
	return TypeOther
}

func (c *Conditional) Equal(other Node) bool {
	o, ok := other.(*Conditional)
	return ok && c.Test.Equal(o.Test) && c.Consequent.Equal(o.Consequent) && c.Alternate.Equal(o.Alternate)
}

// GroupingOperator is a parenthesized expression as written by the
// source; the parser keeps it distinct from its inner expression so the
// printer's precedence logic (spec §4.4) can decide independently
// whether parens are still needed on output.
type GroupingOperator struct {
	base
	Inner Expression
}

func NewGroupingOperator(ctx source.Context, inner Expression) *GroupingOperator {
	g := &GroupingOperator{base: base{ctx: ctx}, Inner: inner}
	adopt(g, inner)
	return g
}

func (g *GroupingOperator) expressionNode()                  {}
func (g *GroupingOperator) Children() []Node                 { return compact([]Node{g.Inner}) }
func (g *GroupingOperator) Accept(v Visitor) Node            { return v.VisitGroupingOperator(g) }
func (g *GroupingOperator) FindPrimitiveType() PrimitiveType { return g.Inner.FindPrimitiveType() }
func (g *GroupingOperator) Equal(other Node) bool {
	o, ok := other.(*GroupingOperator)
	return ok && g.Inner.Equal(o.Inner)
}

// Call represents a call, a `new` expression, or a computed member
// access normalized to a single-argument bracketed call (spec §4.2
// "Member/Call": "[e] is modelled as a call with InBrackets=true").
type Call struct {
	base
	Callee     Expression
	Args       []Expression
	IsNew      bool
	InBrackets bool // computed member access: Callee[Args[0]]
}

func NewCall(ctx source.Context, callee Expression, args []Expression, isNew, inBrackets bool) *Call {
	c := &Call{base: base{ctx: ctx}, Callee: callee, Args: args, IsNew: isNew, InBrackets: inBrackets}
	adopt(c, callee)
	for _, a := range args {
		adopt(c, a)
	}
	return c
}

func (c *Call) expressionNode() {}
func (c *Call) Children() []Node {
	out := make([]Node, 0, len(c.Args)+1)
	out = append(out, c.Callee)
	for _, a := range c.Args {
		out = append(out, a)
	}
	return compact(out)
}
func (c *Call) Accept(v Visitor) Node                { return v.VisitCall(c) }
func (c *Call) FindPrimitiveType() PrimitiveType     { return TypeOther }

func (c *Call) Equal(other Node) bool {
	o, ok := other.(*Call)
	if !ok || o.IsNew != c.IsNew || o.InBrackets != c.InBrackets || len(o.Args) != len(c.Args) {
		return false
	}
	if !c.Callee.Equal(o.Callee) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Member represents a `.identifier` static property access.
type Member struct {
	base
	Object   Expression
	Property string
}

func NewMember(ctx source.Context, object Expression, property string) *Member {
	m := &Member{base: base{ctx: ctx}, Object: object, Property: property}
	adopt(m, object)
	return m
}

func (m *Member) expressionNode()                  {}
func (m *Member) Children() []Node                 { return compact([]Node{m.Object}) }
func (m *Member) Accept(v Visitor) Node            { return v.VisitMember(m) }
func (m *Member) FindPrimitiveType() PrimitiveType { return TypeOther }

func (m *Member) Equal(other Node) bool {
	o, ok := other.(*Member)
	return ok && o.Property == m.Property && m.Object.Equal(o.Object)
}

// ArrayLiteral is `[a, b, c]`; elements may contain nil for elisions
// (`[1,,3]`).
type ArrayLiteral struct {
	base
	Elements []Expression
}

func NewArrayLiteral(ctx source.Context, elements []Expression) *ArrayLiteral {
	a := &ArrayLiteral{base: base{ctx: ctx}, Elements: elements}
	for _, e := range elements {
		adopt(a, e)
	}
	return a
}

func (a *ArrayLiteral) expressionNode() {}
func (a *ArrayLiteral) Children() []Node {
	out := make([]Node, 0, len(a.Elements))
	for _, e := range a.Elements {
		out = append(out, e)
	}
	return compact(out)
}
func (a *ArrayLiteral) Accept(v Visitor) Node            { return v.VisitArrayLiteral(a) }
func (a *ArrayLiteral) FindPrimitiveType() PrimitiveType { return TypeOther }

func (a *ArrayLiteral) Equal(other Node) bool {
	o, ok := other.(*ArrayLiteral)
	if !ok || len(o.Elements) != len(a.Elements) {
		return false
	}
	for i := range a.Elements {
		if a.Elements[i] == nil || o.Elements[i] == nil {
			if a.Elements[i] != o.Elements[i] {
				return false
			}
			continue
		}
		if !a.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// ObjectLiteralProperty is one `key: value` pair of an ObjectLiteral.
type ObjectLiteralProperty struct {
	base
	Key      string // raw source text of the key (identifier, string, or number)
	KeyIsNum bool
	KeyIsStr bool
	Value    Expression
}

func NewObjectLiteralProperty(ctx source.Context, key string, keyIsNum, keyIsStr bool, value Expression) *ObjectLiteralProperty {
	p := &ObjectLiteralProperty{base: base{ctx: ctx}, Key: key, KeyIsNum: keyIsNum, KeyIsStr: keyIsStr, Value: value}
	adopt(p, value)
	return p
}

func (p *ObjectLiteralProperty) expressionNode()                  {}
func (p *ObjectLiteralProperty) Children() []Node                 { return compact([]Node{p.Value}) }
func (p *ObjectLiteralProperty) Accept(v Visitor) Node            { return v.VisitObjectLiteralProperty(p) }
func (p *ObjectLiteralProperty) FindPrimitiveType() PrimitiveType { return TypeOther }

func (p *ObjectLiteralProperty) Equal(other Node) bool {
	o, ok := other.(*ObjectLiteralProperty)
	return ok && o.Key == p.Key && p.Value.Equal(o.Value)
}

// GetterSetter is a `get`/`set` accessor property.
type GetterSetter struct {
	base
	Key      string
	IsGetter bool
	Function *FunctionObject
}

func NewGetterSetter(ctx source.Context, key string, isGetter bool, fn *FunctionObject) *GetterSetter {
	g := &GetterSetter{base: base{ctx: ctx}, Key: key, IsGetter: isGetter, Function: fn}
	adopt(g, fn)
	return g
}

func (g *GetterSetter) expressionNode()                  {}
func (g *GetterSetter) Children() []Node                 { return compact([]Node{g.Function}) }
func (g *GetterSetter) Accept(v Visitor) Node            { return v.VisitGetterSetter(g) }
func (g *GetterSetter) FindPrimitiveType() PrimitiveType { return TypeOther }

func (g *GetterSetter) Equal(other Node) bool {
	o, ok := other.(*GetterSetter)
	return ok && o.Key == g.Key && o.IsGetter == g.IsGetter && g.Function.Equal(o.Function)
}

// ObjectLiteral is `{ ... }` in expression position.
type ObjectLiteral struct {
	base
	Properties []Expression // *ObjectLiteralProperty or *GetterSetter
}

func NewObjectLiteral(ctx source.Context, props []Expression) *ObjectLiteral {
	o := &ObjectLiteral{base: base{ctx: ctx}, Properties: props}
	for _, p := range props {
		adopt(o, p)
	}
	return o
}

func (o *ObjectLiteral) expressionNode() {}
func (o *ObjectLiteral) Children() []Node {
	out := make([]Node, 0, len(o.Properties))
	for _, p := range o.Properties {
		out = append(out, p)
	}
	return compact(out)
}
func (o *ObjectLiteral) Accept(v Visitor) Node            { return v.VisitObjectLiteral(o) }
func (o *ObjectLiteral) FindPrimitiveType() PrimitiveType { return TypeOther }

func (o *ObjectLiteral) Equal(other Node) bool {
	p, ok := other.(*ObjectLiteral)
	if !ok || len(p.Properties) != len(o.Properties) {
		return false
	}
	for i := range o.Properties {
		if !o.Properties[i].Equal(p.Properties[i]) {
			return false
		}
	}
	return true
}

// AstNodeList is the unbounded fan-out container for call arguments,
// array/object literal members, parameter lists, and comma-expression
// lists that the parser chooses to keep as an explicit list rather than
// a right-nested BinaryOperator chain (spec §3).
type AstNodeList struct {
	base
	Items []Node
}

func NewAstNodeList(ctx source.Context, items []Node) *AstNodeList {
	l := &AstNodeList{base: base{ctx: ctx}, Items: items}
	for _, it := range items {
		adopt(l, it)
	}
	return l
}

func (l *AstNodeList) Children() []Node      { return compact(append([]Node(nil), l.Items...)) }
func (l *AstNodeList) Accept(v Visitor) Node { return v.VisitAstNodeList(l) }

func (l *AstNodeList) Equal(other Node) bool {
	o, ok := other.(*AstNodeList)
	if !ok || len(o.Items) != len(l.Items) {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}
