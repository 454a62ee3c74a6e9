// Package ast defines the typed abstract syntax tree produced by the
// parser: tagged variants for every statement and expression (spec §3),
// a Visitor double-dispatch contract (spec §4.3), structural equality,
// and primitive-type inference.
//
// Grounded on the teacher's own top-level ast package (a DWScript AST
// with a Node{TokenLiteral,String} interface and concrete literal/
// binary/unary/block structs); generalized here for the JS grammar and
// extended with Accept(Visitor), Parent/Children, and Equal, which the
// teacher doesn't need (DWScript's semantic pass walks its own AST
// directly) but this spec requires as the sole external extension point
// for optimizer passes (spec §1 non-goal, §4.3).
package ast

import "github.com/krotik/jsqueeze/source"

// PrimitiveType is the result of FindPrimitiveType (spec §4.3).
type PrimitiveType int

const (
	TypeOther PrimitiveType = iota
	TypeNumber
	TypeString
	TypeBoolean
	TypeNull
)

// Node is implemented by every AST variant.
type Node interface {
	Context() source.Context
	Parent() Node
	SetParent(Node)
	Children() []Node
	Accept(v Visitor) Node
	Equal(other Node) bool
}

// Expression is implemented by every expression-position node.
type Expression interface {
	Node
	FindPrimitiveType() PrimitiveType
	expressionNode()
}

// Statement is implemented by every statement-position node.
type Statement interface {
	Node
	statementNode()
}

// base embeds the bookkeeping shared by every concrete node: the
// defining Context and the non-owning parent handle (spec §9: a
// non-owning handle for parent, strong ownership for children).
type base struct {
	ctx    source.Context
	parent Node
}

func (b *base) Context() source.Context { return b.ctx }
func (b *base) Parent() Node            { return b.parent }
func (b *base) SetParent(p Node)        { b.parent = p }

// adopt sets the parent back-link of each non-nil child to owner. Used
// by constructors building a fresh subtree.
func adopt(owner Node, children ...Node) {
	for _, c := range children {
		if c != nil {
			c.SetParent(owner)
		}
	}
}

// SetChild reparents new onto slot's owner, first clearing old's parent
// handle if it still points at owner — the API the spec's design notes
// recommend in place of a reparenting property setter (spec §9).
func SetChild(owner Node, old, new Node) {
	if old != nil && old.Parent() == owner {
		old.SetParent(nil)
	}
	if new != nil {
		new.SetParent(owner)
	}
}

func compact(nodes []Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Program is the root node: an ordered list of source elements
// (statements and function declarations), matching §4.2 Program mode.
type Program struct {
	base
	Body []Statement
}

// NewProgram builds a Program whose statements' parents are set to it.
func NewProgram(ctx source.Context, body []Statement) *Program {
	p := &Program{base: base{ctx: ctx}, Body: body}
	for _, s := range body {
		adopt(p, s)
	}
	return p
}

func (p *Program) Children() []Node {
	out := make([]Node, 0, len(p.Body))
	for _, s := range p.Body {
		out = append(out, s)
	}
	return compact(out)
}

func (p *Program) Accept(v Visitor) Node { return v.VisitProgram(p) }

func (p *Program) Equal(other Node) bool {
	o, ok := other.(*Program)
	if !ok || len(o.Body) != len(p.Body) {
		return false
	}
	for i := range p.Body {
		if !p.Body[i].Equal(o.Body[i]) {
			return false
		}
	}
	return true
}

// Identifier is a `Lookup`-position or binding-position name reference.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(ctx source.Context, name string) *Identifier {
	return &Identifier{base: base{ctx: ctx}, Name: name}
}

func (i *Identifier) expressionNode()                      {}
func (i *Identifier) Children() []Node                     { return nil }
func (i *Identifier) Accept(v Visitor) Node                { return v.VisitIdentifier(i) }
func (i *Identifier) FindPrimitiveType() PrimitiveType     { return TypeOther }
func (i *Identifier) Equal(other Node) bool {
	o, ok := other.(*Identifier)
	return ok && o.Name == i.Name
}

// ThisLiteral is the `this` keyword in expression position.
type ThisLiteral struct{ base }

func NewThisLiteral(ctx source.Context) *ThisLiteral { return &ThisLiteral{base{ctx: ctx}} }

func (t *ThisLiteral) expressionNode()                  {}
func (t *ThisLiteral) Children() []Node                 { return nil }
func (t *ThisLiteral) Accept(v Visitor) Node            { return v.VisitThisLiteral(t) }
func (t *ThisLiteral) FindPrimitiveType() PrimitiveType { return TypeOther }
func (t *ThisLiteral) Equal(other Node) bool            { _, ok := other.(*ThisLiteral); return ok }

// ConstantWrapper is a numeric, string, boolean, null, or regex literal.
// Kind distinguishes which; Raw preserves the original lexeme and Value
// holds the decoded form (spec §3 "ConstantWrapper", §4.4 numeric/string
// minification needs both).
type ConstantWrapper struct {
	base
	Kind         ConstantKind
	Raw          string
	Value        string
	MayHaveIssue bool
}

// ConstantKind enumerates the primitive literal kinds a ConstantWrapper
// may hold.
type ConstantKind int

const (
	ConstNumber ConstantKind = iota
	ConstString
	ConstBoolean
	ConstNull
	ConstRegex
)

func NewConstantWrapper(ctx source.Context, kind ConstantKind, raw, value string, mayHaveIssue bool) *ConstantWrapper {
	return &ConstantWrapper{base: base{ctx: ctx}, Kind: kind, Raw: raw, Value: value, MayHaveIssue: mayHaveIssue}
}

func (c *ConstantWrapper) expressionNode()   {}
func (c *ConstantWrapper) Children() []Node  { return nil }
func (c *ConstantWrapper) Accept(v Visitor) Node { return v.VisitConstantWrapper(c) }

func (c *ConstantWrapper) FindPrimitiveType() PrimitiveType {
	switch c.Kind {
	case ConstNumber:
		return TypeNumber
	case ConstString, ConstRegex:
		return TypeString
	case ConstBoolean:
		return TypeBoolean
	case ConstNull:
		return TypeNull
	}
	return TypeOther
}

func (c *ConstantWrapper) Equal(other Node) bool {
	o, ok := other.(*ConstantWrapper)
	return ok && o.Kind == c.Kind && o.Value == c.Value
}

// RegExpLiteral is a `/pattern/flags` literal, kept distinct from
// ConstantWrapper so the printer can special-case flag emission without
// disturbing the generic constant path (spec §3).
type RegExpLiteral struct {
	base
	Pattern string
	Flags   string
}

func NewRegExpLiteral(ctx source.Context, pattern, flags string) *RegExpLiteral {
	return &RegExpLiteral{base: base{ctx: ctx}, Pattern: pattern, Flags: flags}
}

func (r *RegExpLiteral) expressionNode()                  {}
func (r *RegExpLiteral) Children() []Node                 { return nil }
func (r *RegExpLiteral) Accept(v Visitor) Node            { return v.VisitRegExpLiteral(r) }
func (r *RegExpLiteral) FindPrimitiveType() PrimitiveType { return TypeOther }

func (r *RegExpLiteral) Equal(other Node) bool {
	o, ok := other.(*RegExpLiteral)
	return ok && o.Pattern == r.Pattern && o.Flags == r.Flags
}
