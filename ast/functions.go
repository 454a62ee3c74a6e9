package ast

import "github.com/krotik/jsqueeze/source"

// VariableDeclaration is a single `name [= init]` binding within a
// `Var` or `LexicalDeclaration` statement (spec §3).
type VariableDeclaration struct {
	base
	Name string
	Init Expression // nil if uninitialized
}

func NewVariableDeclaration(ctx source.Context, name string, init Expression) *VariableDeclaration {
	n := &VariableDeclaration{base: base{ctx: ctx}, Name: name, Init: init}
	adopt(n, init)
	return n
}

func (n *VariableDeclaration) statementNode()        {}
func (n *VariableDeclaration) Children() []Node      { return compact([]Node{n.Init}) }
func (n *VariableDeclaration) Accept(v Visitor) Node { return v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) Equal(other Node) bool {
	o, ok := other.(*VariableDeclaration)
	if !ok || o.Name != n.Name || (n.Init == nil) != (o.Init == nil) {
		return false
	}
	return n.Init == nil || n.Init.Equal(o.Init)
}

// Var is a `var` declaration statement holding one or more
// VariableDeclarations (spec §3).
type Var struct {
	base
	Declarations []*VariableDeclaration
}

func NewVar(ctx source.Context, decls []*VariableDeclaration) *Var {
	n := &Var{base: base{ctx: ctx}, Declarations: decls}
	for _, d := range decls {
		adopt(n, d)
	}
	return n
}

func (n *Var) statementNode() {}
func (n *Var) Children() []Node {
	out := make([]Node, 0, len(n.Declarations))
	for _, d := range n.Declarations {
		out = append(out, d)
	}
	return compact(out)
}
func (n *Var) Accept(v Visitor) Node { return v.VisitVar(n) }

func (n *Var) Equal(other Node) bool {
	o, ok := other.(*Var)
	if !ok || len(o.Declarations) != len(n.Declarations) {
		return false
	}
	for i := range n.Declarations {
		if !n.Declarations[i].Equal(o.Declarations[i]) {
			return false
		}
	}
	return true
}

// LexicalDeclaration is `let`/`const` (spec §4.2's ES5 extensions).
// MozillaConst marks a legacy `const` form selected by the
// `const_statements_mozilla` setting.
type LexicalDeclaration struct {
	base
	IsConst      bool
	Declarations []*VariableDeclaration
	MozillaConst bool
}

func NewLexicalDeclaration(ctx source.Context, isConst bool, decls []*VariableDeclaration, mozilla bool) *LexicalDeclaration {
	n := &LexicalDeclaration{base: base{ctx: ctx}, IsConst: isConst, Declarations: decls, MozillaConst: mozilla}
	for _, d := range decls {
		adopt(n, d)
	}
	return n
}

func (n *LexicalDeclaration) statementNode() {}
func (n *LexicalDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Declarations))
	for _, d := range n.Declarations {
		out = append(out, d)
	}
	return compact(out)
}
func (n *LexicalDeclaration) Accept(v Visitor) Node { return v.VisitLexicalDeclaration(n) }

func (n *LexicalDeclaration) Equal(other Node) bool {
	o, ok := other.(*LexicalDeclaration)
	if !ok || o.IsConst != n.IsConst || len(o.Declarations) != len(n.Declarations) {
		return false
	}
	for i := range n.Declarations {
		if !n.Declarations[i].Equal(o.Declarations[i]) {
			return false
		}
	}
	return true
}

// FunctionRole distinguishes the four legal contexts a FunctionObject
// may appear in (spec §3: "only declarations may legally lack enclosing
// parentheses at statement start").
type FunctionRole int

const (
	FunctionDeclaration FunctionRole = iota
	FunctionExpression
	FunctionGetter
	FunctionSetter
)

// ParameterDeclaration is one formal parameter name.
type ParameterDeclaration struct {
	base
	Name string
}

func NewParameterDeclaration(ctx source.Context, name string) *ParameterDeclaration {
	return &ParameterDeclaration{base: base{ctx: ctx}, Name: name}
}

func (p *ParameterDeclaration) Children() []Node      { return nil }
func (p *ParameterDeclaration) Accept(v Visitor) Node { return v.VisitParameterDeclaration(p) }
func (p *ParameterDeclaration) Equal(other Node) bool {
	o, ok := other.(*ParameterDeclaration)
	return ok && o.Name == p.Name
}

// FunctionObject models a function declaration, function expression, or
// getter/setter body (spec §3's `FunctionObject` variant).
type FunctionObject struct {
	base
	Role       FunctionRole
	Name       string // empty for anonymous function expressions
	Params     []*ParameterDeclaration
	Body       *Block
	StrictMode bool // set by a "use strict" directive prologue in Body
}

func NewFunctionObject(ctx source.Context, role FunctionRole, name string, params []*ParameterDeclaration, body *Block) *FunctionObject {
	n := &FunctionObject{base: base{ctx: ctx}, Role: role, Name: name, Params: params, Body: body}
	adopt(n, body)
	return n
}

func (n *FunctionObject) expressionNode() {} // satisfies both Expression and Statement
func (n *FunctionObject) statementNode()  {}
func (n *FunctionObject) Children() []Node {
	out := make([]Node, 0, len(n.Params)+1)
	for _, p := range n.Params {
		out = append(out, p)
	}
	out = append(out, n.Body)
	return compact(out)
}
func (n *FunctionObject) Accept(v Visitor) Node            { return v.VisitFunctionObject(n) }
func (n *FunctionObject) FindPrimitiveType() PrimitiveType { return TypeOther }

func (n *FunctionObject) Equal(other Node) bool {
	o, ok := other.(*FunctionObject)
	if !ok || o.Role != n.Role || o.Name != n.Name || len(o.Params) != len(n.Params) {
		return false
	}
	for i := range n.Params {
		if !n.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	return n.Body.Equal(o.Body)
}
