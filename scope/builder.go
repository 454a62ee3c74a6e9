package scope

import (
	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/source"
)

// Tree is the finished scope tree plus the node→scope associations the
// parser recorded as it built it (spec §2 "populated during parse").
type Tree struct {
	Root   *Scope
	byNode map[ast.Node]*Scope
}

// ScopeOf returns the scope bound to n, if any (e.g. a Block, a
// FunctionObject, or a With statement).
func (t *Tree) ScopeOf(n ast.Node) (*Scope, bool) {
	s, ok := t.byNode[n]
	return s, ok
}

// Builder incrementally constructs a scope tree while the parser
// descends the source, one Enter*/Exit pair per nested construct.
// Builder never touches the AST itself: the parser calls Bind once the
// node a freshly entered scope belongs to has actually been
// constructed, which matters for nodes (ast.Block, ast.FunctionObject,
// ast.With) that are only built after their body is fully parsed.
type Builder struct {
	tree    *Tree
	current *Scope
}

// NewBuilder creates the tree's Global root and positions current on
// it, ready for the parser to declare top-level bindings into.
func NewBuilder() *Builder {
	root := newScope(Global, nil)
	return &Builder{tree: &Tree{Root: root, byNode: map[ast.Node]*Scope{}}, current: root}
}

// Tree returns the scope tree built so far; safe to call once parsing
// has finished (the parser calls it from Parse and from Scopes).
func (b *Builder) Tree() *Tree { return b.tree }

// Current is the innermost scope the parser is presently declaring
// into.
func (b *Builder) Current() *Scope { return b.current }

func (b *Builder) enter(kind Kind) *Scope {
	b.current = newScope(kind, b.current)
	return b.current
}

func (b *Builder) EnterFunction() *Scope { return b.enter(Function) }
func (b *Builder) EnterBlock() *Scope    { return b.enter(Block) }
func (b *Builder) EnterWith() *Scope     { return b.enter(With) }
func (b *Builder) EnterCatch() *Scope    { return b.enter(Catch) }

// Exit pops back to the scope that was current before the matching
// Enter* call.
func (b *Builder) Exit() {
	if b.current.Parent != nil {
		b.current = b.current.Parent
	}
}

// Bind records that s is n's scope, once n actually exists.
func (b *Builder) Bind(n ast.Node, s *Scope) {
	b.tree.byNode[n] = s
}

// DeclareVar hoists a `var` binding to the nearest enclosing function
// or global scope, regardless of how many blocks lie between the
// declaration and that target (spec §2, ES5 function scoping).
func (b *Builder) DeclareVar(name string, ctx source.Context) {
	b.current.hoistTarget().Declare(&Symbol{Name: name, Kind: SymVar, Context: ctx})
}

// DeclareFunction hoists a function declaration's own name the same
// way a `var` hoists.
func (b *Builder) DeclareFunction(name string, ctx source.Context) {
	b.current.hoistTarget().Declare(&Symbol{Name: name, Kind: SymFunction, Context: ctx})
}

// DeclareLexical declares a `let`/`const` binding in the current
// (block-scoped, not hoisted) scope.
func (b *Builder) DeclareLexical(name string, isConst bool, ctx source.Context) {
	kind := SymLet
	if isConst {
		kind = SymConst
	}
	b.current.Declare(&Symbol{Name: name, Kind: kind, Context: ctx})
}

// DeclareParameter declares a function parameter in the current scope;
// callers invoke this immediately after EnterFunction so parameters
// land in the function's own scope, not its enclosing one.
func (b *Builder) DeclareParameter(name string, ctx source.Context) {
	b.current.Declare(&Symbol{Name: name, Kind: SymParameter, Context: ctx})
}

// DeclareCatchParam declares a catch clause's bound identifier in the
// current scope; callers invoke this immediately after EnterCatch.
func (b *Builder) DeclareCatchParam(name string, ctx source.Context) {
	b.current.Declare(&Symbol{Name: name, Kind: SymCatchParam, Context: ctx})
}
