package scope

import (
	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/source"
)

// Reference records one identifier occurrence and what the scope tree
// resolved it to (nil Symbol/Scope when nothing bound the name, i.e.
// a free/global reference).
type Reference struct {
	Name    string
	Context source.Context
	Symbol  *Symbol
	Scope   *Scope
}

// Resolver is the separate visitor pass spec §2 calls for: it walks a
// finished AST against the Tree the parser built alongside it and
// resolves every Identifier to the Symbol (if any) it refers to.
// Embeds ast.BaseVisitor in the teacher's idiom for passes that only
// need to act on a handful of node kinds and fall back to identity
// traversal everywhere else, but Resolver does its own explicit
// recursion via walk rather than through Accept, since it must switch
// which Scope is "current" as it crosses into a child scope's node.
type Resolver struct {
	ast.BaseVisitor
	tree *Tree
	refs []Reference
}

// NewResolver prepares a Resolver against a Tree a parser.Parser built
// while producing the AST this Resolver will walk.
func NewResolver(tree *Tree) *Resolver {
	return &Resolver{tree: tree}
}

// References returns every identifier reference encountered by the
// most recent call to Resolve.
func (r *Resolver) References() []Reference { return r.refs }

// Resolve walks prog, resolving every Identifier against the scope
// tree, starting from prog's own bound scope (its Global root).
func (r *Resolver) Resolve(prog *ast.Program) {
	r.refs = r.refs[:0]
	s, ok := r.tree.ScopeOf(prog)
	if !ok {
		s = r.tree.Root
	}
	r.walk(prog, s)
}

// walk recurses through n's subtree carrying the current Scope,
// switching to a node's own bound (child) scope whenever one exists
// before recursing into that node's children.
func (r *Resolver) walk(n ast.Node, s *Scope) {
	if n == nil {
		return
	}
	if id, ok := n.(*ast.Identifier); ok {
		sym, owner := s.Lookup(id.Name)
		r.refs = append(r.refs, Reference{Name: id.Name, Context: id.Context(), Symbol: sym, Scope: owner})
		return
	}
	if child, ok := r.tree.ScopeOf(n); ok {
		s = child
	}
	for _, c := range n.Children() {
		r.walk(c, s)
	}
}
