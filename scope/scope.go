// Package scope implements the lexical scope tree spec §2 budgets at
// 6% of the implementation: a tree of global, function, block, with,
// and catch scopes, each holding a symbol table, populated as the
// parser descends the source and resolved against identifier
// references by a separate visitor pass (scope.Resolver) once parsing
// completes. Grounded on the teacher's own environment-chain idiom
// (DWScript resolves symbols against an enclosing-table chain during
// semantic analysis) generalized to JS's var-hoisting and with/catch
// scope kinds, which DWScript has no analog for.
package scope

import "github.com/krotik/jsqueeze/source"

// Kind classifies what introduced a Scope.
type Kind int

const (
	Global Kind = iota
	Function
	Block
	With
	Catch
)

func (k Kind) String() string {
	switch k {
	case Global:
		return "global"
	case Function:
		return "function"
	case Block:
		return "block"
	case With:
		return "with"
	case Catch:
		return "catch"
	}
	return "unknown"
}

// SymbolKind classifies how a Symbol entered its Scope.
type SymbolKind int

const (
	SymVar SymbolKind = iota
	SymLet
	SymConst
	SymFunction
	SymParameter
	SymCatchParam
)

func (k SymbolKind) String() string {
	switch k {
	case SymVar:
		return "var"
	case SymLet:
		return "let"
	case SymConst:
		return "const"
	case SymFunction:
		return "function"
	case SymParameter:
		return "parameter"
	case SymCatchParam:
		return "catch-parameter"
	}
	return "unknown"
}

// Symbol is one declared binding.
type Symbol struct {
	Name    string
	Kind    SymbolKind
	Context source.Context
}

// Scope is one node of the lexical scope tree: a symbol table plus a
// link to its enclosing scope (spec §2).
type Scope struct {
	Kind     Kind
	Parent   *Scope
	Children []*Scope
	Symbols  map[string]*Symbol
}

func newScope(kind Kind, parent *Scope) *Scope {
	s := &Scope{Kind: kind, Parent: parent, Symbols: map[string]*Symbol{}}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// Declare adds sym to s, returning the symbol it shadows in this same
// scope, if any (var/function redeclaration is legal in JS; the
// builder doesn't reject it, it just keeps the most recent binding).
func (s *Scope) Declare(sym *Symbol) (shadowed *Symbol) {
	shadowed = s.Symbols[sym.Name]
	s.Symbols[sym.Name] = sym
	return shadowed
}

// Lookup walks s and its ancestors for name, stopping (unresolved)
// at a With scope: a with-object's own properties can shadow any
// outer binding at runtime, so static resolution can't see past it
// (spec §2's "with" scope kind).
func (s *Scope) Lookup(name string) (*Symbol, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.Symbols[name]; ok {
			return sym, sc
		}
		if sc.Kind == With {
			return nil, nil
		}
	}
	return nil, nil
}

// hoistTarget returns the nearest enclosing Function or Global scope,
// the destination `var` and function declarations hoist to regardless
// of how many Block/With/Catch scopes lie between (spec §2).
func (s *Scope) hoistTarget() *Scope {
	for sc := s; sc != nil; sc = sc.Parent {
		if sc.Kind == Function || sc.Kind == Global {
			return sc
		}
	}
	return s
}
