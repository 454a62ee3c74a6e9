package scope_test

import (
	"testing"

	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/diag"
	"github.com/krotik/jsqueeze/lexer"
	"github.com/krotik/jsqueeze/parser"
	"github.com/krotik/jsqueeze/scope"
	"github.com/krotik/jsqueeze/source"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *parser.Parser) {
	t.Helper()
	doc := source.New("t.js", src)
	lex := lexer.New(doc)
	p := parser.New(lex, parser.Settings{})
	prog, diags := p.Parse()
	for _, d := range diags {
		if d.Severity >= diag.SeverityError {
			t.Fatalf("unexpected diagnostic: %v", d)
		}
	}
	return prog, p
}

func TestVarHoistsPastNestedBlocks(t *testing.T) {
	prog, p := parseSrc(t, "function f(){ if(true){ var x = 1; } return x; }")
	tree := p.Scopes()

	resolver := scope.NewResolver(tree)
	resolver.Resolve(prog)

	var found bool
	for _, ref := range resolver.References() {
		if ref.Name == "x" {
			found = true
			if ref.Symbol == nil {
				t.Fatalf("x should resolve, hoisted to the function scope")
			}
			if ref.Symbol.Kind != scope.SymVar {
				t.Fatalf("x should be a var symbol, got %v", ref.Symbol.Kind)
			}
		}
	}
	if !found {
		t.Fatalf("expected a reference to x")
	}
}

func TestLetStaysBlockScoped(t *testing.T) {
	prog, p := parseSrc(t, "{ let y = 1; } y;")
	tree := p.Scopes()

	resolver := scope.NewResolver(tree)
	resolver.Resolve(prog)

	for _, ref := range resolver.References() {
		if ref.Name == "y" && ref.Symbol != nil {
			t.Fatalf("y declared inside a block must not be visible outside it")
		}
	}
}

func TestWithStopsStaticLookup(t *testing.T) {
	prog, p := parseSrc(t, "var a = 1; with(obj){ a; }")
	tree := p.Scopes()

	resolver := scope.NewResolver(tree)
	resolver.Resolve(prog)

	for _, ref := range resolver.References() {
		if ref.Name == "a" && ref.Symbol != nil {
			t.Fatalf("lookup crossing a with-scope must not resolve statically")
		}
	}
}

func TestFunctionDeclarationNameVisibleToSiblingsAndSelf(t *testing.T) {
	prog, p := parseSrc(t, "function fact(n){ return n <= 1 ? 1 : n * fact(n-1); } fact(5);")
	tree := p.Scopes()

	resolver := scope.NewResolver(tree)
	resolver.Resolve(prog)

	count := 0
	for _, ref := range resolver.References() {
		if ref.Name == "fact" {
			if ref.Symbol == nil {
				t.Fatalf("fact should resolve both recursively and at the call site")
			}
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 references to fact (recursive call + top-level call), got %d", count)
	}
}

func TestCatchParamScopedToHandler(t *testing.T) {
	prog, p := parseSrc(t, "try { } catch(e){ e; } e;")
	tree := p.Scopes()

	resolver := scope.NewResolver(tree)
	resolver.Resolve(prog)

	var insideResolved, outsideResolved bool
	refs := resolver.References()
	for i, ref := range refs {
		if ref.Name != "e" {
			continue
		}
		if i == 0 {
			insideResolved = ref.Symbol != nil
		} else {
			outsideResolved = ref.Symbol != nil
		}
	}
	if !insideResolved {
		t.Fatalf("e should resolve to the catch parameter inside the handler")
	}
	if outsideResolved {
		t.Fatalf("e must not be visible outside the catch handler")
	}
}
