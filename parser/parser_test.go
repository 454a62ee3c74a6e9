package parser

import (
	"testing"

	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/lexer"
	"github.com/krotik/jsqueeze/source"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	doc := source.New("t.js", src)
	lex := lexer.New(doc)
	p := New(lex, Settings{})
	prog, _ := p.Parse()
	return prog, p
}

func TestASISplitsTwoStatements(t *testing.T) {
	prog, p := parseSrc(t, "a\n++b")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	if len(prog.Body) != 2 {
		t.Fatalf("expected ASI to split into two statements, got %d: %#v", len(prog.Body), prog.Body)
	}
	if _, ok := prog.Body[1].(*ast.ExpressionStatement); !ok {
		t.Fatalf("second statement should be an expression statement, got %T", prog.Body[1])
	}
}

func TestASIReturnNoLineBreak(t *testing.T) {
	prog, p := parseSrc(t, "function f() { return\n1 }")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	decl, ok := prog.Body[0].(*ast.FunctionObject)
	if !ok {
		t.Fatalf("expected function declaration, got %T", prog.Body[0])
	}
	ret, ok := decl.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected return statement, got %T", decl.Body.Statements[0])
	}
	if ret.Argument != nil {
		t.Fatalf("'return' followed by a line break must not consume the next line as its operand")
	}
	if len(decl.Body.Statements) != 2 {
		t.Fatalf("expected the bare '1' to become its own statement, got %d statements", len(decl.Body.Statements))
	}
}

func TestForInVsForOf(t *testing.T) {
	progIn, p1 := parseSrc(t, "for (x in y) z();")
	if p1.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p1.diags.All())
	}
	fi, ok := progIn.Body[0].(*ast.ForIn)
	if !ok {
		t.Fatalf("expected ForIn, got %T", progIn.Body[0])
	}
	if fi.OfLoop {
		t.Fatalf("'for...in' must not be parsed as an of-loop")
	}

	progOf, p2 := parseSrc(t, "for (x of y) z();")
	if p2.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p2.diags.All())
	}
	fo, ok := progOf.Body[0].(*ast.ForIn)
	if !ok {
		t.Fatalf("expected ForIn, got %T", progOf.Body[0])
	}
	if !fo.OfLoop {
		t.Fatalf("'for...of' must be parsed as an of-loop")
	}
}

func TestClassicForStillWorks(t *testing.T) {
	prog, p := parseSrc(t, "for (var i = 0; i < 10; i++) sum += i;")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	f, ok := prog.Body[0].(*ast.For)
	if !ok {
		t.Fatalf("expected classic For, got %T", prog.Body[0])
	}
	if f.Test == nil || f.Update == nil {
		t.Fatalf("classic for must keep its test and update clauses")
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	prog, p := parseSrc(t, "a = b = c;")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	es := prog.Body[0].(*ast.ExpressionStatement)
	outer, ok := es.Expr.(*ast.BinaryOperator)
	if !ok || outer.Operator != "=" {
		t.Fatalf("expected top-level '=' binary operator, got %#v", es.Expr)
	}
	if _, ok := outer.Left.(*ast.Identifier); !ok {
		t.Fatalf("left of 'a = b = c' should be the identifier 'a', got %T", outer.Left)
	}
	inner, ok := outer.Right.(*ast.BinaryOperator)
	if !ok || inner.Operator != "=" {
		t.Fatalf("right of 'a = b = c' should be the nested 'b = c' assignment, got %#v", outer.Right)
	}
}

func TestTernaryPrecedenceOverAssignment(t *testing.T) {
	prog, p := parseSrc(t, "a = b ? c : d;")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	es := prog.Body[0].(*ast.ExpressionStatement)
	assign := es.Expr.(*ast.BinaryOperator)
	if assign.Operator != "=" {
		t.Fatalf("expected top-level assignment, got op %q", assign.Operator)
	}
	if _, ok := assign.Right.(*ast.Conditional); !ok {
		t.Fatalf("right of '=' should be the ternary, got %T", assign.Right)
	}
}

func TestBinaryPrecedenceAndLeftAssociativity(t *testing.T) {
	prog, p := parseSrc(t, "a + b * c;")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	es := prog.Body[0].(*ast.ExpressionStatement)
	plus, ok := es.Expr.(*ast.BinaryOperator)
	if !ok || plus.Operator != "+" {
		t.Fatalf("top-level operator should be '+', got %#v", es.Expr)
	}
	if _, ok := plus.Right.(*ast.BinaryOperator); !ok {
		t.Fatalf("'*' should bind tighter and nest under '+', got %T", plus.Right)
	}

	progSub, pSub := parseSrc(t, "a - b - c;")
	if pSub.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", pSub.diags.All())
	}
	es2 := progSub.Body[0].(*ast.ExpressionStatement)
	outer := es2.Expr.(*ast.BinaryOperator)
	if _, ok := outer.Left.(*ast.BinaryOperator); !ok {
		t.Fatalf("'a - b - c' should associate left: (a-b)-c, got left=%T", outer.Left)
	}
}

func TestRegexVsDivide(t *testing.T) {
	prog, p := parseSrc(t, "a / b;")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	es := prog.Body[0].(*ast.ExpressionStatement)
	bin, ok := es.Expr.(*ast.BinaryOperator)
	if !ok || bin.Operator != "/" {
		t.Fatalf("'a / b' should parse as division, got %#v", es.Expr)
	}

	progRe, pRe := parseSrc(t, "return /x/g;")
	if pRe.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", pRe.diags.All())
	}
	// wrapped in a function so 'return' is legal
	progRe2, pRe2 := parseSrc(t, "function f(){ return /x/g; }")
	if pRe2.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", pRe2.diags.All())
	}
	fn := progRe2.Body[0].(*ast.FunctionObject)
	ret := fn.Body.Statements[0].(*ast.Return)
	re, ok := ret.Argument.(*ast.RegExpLiteral)
	if !ok {
		t.Fatalf("expected a regex literal after 'return', got %T", ret.Argument)
	}
	if re.Pattern != "x" || re.Flags != "g" {
		t.Fatalf("expected pattern 'x' flags 'g', got pattern=%q flags=%q", re.Pattern, re.Flags)
	}
	_ = progRe
}

func TestNewExpressionArgumentScoping(t *testing.T) {
	prog, p := parseSrc(t, "new a.b.c(d);")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	es := prog.Body[0].(*ast.ExpressionStatement)
	call, ok := es.Expr.(*ast.Call)
	if !ok || !call.IsNew {
		t.Fatalf("expected a 'new' call, got %#v", es.Expr)
	}
	if len(call.Args) != 1 {
		t.Fatalf("'new a.b.c(d)' should attach (d) to the whole member chain, got %d args", len(call.Args))
	}
	if _, ok := call.Callee.(*ast.Member); !ok {
		t.Fatalf("callee of 'new a.b.c(d)' should be the member chain a.b.c, got %T", call.Callee)
	}
}

func TestObjectLiteralGetterSetterShorthand(t *testing.T) {
	prog, p := parseSrc(t, "var o = { get x() { return 1; }, set x(v) {}, get: 2 };")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	v := prog.Body[0].(*ast.Var)
	obj := v.Declarations[0].Init.(*ast.ObjectLiteral)
	if len(obj.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(obj.Properties))
	}
	getter, ok := obj.Properties[0].(*ast.GetterSetter)
	if !ok || !getter.IsGetter || getter.Key != "x" {
		t.Fatalf("first property should be getter 'x', got %#v", obj.Properties[0])
	}
	setter, ok := obj.Properties[1].(*ast.GetterSetter)
	if !ok || setter.IsGetter || setter.Key != "x" {
		t.Fatalf("second property should be setter 'x', got %#v", obj.Properties[1])
	}
	plain, ok := obj.Properties[2].(*ast.ObjectLiteralProperty)
	if !ok || plain.Key != "get" {
		t.Fatalf("'get: 2' should parse 'get' as a plain property key, got %#v", obj.Properties[2])
	}
}

func TestErrorRecoverySynchronizesAfterMissingSemicolon(t *testing.T) {
	prog, p := parseSrc(t, "var a = 1 var b = 2;")
	if !p.diags.HasErrors() {
		t.Fatalf("expected a missing-semicolon diagnostic")
	}
	if len(prog.Body) != 2 {
		t.Fatalf("recovery should still produce both declarations, got %d statements", len(prog.Body))
	}
	if _, ok := prog.Body[1].(*ast.Var); !ok {
		t.Fatalf("second statement should have recovered as a var declaration, got %T", prog.Body[1])
	}
}

func TestBreakOutsideLoopIsIllegal(t *testing.T) {
	_, p := parseSrc(t, "break;")
	if !p.diags.HasErrors() {
		t.Fatalf("'break' outside a loop or switch must be reported")
	}
}

func TestBreakInsideLoopIsLegal(t *testing.T) {
	_, p := parseSrc(t, "while (true) { break; }")
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
}

func TestDirectiveProloguePromotion(t *testing.T) {
	prog, p := parseSrc(t, `"use strict"; var a = 1;`)
	if p.diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.diags.All())
	}
	if _, ok := prog.Body[0].(*ast.DirectivePrologue); !ok {
		t.Fatalf("leading string-literal statement should be promoted to a directive prologue, got %T", prog.Body[0])
	}
}
