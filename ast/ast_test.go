package ast

import (
	"testing"

	"github.com/krotik/jsqueeze/source"
)

func testCtx() source.Context {
	doc := source.New("t.js", "x")
	return source.NewContext(doc, 0, 1)
}

func TestBinaryOperatorPrimitiveType(t *testing.T) {
	ctx := testCtx()
	num := NewConstantWrapper(ctx, ConstNumber, "1", "1", false)
	str := NewConstantWrapper(ctx, ConstString, `"a"`, "a", false)

	plus := NewBinaryOperator(ctx, "+", num, str)
	if got := plus.FindPrimitiveType(); got != TypeString {
		t.Fatalf("num+str should infer String, got %v", got)
	}

	plusNums := NewBinaryOperator(ctx, "+", num, NewConstantWrapper(ctx, ConstNumber, "2", "2", false))
	if got := plusNums.FindPrimitiveType(); got != TypeNumber {
		t.Fatalf("num+num should infer Number, got %v", got)
	}

	eq := NewBinaryOperator(ctx, "==", num, str)
	if got := eq.FindPrimitiveType(); got != TypeBoolean {
		t.Fatalf("== should infer Boolean, got %v", got)
	}
}

func TestLeftHandSideOfComma(t *testing.T) {
	ctx := testCtx()
	a := NewIdentifier(ctx, "a")
	b := NewIdentifier(ctx, "b")
	c := NewIdentifier(ctx, "c")
	inner := NewBinaryOperator(ctx, ",", b, c)
	outer := NewBinaryOperator(ctx, ",", a, inner)

	lhs := LeftHandSide(outer)
	if lhs != Expression(c) {
		t.Fatalf("LeftHandSide of comma chain should be the leftmost of the rightmost operand (c), got %v", lhs)
	}

	// for any other expression it's itself
	if LeftHandSide(a) != Expression(a) {
		t.Fatalf("LeftHandSide of a plain identifier should be itself")
	}
}

func TestParentBackLinks(t *testing.T) {
	ctx := testCtx()
	ident := NewIdentifier(ctx, "x")
	expr := NewExpressionStatement(ctx, ident)

	if ident.Parent() != Node(expr) {
		t.Fatalf("child's parent must be the owning node after construction")
	}

	other := NewExpressionStatement(ctx, nil)
	SetChild(expr, ident, nil)
	SetChild(other, nil, ident)
	if ident.Parent() != Node(other) {
		t.Fatalf("re-parenting via SetChild must update parent to the new owner")
	}
}

func TestStructuralEquality(t *testing.T) {
	ctx := testCtx()
	a1 := NewBinaryOperator(ctx, "+", NewIdentifier(ctx, "a"), NewIdentifier(ctx, "b"))
	a2 := NewBinaryOperator(ctx, "+", NewIdentifier(ctx, "a"), NewIdentifier(ctx, "b"))
	a3 := NewBinaryOperator(ctx, "-", NewIdentifier(ctx, "a"), NewIdentifier(ctx, "b"))

	if !a1.Equal(a2) {
		t.Fatalf("structurally identical trees should be Equal")
	}
	if a1.Equal(a3) {
		t.Fatalf("different operator tokens must not be Equal")
	}
}
