package printer

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/krotik/jsqueeze/lexer"
	"github.com/krotik/jsqueeze/parser"
	"github.com/krotik/jsqueeze/source"
)

func squeeze(t *testing.T, src string) string {
	t.Helper()
	doc := source.New("t.js", src)
	lex := lexer.New(doc)
	p := parser.New(lex, parser.Settings{})
	prog, diags := p.Parse()
	for _, d := range diags {
		if d.Severity >= 2 { // SeverityError
			t.Fatalf("unexpected parse error: %v", d)
		}
	}
	return Print(prog, DefaultSettings())
}

func TestNumericAndIdentifierMinification(t *testing.T) {
	got := squeeze(t, "var x = 0.5e2 + 0x10;")
	want := "var x=50+16"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestASIReturnEmitsSemicolonBeforeNextStatement(t *testing.T) {
	got := squeeze(t, "function f(){return\n1}")
	want := "function f(){return;1}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestObjectLiteralPropertyNameQuoting(t *testing.T) {
	got := squeeze(t, `a={b:1,"c d":2,3:4};`)
	want := `a={b:1,"c d":2,3:4}`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestForInEmptyBody(t *testing.T) {
	got := squeeze(t, "for(var i in o);")
	want := "for(var i in o);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIfElseTrailingSemicolonElidedOnlyAtProgramTail(t *testing.T) {
	got := squeeze(t, "if(a==b)c();else d();")
	want := "if(a==b)c();else d()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrecedenceSoundnessSubtraction(t *testing.T) {
	got := squeeze(t, "var x = a - (b - c);")
	want := "var x=a-(b-c)"
	if got != want {
		t.Fatalf("'a - (b - c)' must keep its parens, got %q", got)
	}
}

func TestPrecedenceSoundnessMultiplicationOverAddition(t *testing.T) {
	got := squeeze(t, "var x = a * (b + c);")
	want := "var x=a*(b+c)"
	if got != want {
		t.Fatalf("'a * (b + c)' must keep its parens, got %q", got)
	}
}

func TestPrecedenceDropsRedundantParens(t *testing.T) {
	got := squeeze(t, "var x = (a + b) + c;")
	want := "var x=a+b+c"
	if got != want {
		t.Fatalf("left-associative '+' chain shouldn't need the original parens, got %q", got)
	}
}

func TestAssociativeMultiplicationDropsParens(t *testing.T) {
	got := squeeze(t, "var x = a * (b * c);")
	want := "var x=a*b*c"
	if got != want {
		t.Fatalf("'*' is associative for printing, parens should drop, got %q", got)
	}
}

func TestNewExpressionKeepsCallParens(t *testing.T) {
	got := squeeze(t, "var x = new (f())();")
	want := "var x=new (f())()"
	if got != want {
		t.Fatalf("'new (f())()' must not lose its inner parens, got %q", got)
	}
}

func TestFunctionExpressionAtStatementStartIsWrapped(t *testing.T) {
	got := squeeze(t, "(function(){ return 1; })();")
	want := "(function(){return 1})()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStringQuoteSelection(t *testing.T) {
	got := squeeze(t, `var s = "it's fine";`)
	want := `var s="it's fine"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestImportantCommentLineFormForcesNewline(t *testing.T) {
	settings := DefaultSettings()
	settings.PreserveImportantComments = true
	doc := source.New("t.js", "//!important\nvar a=1;")
	lex := lexer.New(doc)
	p := parser.New(lex, parser.Settings{})
	prog, _ := p.Parse()
	got := Print(prog, settings)
	want := "//!important\nvar a=1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRegexLiteralRoundTrips(t *testing.T) {
	got := squeeze(t, "var r = /ab+c/gi;")
	want := "var r=/ab+c/gi"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestPrettyModeSnapshot checks a whole-program pretty-printed rendering
// against a stored snapshot, the way the teacher's fixture tests check
// their own interpreter output.
func TestPrettyModeSnapshot(t *testing.T) {
	src := `function greet(name) {
  if (name) {
    return "hi " + name;
  } else {
    return "hi stranger";
  }
}
for (var i = 0; i < 3; i++) {
  greet("world " + i);
}
`
	doc := source.New("fixture.js", src)
	lex := lexer.New(doc)
	p := parser.New(lex, parser.Settings{})
	prog, diags := p.Parse()
	for _, d := range diags {
		if d.Severity >= 2 {
			t.Fatalf("unexpected parse error: %v", d)
		}
	}
	settings := DefaultSettings()
	settings.OutputMode = OutputModePretty
	settings.MinifyCode = false
	got := Print(prog, settings)
	snaps.MatchSnapshot(t, "greet_pretty", got)
}
