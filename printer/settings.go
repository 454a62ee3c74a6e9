// Package printer renders a parsed ast.Program back to source text,
// honoring ASI, operator precedence, and numeric/string minification
// (spec §4.4). It is the mirror image of parser: where parser turns
// text into a tree, printer turns a tree back into text, and the two
// are connected only through the ast package, never directly.
package printer

// Settings controls the printer's output shape (spec §6 "print" entry
// point). The zero value renders compact layout without numeric or
// quote-choice minification; MinifyCode switches on the compressor
// behavior the package is named for.
type Settings struct {
	// OutputMode selects "pretty" (indented, one statement per line) or
	// "compact" layout. Compact is what MinifyCode implies by default,
	// but the two are independent knobs: a caller can ask for compact
	// layout without renaming identifiers or touching literals.
	OutputMode OutputMode

	IndentSize          int  // spaces per indent level in OutputModePretty
	LineBreakThreshold  int  // soft line-length cap in OutputModeCompact; 0 disables wrapping
	BlocksStartOnSameLine bool // not read by the printer: an opening '{' always stays on its statement's line
	TermSemicolons      bool // always emit a statement's trailing ';' even where ASI/'}' would allow dropping it

	MinifyCode                  bool // numeric/string shortening, redundant-paren removal beyond precedence necessity
	EvalLiteralExpressions      bool // constant-fold literal-only expressions before printing (hook only, spec §1 non-goal for the core)
	RemoveUnneededCode          bool // drop statements with no observable effect (hook only)
	PreserveImportantComments   bool // emit ast.ImportantComment nodes verbatim
	RemoveFunctionExpressionNames bool // strip FunctionObject.Name from anonymous-position function expressions
	QuoteObjectLiteralProperties bool // quote every identifier-shaped object literal key; numeric and already-quoted keys print as usual
	InlineSafeStrings           bool // neutralize "</" and "]]>" inside string literals for inline <script> embedding
	MacSafariQuirks             bool // not read by the printer; setting it changes no output
	AlwaysEscapeNonASCII        bool // \uXXXX-escape every non-ASCII code point in string literals

	LocalRenaming bool // shrink local identifiers to short names (hook only, spec §1 non-goal for the core)
}

// OutputMode is the printer's layout mode.
type OutputMode int

const (
	OutputModeCompact OutputMode = iota
	OutputModePretty
)

// DefaultSettings turns on MinifyCode with compact layout, the package's
// namesake mode; every other switch is left off.
func DefaultSettings() Settings {
	return Settings{
		OutputMode:          OutputModeCompact,
		LineBreakThreshold:  0,
		MinifyCode:          true,
		QuoteObjectLiteralProperties: false,
	}
}
