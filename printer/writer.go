package printer

import (
	"strings"

	"github.com/krotik/common/datautil"
)

// writer accumulates output text and tracks just enough character-level
// state to make ASI-safe, ambiguity-free decisions about when two
// adjacent tokens need a separating space (spec §4.4): identifier/
// identifier adjacency ("in stance of" vs "instanceof"), "+"/"-" run
// parity ("a+ +b" vs "a+b" must not collapse into "a++b"), and a '/'
// followed by '/' or '*' ("a/ /re/" must not turn into a comment
// opener). The lookback window only ever needs the last couple of emitted
// runes, which is exactly the small fixed-capacity use case
// datautil.RingBuffer is built for (unlike the lexer's important-comment
// queue, which must never evict and so stays a plain slice).
type writer struct {
	sb     strings.Builder
	tail   *datautil.RingBuffer
	indent int
	col    int
	line   int

	settings Settings
}

func newWriter(settings Settings) *writer {
	return &writer{tail: datautil.NewRingBuffer(2), settings: settings, line: 1}
}

func (w *writer) lastByte() (byte, bool) {
	if w.tail.IsEmpty() {
		return 0, false
	}
	v := w.tail.Get(w.tail.Size() - 1)
	if v == nil {
		return 0, false
	}
	return v.(byte), true
}

// raw appends s verbatim, with no spacing decisions, and updates the
// lookback/position state.
func (w *writer) raw(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		w.tail.Add(c)
		if c == '\n' {
			w.line++
			w.col = 0
		} else {
			w.col++
		}
	}
	w.sb.WriteString(s)
}

// needsSpaceBefore reports whether emitting next right after the
// current tail would create a different token than intended (spec
// §4.4 "identifier-adjacency spacing", the "+"/"-" run rule and the
// '/' comment-opener rule).
func (w *writer) needsSpaceBefore(next byte) bool {
	last, ok := w.lastByte()
	if !ok {
		return false
	}
	if isIdentByte(last) && isIdentByte(next) {
		return true
	}
	if (last == '+' && next == '+') || (last == '-' && next == '-') {
		return true
	}
	if last == '/' && (next == '/' || next == '*') {
		return true
	}
	return false
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// token emits s, inserting a single space first if butting it directly
// against the current tail would change tokenization.
func (w *writer) token(s string) {
	if s == "" {
		return
	}
	if w.needsSpaceBefore(s[0]) {
		w.raw(" ")
	}
	w.raw(s)
}

func (w *writer) newlineOrSpace() {
	if w.settings.OutputMode == OutputModePretty {
		w.raw("\n")
		w.raw(strings.Repeat(" ", w.indent*w.indentSize()))
	}
}

func (w *writer) indentSize() int {
	if w.settings.IndentSize > 0 {
		return w.settings.IndentSize
	}
	return 2
}

func (w *writer) openBlock() {
	w.token("{")
	w.indent++
	w.newlineOrSpace()
}

func (w *writer) closeBlock() {
	w.indent--
	w.newlineOrSpace()
	w.token("}")
}

// wrapIfNeeded inserts a bare line break (never indentation) once the
// current line exceeds LineBreakThreshold in compact mode, matching the
// teacher's printer's "soft wrap at a statement boundary" behavior
// adapted to JS's ASI hazard: only called at points where a line break
// cannot be mistaken for an ASI opportunity that changes meaning
// (immediately after ';' or '}').
func (w *writer) wrapIfNeeded() {
	if w.settings.OutputMode == OutputModeCompact && w.settings.LineBreakThreshold > 0 &&
		w.col > w.settings.LineBreakThreshold {
		w.raw("\n")
	}
}

// replaceableSemicolon implements spec §4.4's replaceable_semicolon():
// called only at a terminator position immediately followed by a
// keyword that cannot legally continue an expression (else, do-while's
// while, case, default, }), where ASI's offending-token rule guarantees
// a bare newline closes the preceding statement just as well as an
// explicit ';'. Below LineBreakThreshold (or outside compact mode, or
// under TermSemicolons) the printer still writes the literal ';';
// past it, the ';' is dropped in favor of the newline the caller is
// about to emit anyway. Reports whether it wrote a literal ';' (false
// means the terminator was elided).
func (w *writer) replaceableSemicolon() bool {
	if w.settings.TermSemicolons || w.settings.OutputMode != OutputModeCompact ||
		w.settings.LineBreakThreshold <= 0 || w.col <= w.settings.LineBreakThreshold {
		w.raw(";")
		return true
	}
	w.raw("\n")
	return false
}

func (w *writer) String() string { return w.sb.String() }
