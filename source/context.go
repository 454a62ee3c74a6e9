package source

// Context is a span into a Document: a start/end byte offset pair plus
// the line/column of the start, and output-position fields
// (OutputLine/OutputCol) that the printer does not fill in. Contexts are
// cheap value types and are cloned by copy.
//
// Equal contexts have equal offsets; the Document pointer is not part of
// equality since a Context is always interpreted relative to the
// Document that produced it.
type Context struct {
	Doc        *Document
	StartLine  int
	StartCol   int
	StartByte  int
	EndByte    int
	OutputLine int
	OutputCol  int
}

// NewContext builds a Context spanning [startByte, endByte) of doc.
func NewContext(doc *Document, startByte, endByte int) Context {
	line, col := doc.LineCol(startByte)
	return Context{
		Doc:       doc,
		StartLine: line,
		StartCol:  col,
		StartByte: startByte,
		EndByte:   endByte,
	}
}

// Text returns the raw source slice covered by this span.
func (c Context) Text() string {
	if c.Doc == nil {
		return ""
	}
	return c.Doc.Slice(c.StartByte, c.EndByte)
}

// Len returns the span's length in bytes.
func (c Context) Len() int { return c.EndByte - c.StartByte }

// EndLineCol returns the line/column of the span's end offset.
func (c Context) EndLineCol() (line, col int) {
	if c.Doc == nil {
		return c.StartLine, c.StartCol
	}
	return c.Doc.LineCol(c.EndByte)
}

// Equal reports offset equality, matching the spec's "equal contexts
// have equal offsets" invariant.
func (c Context) Equal(other Context) bool {
	return c.StartByte == other.StartByte && c.EndByte == other.EndByte
}

// Clone returns an independent copy of c; since Context is a value type
// this is just c itself, but the named method documents intent at call
// sites that rely on independence from later mutation of OutputLine/Col.
func (c Context) Clone() Context { return c }

// Merge returns a Context spanning from c's start to other's end. Both
// must belong to the same Document.
func (c Context) Merge(other Context) Context {
	m := c
	m.EndByte = other.EndByte
	return m
}
