// Package source owns the immutable source buffer and span bookkeeping
// shared by the lexer, parser and printer.
package source

import "unicode/utf8"

// Document owns the source text of one compilation unit plus enough
// bookkeeping to translate byte offsets into line/column pairs on demand.
// A Document is immutable once constructed and may be shared freely
// across goroutines by read-only consumers.
type Document struct {
	name  string
	text  string
	lines []int // byte offset of the first rune of each line; lines[0] == 0
}

// New builds a Document from raw source text. name is typically a file
// path or a synthetic identifier such as "<eval>"; it is carried through
// diagnostics only and never interpreted.
func New(name, text string) *Document {
	d := &Document{name: name, text: text, lines: []int{0}}
	for i, r := range text {
		if r == '\n' {
			d.lines = append(d.lines, i+1)
		}
	}
	return d
}

// Name returns the document's file identifier.
func (d *Document) Name() string { return d.name }

// Text returns the full source text.
func (d *Document) Text() string { return d.text }

// Len returns the length of the source text in bytes.
func (d *Document) Len() int { return len(d.text) }

// Slice returns the raw source between two byte offsets.
func (d *Document) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.text) {
		end = len(d.text)
	}
	if start >= end {
		return ""
	}
	return d.text[start:end]
}

// LineCol converts a byte offset into a 1-based line number and a
// 0-based column (rune count from the start of the line), matching the
// column convention used throughout the scanner: every Unicode code
// point, including multi-byte ones, counts as one column.
func (d *Document) LineCol(offset int) (line, col int) {
	// binary search over d.lines for the last line start <= offset
	lo, hi := 0, len(d.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.lines[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line = lo + 1
	lineStart := d.lines[lo]
	if offset > len(d.text) {
		offset = len(d.text)
	}
	col = utf8.RuneCountInString(d.text[lineStart:offset])
	return line, col
}
