// Package jsqueeze parses ES5-era (plus a handful of common non-standard
// extensions) JavaScript source into a typed AST and prints it back out
// in a minified or pretty form. It composes the lexer, parser, and
// printer packages behind two entry points, the way the teacher's own
// query package composes its parser and pretty-printer behind one
// high-level function (spec §6 "External Interfaces").
package jsqueeze

import (
	"github.com/krotik/jsqueeze/ast"
	"github.com/krotik/jsqueeze/diag"
	"github.com/krotik/jsqueeze/lexer"
	"github.com/krotik/jsqueeze/parser"
	"github.com/krotik/jsqueeze/printer"
	"github.com/krotik/jsqueeze/source"
)

// Parse scans and parses source (named name for diagnostics) under
// settings, returning the root Program and every diagnostic collected
// along the way. Parse never returns a nil Program, even when the
// source is malformed: parser error recovery always produces a
// best-effort tree (spec §4.2, §7).
func Parse(name, src string, settings parser.Settings, opts ...parser.Option) (*ast.Program, []diag.Diagnostic) {
	doc := source.New(name, src)
	lex := lexer.New(doc)
	p := parser.New(lex, settings, opts...)
	return p.Parse()
}

// Print renders prog back to source text under settings.
func Print(prog *ast.Program, settings printer.Settings, opts ...printer.Option) string {
	return printer.Print(prog, settings, opts...)
}

// Squeeze is the common-case composition: parse src with default parser
// settings and print it back out minified, returning the parse
// diagnostics alongside the output.
func Squeeze(name, src string) (out string, diagnostics []diag.Diagnostic) {
	prog, diags := Parse(name, src, parser.Settings{})
	return Print(prog, printer.DefaultSettings()), diags
}
