// Package diag defines the diagnostic type the parser reports problems
// through: a stable code, a severity, a position, and a recovered flag
// (spec §7). The lexer keeps its own lexer.Error list, which is not
// converted into diagnostics.
package diag

import (
	"fmt"

	"github.com/krotik/jsqueeze/source"
)

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return "unknown"
}

// Code is a stable, programmatically-matchable diagnostic identifier,
// grounded on the teacher's E_-prefixed ParserError.Code constants.
type Code string

const (
	CodeUnexpectedToken      Code = "E_UNEXPECTED_TOKEN"
	CodeUnterminatedString   Code = "E_UNTERMINATED_STRING"
	CodeUnterminatedComment  Code = "E_UNTERMINATED_COMMENT"
	CodeUnterminatedRegex    Code = "E_UNTERMINATED_REGEX"
	CodeInvalidEscape        Code = "E_INVALID_ESCAPE"
	CodeInvalidNumber        Code = "E_INVALID_NUMBER"
	CodeLegacyOctalAmbiguous Code = "E_LEGACY_OCTAL_AMBIGUOUS"
	CodeMissingSemicolon     Code = "E_MISSING_SEMICOLON"
	CodeMissingLParen        Code = "E_MISSING_LPAREN"
	CodeMissingRParen        Code = "E_MISSING_RPAREN"
	CodeMissingLBrace        Code = "E_MISSING_LBRACE"
	CodeMissingRBrace        Code = "E_MISSING_RBRACE"
	CodeMissingRBracket      Code = "E_MISSING_RBRACKET"
	CodeMissingColon         Code = "E_MISSING_COLON"
	CodeMissingIdentifier    Code = "E_MISSING_IDENTIFIER"
	CodeInvalidExpression    Code = "E_INVALID_EXPRESSION"
	CodeInvalidAssignTarget  Code = "E_INVALID_ASSIGN_TARGET"
	CodeIllegalBreak         Code = "E_ILLEGAL_BREAK"
	CodeIllegalContinue      Code = "E_ILLEGAL_CONTINUE"
	CodeIllegalReturn        Code = "E_ILLEGAL_RETURN"
	CodeDuplicateLabel       Code = "E_DUPLICATE_LABEL"
	CodeConditionalCompilationDisabled Code = "E_CONDCOMP_DISABLED"
	CodeASPNetBlockDisallowed Code = "E_ASPNET_DISALLOWED"
	CodeUnknownDirective     Code = "E_UNKNOWN_DIRECTIVE"
	CodeASIInserted          Code = "W_ASI_INSERTED"
	CodeTooManySkippedTokens Code = "E_TOO_MANY_SKIPPED_TOKENS"
	CodeUnclosedFunctionBody Code = "E_UNCLOSED_FUNCTION_BODY"
)

// Diagnostic is one problem report surfaced by the parser.
type Diagnostic struct {
	Code      Code
	Severity  Severity
	Message   string
	Context   source.Context
	Recovered bool // not set by the parser: false on every diagnostic it reports, recovered or not
}

func New(code Code, severity Severity, ctx source.Context, message string) Diagnostic {
	return Diagnostic{Code: code, Severity: severity, Context: ctx, Message: message}
}

func (d Diagnostic) String() string {
	line, col := d.Context.StartLine, d.Context.StartCol
	return fmt.Sprintf("%s:%d:%d: %s [%s] %s", docName(d.Context), line, col, d.Severity, d.Code, d.Message)
}

func docName(ctx source.Context) string {
	if ctx.Doc == nil {
		return "<unknown>"
	}
	return ctx.Doc.Name()
}

// Bag accumulates diagnostics during a parse, exposing a simple
// has-errors check (Error or Fatal severity) the way the teacher's Parser.Errors()/HasErrors()
// pair does.
type Bag struct {
	items []Diagnostic
}

func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

func (b *Bag) Addf(code Code, severity Severity, ctx source.Context, format string, args ...any) {
	b.Add(New(code, severity, ctx, fmt.Sprintf(format, args...)))
}

func (b *Bag) All() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SeverityError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int { return len(b.items) }
