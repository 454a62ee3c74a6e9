package printer

import "strings"

// formatString re-escapes decoded (a ConstantWrapper of ConstString's
// Value field — lexer/strings.go already unescaped it, spec §4.4) into a
// quoted string literal. The delimiter is whichever of ' or " appears
// less often in decoded, ties breaking to " (spec §4.4 "quote-frequency
// tie-breaking"); a raw backtick-delimited template literal never
// reaches this function (the printer passes templates through verbatim,
// see visitor.go).
func formatString(decoded string, settings Settings) string {
	quote := byte('"')
	if settings.MinifyCode {
		singles := strings.Count(decoded, "'")
		doubles := strings.Count(decoded, "\"")
		if singles < doubles {
			quote = '\''
		}
	}

	var b strings.Builder
	b.WriteByte(quote)
	prevWasLt := false
	for _, r := range decoded {
		switch {
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\v':
			b.WriteString(`\v`)
		case r == ' ' || r == ' ':
			// illegal raw line terminators inside a JS string literal
			// even though they're invisible on most terminals
			b.WriteString(escapeUnicode(r))
		case r < 0x20:
			b.WriteString(escapeHex(r))
		case r == '/' && settings.InlineSafeStrings && prevWasLt:
			b.WriteString(`\/`)
		case r > 0x7e && settings.AlwaysEscapeNonASCII:
			b.WriteString(escapeUnicode(r))
		default:
			b.WriteRune(r)
		}
		prevWasLt = r == '<'
	}
	b.WriteByte(quote)

	out := b.String()
	if settings.InlineSafeStrings {
		out = neutralizeCDATAEnd(out)
	}
	return out
}

func escapeHex(r rune) string {
	const hexdigits = "0123456789abcdef"
	return "\\x" + string([]byte{hexdigits[(r>>4)&0xf], hexdigits[r&0xf]})
}

func escapeUnicode(r rune) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 6)
	out[0], out[1] = '\\', 'u'
	for i := 0; i < 4; i++ {
		shift := uint(12 - 4*i)
		out[2+i] = hexdigits[(r>>shift)&0xf]
	}
	return string(out)
}

// neutralizeCDATAEnd breaks up a literal "]]>" so a string containing
// one can still be embedded inside an XML CDATA section (spec §4.4
// "inline-safe strings").
func neutralizeCDATAEnd(s string) string {
	return strings.ReplaceAll(s, "]]>", `]]\>`)
}
