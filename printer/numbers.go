package printer

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders the numeric value carried by raw (a ConstantWrapper
// of ConstNumber's Raw field — the verbatim lexeme, since lexer/numbers.go
// never pre-normalizes, spec §4.4) in whichever of decimal, scientific, or
// hex notation is shortest, or verbatim when mayHaveIssue marks raw as a
// legacy-octal/overflow form whose re-parse could change its value.
func formatNumber(raw string, mayHaveIssue, minify bool) string {
	if mayHaveIssue || !minify {
		return raw
	}
	f, isInt, neg := parseNumericLiteral(raw)
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == 0 {
		if neg && math.Signbit(f) {
			return "-0"
		}
		return "0"
	}

	candidates := []string{decimalForm(f, isInt)}
	if s := scientificForm(f); s != "" {
		candidates = append(candidates, s)
	}
	if isInt {
		if s := hexForm(f); s != "" {
			candidates = append(candidates, s)
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// parseNumericLiteral decodes a raw numeric lexeme (decimal, ".5"-style,
// "1e10"-style, or 0x/0o/0b-radix integer, plus bare legacy octal) into
// its float64 value. isInt reports whether the source had no fractional
// or exponent part (eligible for hex-form re-encoding).
func parseNumericLiteral(raw string) (value float64, isInt, neg bool) {
	s := raw
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		n, _ := strconv.ParseUint(s[2:], 16, 64)
		value, isInt = float64(n), true
	case strings.HasPrefix(lower, "0o"):
		n, _ := strconv.ParseUint(s[2:], 8, 64)
		value, isInt = float64(n), true
	case strings.HasPrefix(lower, "0b"):
		n, _ := strconv.ParseUint(s[2:], 2, 64)
		value, isInt = float64(n), true
	case len(s) > 1 && s[0] == '0' && isAllDigits(s[1:]) && !strings.ContainsAny(s, ".eE") && isAllOctalDigits(s[1:]):
		n, _ := strconv.ParseUint(s[1:], 8, 64)
		value, isInt = float64(n), true
	default:
		f, _ := strconv.ParseFloat(s, 64)
		value = f
		isInt = !strings.ContainsAny(s, ".eE")
	}
	if neg {
		value = -value
	}
	return value, isInt, neg
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isAllOctalDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '7' {
			return false
		}
	}
	return len(s) > 0
}

// decimalForm renders f the way JS's Number#toString would for typical
// magnitudes: no unnecessary trailing zero, no leading "0" duplication,
// and a bare integer literal (no ".0") when isInt holds.
func decimalForm(f float64, isInt bool) string {
	if isInt && f == math.Trunc(f) && math.Abs(f) < 1e21 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		return trimLeadingZero(s)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return trimLeadingZero(s)
}

// scientificForm renders f in exponential notation using JS's lowercase
// "e" with no "+" on positive exponents and no leading zero in the
// mantissa (e.g. "5e2" not "5e+02", ".5e2" not "0.5e+2"), returning ""
// when exponential notation isn't a meaningful alternative (f == 0 is
// handled by the caller before this is reached).
func scientificForm(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	parts := strings.SplitN(s, "e", 2)
	if len(parts) != 2 {
		return ""
	}
	mantissa, exp := parts[0], parts[1]
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	mantissa = trimLeadingZero(mantissa)
	return mantissa + "e" + exp
}

// hexForm renders f (known integral) as a "0x"-prefixed literal.
func hexForm(f float64) string {
	if f < 0 || f != math.Trunc(f) || f > float64(math.MaxInt64) {
		return ""
	}
	return "0x" + strconv.FormatUint(uint64(f), 16)
}

// trimLeadingZero turns "0.5" into ".5" and "-0.5" into "-.5" (spec
// §4.4's numeric minification), leaving "0" and integers untouched.
func trimLeadingZero(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if strings.HasPrefix(s, "0.") && len(s) > 2 {
		s = s[1:]
	}
	if strings.HasSuffix(s, ".0") {
		s = s[:len(s)-2]
	}
	if neg {
		s = "-" + s
	}
	return s
}
