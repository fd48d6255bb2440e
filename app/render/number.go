package render

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Number formats v with English thousands separators and at most two
// fractional digits: 1234567 -> "1,234,567", 3.7 -> "3.7".
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	p := message.NewPrinter(language.English)

	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return p.Sprintf("%d", int64(v))
	}

	s := p.Sprintf("%.2f", v)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Currency groups the amount in raw and keeps its leading currency symbol.
// When raw carries no symbol, defaultSymbol is used. Anything that does not
// parse as an amount yields "".
func Currency(raw string, defaultSymbol string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	start := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsDigit(r) || r == '-' || r == '.'
	})
	if start < 0 {
		return ""
	}

	symbol := strings.TrimSpace(s[:start])
	amount := strings.ReplaceAll(s[start:], ",", "")

	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return ""
	}

	if symbol == "" {
		symbol = defaultSymbol
	}

	return symbol + Number(v)
}
