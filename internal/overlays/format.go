// SPDX-License-Identifier: MIT
package overlays

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Counter notations.
const (
	NotationStandard   = "standard"
	NotationCompact    = "compact"
	NotationScientific = "scientific"
)

// NumberFormat controls how a counter value is rendered.
type NumberFormat struct {
	Notation   string
	Separator  bool
	Decimals   int
	Abbreviate bool
	Prefix     string
	Suffix     string
}

var printer = message.NewPrinter(language.English)

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatCount renders v for display: 1,234,567 in standard notation, 1.2M
// in compact notation or with Abbreviate, 1.23e6 in scientific notation.
func FormatCount(v float64, f NumberFormat) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	decimals := min(max(f.Decimals, 0), 10)

	var s string
	switch {
	case f.Notation == NotationScientific:
		s = scientific(v, decimals)
	case f.Notation == NotationCompact || f.Abbreviate:
		s = compact(v, decimals, f.Separator)
	default:
		s = standard(v, decimals, f.Separator)
	}
	return f.Prefix + s + f.Suffix
}

func standard(v float64, decimals int, grouped bool) string {
	if !grouped {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}

func compact(v float64, decimals int, grouped bool) string {
	abs := math.Abs(v)
	for _, u := range compactUnits {
		if abs < u.size {
			continue
		}
		d := decimals
		if d == 0 {
			d = 1
		}
		s := strconv.FormatFloat(v/u.size, 'f', d, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s + u.suffix
	}
	return standard(v, decimals, grouped)
}

func scientific(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'e', decimals, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "e" + strconv.Itoa(n)
}
