package questions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatNativeFloat prints the shortest decimal that round-trips to v.
// Values in [1e-4, 1e16) use positional notation and always carry a
// fractional part ("78.0"); others use exponent notation ("1e+16").
func formatNativeFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func formatLines[V Number](entries []Entry[V], format func(V) string) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Key + ": " + format(e.Value)
	}
	return lines
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
