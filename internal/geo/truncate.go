package geo

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Precision is the number of decimal places kept in coordinates.
// 6 places is roughly 0.1 m at the equator.
const Precision = 6

// Truncate returns v with every floating point leaf rounded to Precision places.
// Arrays are walked recursively and rebuilt with the same length and order.
// Integers, strings and any other values are returned unchanged.
func Truncate(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = Truncate(item)
		}
		return out

	case json.Number:
		return truncateNumber(x)

	case float64:
		return RoundFloat(x, Precision)

	case float32:
		return float32(RoundFloat(float64(x), Precision))

	default:
		return v
	}
}

// RoundFloat rounds x to the given number of decimal places.
// The exact binary value of x is rounded, ties go to even.
func RoundFloat(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}

	return r
}

// IsIntegerLiteral reports whether a JSON number token is written as an integer.
func IsIntegerLiteral(n json.Number) bool {
	return !strings.ContainsAny(string(n), ".eE")
}

func truncateNumber(n json.Number) json.Number {
	if IsIntegerLiteral(n) {
		return n
	}

	f, err := n.Float64()
	if err != nil {
		// out of float64 range, leave the literal as is
		return n
	}

	return json.Number(FormatFloat(RoundFloat(f, Precision)))
}

// FormatFloat renders f in its shortest round trip form while keeping a
// float spelling: integral values get a ".0" suffix, and very small or very
// large magnitudes use exponent notation (1e-06, 1e+16).
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
