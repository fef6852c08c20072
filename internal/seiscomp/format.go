package seiscomp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FormatNumber renders a property value as decimal text.
// Integral values are written without a fraction, strings are copied verbatim.
func FormatNumber(v any) (string, error) {
	switch x := v.(type) {
	case float64:
		return formatFloat(x), nil
	case float32:
		return formatFloat(float64(x)), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case json.Number:
		return x.String(), nil
	case string:
		return x, nil
	default:
		return "", fmt.Errorf("expected number, got %T", v)
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
