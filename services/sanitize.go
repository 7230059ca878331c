package services

import (
	"math"
	"regexp"
	"strconv"
)

// nonNumeric matches every character that cannot be part of a decimal
// number. Mirrors the cleanup the dashboard applies to API payloads.
var nonNumeric = regexp.MustCompile(`[^0-9.-]+`)

// CleanNumber coerces a value of unknown shape (the API serves numeric
// fields as either numbers or formatted strings like "1,250,000.50")
// into a float64. Anything unparseable degrades to 0 so aggregations
// never propagate NaN into totals or documents.
func CleanNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return sanitizeFloat(n)
	case float32:
		return sanitizeFloat(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		cleaned := nonNumeric.ReplaceAllString(n, "")
		if cleaned == "" {
			return 0
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return sanitizeFloat(f)
	default:
		return 0
	}
}

func sanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ClampPercent bounds a percentage to [0, 100]. Used only for visual
// bar widths; the underlying health value stays unclamped so an
// over-budget project remains visible as >100%.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
