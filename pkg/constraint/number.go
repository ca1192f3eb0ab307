package constraint

import (
	"math"
	"strconv"
)

// ParseNumber parses a strict ASCII decimal: an optional leading '-', one or
// more digits, and optionally '.' followed by one or more digits. Whitespace,
// '+', exponents, grouping separators and values that overflow to infinity
// are rejected.
func ParseNumber(raw string) (float64, bool) {
	if !isDecimal(raw) {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

func isDecimal(raw string) bool {
	i := 0
	if i < len(raw) && raw[i] == '-' {
		i++
	}

	intDigits := 0
	for i < len(raw) && isDigit(raw[i]) {
		i++
		intDigits++
	}
	if intDigits == 0 {
		return false
	}
	if i == len(raw) {
		return true
	}

	if raw[i] != '.' {
		return false
	}
	i++

	fracDigits := 0
	for i < len(raw) && isDigit(raw[i]) {
		i++
		fracDigits++
	}
	return fracDigits > 0 && i == len(raw)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
