package util

import (
	"math"
	"strconv"
)

// ParseIntDefault converts a query string to an int, falling back to def
// when the value is missing or malformed.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Round2 rounds to two decimals for display values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
