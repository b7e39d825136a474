package helpers

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a dimension typed by a supplier. Comma decimals are
// accepted, anything unparsable or non-finite is zero.
func ParseNumber(value string) float64 {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", "."))
	if value == "" {
		return 0
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}
	return number
}
