package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var nonNumericRe = regexp.MustCompile(`[^0-9.]`)

// ParseNumber converts a locale-formatted numeric token into a float.
// Currency markers and embedded spaces are stripped and the comma is treated
// as the decimal separator ("47,50" -> 47.5). Returns 0 when nothing
// parseable remains; malformed tokens never produce an error.
func ParseNumber(tok string) float64 {
	s := strings.TrimSpace(tok)
	s = strings.ReplaceAll(s, "TL", "")
	s = strings.ReplaceAll(s, "₺", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = nonNumericRe.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// NormalizeQuantity snaps near-unity quantities to exactly 1. OCR renders
// "1" as "1,000" or "0.999" often enough that anything in [0.9, 1.1] is
// taken to mean one.
func NormalizeQuantity(v float64) float64 {
	if v >= 0.9 && v <= 1.1 {
		return 1.0
	}
	return v
}
