package constants

import "strings"

// Unit is the canonical unit of measure for an extracted invoice line.
type Unit string

// Stable values (these exact strings appear in exported output).
const (
	UnitPiece    Unit = "unit"  // piece count ("AD"/"adet" on Turkish invoices)
	UnitKilogram Unit = "kg"    // weighed goods
	UnitCase     Unit = "koli"  // supplier case
	UnitPack     Unit = "paket" // multi-pack
)

// CanonicalUnit maps a raw OCR unit token onto the canonical set.
// Absent or unrecognized tokens resolve to UnitPiece.
func CanonicalUnit(tok string) Unit {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "kg":
		return UnitKilogram
	case "koli":
		return UnitCase
	case "paket":
		return UnitPack
	default:
		return UnitPiece
	}
}
