package entity

import "github.com/shelfscan/shelfscan/constants"

// ExtractedLine is one item row recovered from invoice OCR text.
// Emitted lines always satisfy Quantity > 0 and 0 < UnitPrice < the
// configured cap; candidates outside those bounds are dropped, not errored.
type ExtractedLine struct {
	Barcode   string         `json:"barcode,omitempty"`
	NameRaw   string         `json:"name_raw"`
	Quantity  float64        `json:"qty"`
	Unit      constants.Unit `json:"unit"`
	UnitPrice float64        `json:"unit_price"`
}

// ResolvedLine pairs an extracted line with its catalog match.
type ResolvedLine struct {
	ExtractedLine
	Match MatchResult `json:"match"`
}
