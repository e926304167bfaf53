// Package extract declares the OCR collaborator contract. The engine is a
// black box to the rest of the system: it returns raw text plus a
// confidence score, and everything downstream treats both as opaque input.
package extract

import (
	"context"
	"time"
)

// TextExtractor turns an image file into raw OCR text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextResult, error)
}

// TextResult is the raw output of one OCR engine run.
type TextResult struct {
	Text       string
	Engine     string // "tesseract" | future fallback engines
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32 // 0..1, engine- or heuristic-reported
}

// Merge picks the better of two engine results, preferring the primary when
// it produced at least as much text as the secondary.
func Merge(primary, secondary TextResult) TextResult {
	if primary.Text != "" && len(primary.Text) >= len(secondary.Text) {
		return primary
	}
	return secondary
}
