package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// Turkish letters appear alongside ASCII in receipt OCR output, so the
// allow-list spells them out instead of relying on a Unicode class.
var (
	disallowedRe    = regexp.MustCompile(`[^0-9A-Za-zÇĞİÖŞÜçğıöşü\-.,/()+ ]+`)
	trailingPunctRe = regexp.MustCompile(`\s*[,.;:)\]]+\s*$`)
	doubleSpaceRe   = regexp.MustCompile(`\s{2,}`)
	barcodeRunRe    = regexp.MustCompile(`^\d{8,}$`)
)

// Sanitize keeps letters, digits, whitespace and the punctuation set
// -.,/()+ from a candidate name, then collapses whitespace runs.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = disallowedRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// FinalClean trims trailing punctuation and doubled separators left behind
// by column noise.
func FinalClean(s string) string {
	s = trailingPunctRe.ReplaceAllString(s, "")
	s = doubleSpaceRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "..", ".")
	return strings.TrimSpace(s)
}

// LooksLikeName reports whether a line reads as a product name rather than
// a barcode or a numeric column. A pure run of 8+ digits is a barcode; for
// everything else at least 40% of the runes (minimum 3) must be letters.
func LooksLikeName(s string) bool {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 3 {
		return false
	}
	if barcodeRunRe.MatchString(s) {
		return false
	}
	letters := 0
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	need := int(float64(len(runes)) * 0.4)
	if need < 3 {
		need = 3
	}
	return letters >= need
}
