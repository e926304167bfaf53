package ocr

import (
	"regexp"
	"strings"
)

var (
	reDate   = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b`)
	reCurr   = regexp.MustCompile(`\btl\b|₺`)
	reAmount = regexp.MustCompile(`\b\d+[.,]\d{2}\b`)
	reTax    = regexp.MustCompile(`\b(kdv|toplam)\b`)
)

// heuristicConfidence estimates OCR reliability from Turkish receipt
// artifacts in the decoded text: a date, a currency marker, decimal amounts
// and the tax/total labels each add to a small base score.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2)
	if reDate.MatchString(txtL) {
		score += 0.2
	}
	if reCurr.MatchString(txtL) {
		score += 0.15
	}
	if reAmount.MatchString(txtL) {
		score += 0.15
	}
	if reTax.MatchString(txtL) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
