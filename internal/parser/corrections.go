package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperTR upper-cases with Turkish casing rules (i -> İ, ı -> I); the plain
// strings.ToUpper mapping garbles dotted/dotless I in product names.
var upperTR = cases.Upper(language.Turkish)

// corrections is the hand-tuned OCR misread table, applied in order on the
// upper-cased name. Order matters: later rules may depend on earlier ones
// having already run.
var corrections = []struct{ from, to string }{
	{"FCE", "ECE"},
	{"TOLU", "10LU"},
	{"PMHOUSE", "EMHOUSE"},
	{"SAKI MA", "SAKLAMA"},
	{"KARI", "KABI"},
	{"DIKD", "DIKD."},
	{"PR20B/", "PR20B "},
	{"KIE TIE", "KİLİTLİ"},
	{"BU20", "BUZD"},
	{"POST TI", "POŞETİ"},
	{"DELLA", "BELLA"},
	{" AT 0", ""}, // trailing column noise
	{" BQS9GU E", ""},
	{" HIN.", " HİND."},
	{" BIT.", " BİT."},
	{" 6 LI", " 6LI"},
	{" 10 LU", " 10LU"},
}

// Correct sanitizes a candidate name, upper-cases it, applies the OCR
// misread table and re-sanitizes the result. Sanitizing first matters:
// stray disallowed characters inside a known misread would otherwise keep
// the table from hitting. When correction collapses the name below 3 runes
// it reverts to the sanitized, uncorrected input.
func Correct(s string) string {
	sanitized := Sanitize(s)
	u := upperTR.String(sanitized)
	for _, c := range corrections {
		u = strings.ReplaceAll(u, c.from, c.to)
	}
	u = Sanitize(u)
	if len([]rune(u)) < 3 {
		return sanitized
	}
	return u
}
