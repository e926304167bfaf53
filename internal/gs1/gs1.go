// Package gs1 reads expiry metadata from GS1 element strings and from free
// text on product labels. Both parsers are best-effort: malformed input
// yields absent fields, never an error.
package gs1

import (
	"regexp"
	"time"

	"github.com/shelfscan/shelfscan/internal/entity"
)

// GS1 Application Identifiers: (17) expiry date YYMMDD, (10) batch/lot.
var (
	ai17Re = regexp.MustCompile(`\(17\)\s*(\d{6})`)
	ai10Re = regexp.MustCompile(`\(10\)\s*([A-Za-z0-9._-]+)`)
)

// Parse extracts the AI(17) expiry date and AI(10) lot code from a GS1
// element string such as "(01)08690000000012(17)260912(10)LOT123". Either,
// both, or neither field may be present. Two-digit years are read as 20YY.
func Parse(s string) entity.ExpiryInfo {
	var info entity.ExpiryInfo
	if s == "" {
		return info
	}

	if m := ai17Re.FindStringSubmatch(s); m != nil {
		yy := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
		mm := int(m[1][2]-'0')*10 + int(m[1][3]-'0')
		dd := int(m[1][4]-'0')*10 + int(m[1][5]-'0')
		if t, ok := calendarDate(2000+yy, mm, dd); ok {
			info.ExpiryDate = &t
		}
	}

	if m := ai10Re.FindStringSubmatch(s); m != nil {
		info.LotCode = m[1]
	}
	return info
}

// calendarDate builds a UTC date and rejects out-of-range day/month values,
// which time.Date would otherwise silently normalize.
func calendarDate(y, m, d int) (time.Time, bool) {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
