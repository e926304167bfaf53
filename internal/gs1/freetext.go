package gs1

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Free-text date patterns, tried in order. An invalid calendar hit moves on
// to the next pattern, not the next position in the string.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[./-](\d{1,2})[./-](\d{4})`),
	regexp.MustCompile(`(\d{4})[./-](\d{1,2})[./-](\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})[./-](\d{1,2})[./-](\d{2})`),
}

// expiryKeywordRe covers the Turkish and English expiry hints found on
// labels (SKT/TETT, EXP, "Use by", "Son kullanma").
var expiryKeywordRe = regexp.MustCompile(`(?i)\b(SKT|TETT|EXP|Use\s*by|Son\s*kullanma)\b`)

// HasExpiryKeyword reports whether the text carries an expiry hint. The
// hint does not gate ParseFreeTextDate; date-only label crops are the
// common case and must still parse.
func HasExpiryKeyword(s string) bool {
	return expiryKeywordRe.MatchString(s)
}

// ParseFreeTextDate scans arbitrary label text for a calendar date in
// DD.MM.YYYY, YYYY-MM-DD or DD.MM.YY form (separators . / -), inferring
// century 20YY for two-digit years. Returns nil when no syntactically valid
// date is found.
func ParseFreeTextDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, p := range datePatterns {
		m := p.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		var y, mth, d int
		if len(m[1]) == 4 {
			y, _ = strconv.Atoi(m[1])
			mth, _ = strconv.Atoi(m[2])
			d, _ = strconv.Atoi(m[3])
		} else {
			d, _ = strconv.Atoi(m[1])
			mth, _ = strconv.Atoi(m[2])
			y, _ = strconv.Atoi(m[3])
			if y < 100 {
				y += 2000
			}
		}
		if t, ok := calendarDate(y, mth, d); ok {
			return &t
		}
	}
	return nil
}
