package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SimilarityScorer produces a closeness score in [0,100] for two strings.
// Implementations must be deterministic and symmetric enough for catalog
// reconciliation; the concrete scorer is chosen by injection.
type SimilarityScorer interface {
	Name() string
	Score(a, b string) float64
}

var (
	lowerTR      = cases.Lower(language.Turkish)
	scorePunctRe = regexp.MustCompile(`[^\p{L}\p{N} ]+`)
)

// fold normalizes a string for scoring: Turkish-aware lower-casing,
// punctuation stripped, whitespace collapsed. Dotless ı is collapsed into i
// afterwards since OCR confuses the two constantly.
func fold(s string) string {
	s = lowerTR.String(s)
	s = strings.ReplaceAll(s, "ı", "i")
	s = scorePunctRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// LevenshteinScorer is the plain edit-distance ratio over the folded
// strings, kept as a simple alternative when token reordering should
// not be forgiven.
type LevenshteinScorer struct{}

func (LevenshteinScorer) Name() string { return "levenshtein" }

func (LevenshteinScorer) Score(a, b string) float64 {
	fa, fb := fold(a), fold(b)
	if fa == "" || fb == "" {
		return 0
	}
	return levenshtein.Similarity(fa, fb, nil) * 100
}

// TokenSetScorer is the primary scorer. It tolerates word reordering and
// partial overlap by taking the best of the full-string ratio, the
// sorted-token ratio, and the token-set ratio (shared tokens against each
// side's remainder).
type TokenSetScorer struct{}

func (TokenSetScorer) Name() string { return "token-set" }

func (TokenSetScorer) Score(a, b string) float64 {
	fa, fb := fold(a), fold(b)
	if fa == "" || fb == "" {
		return 0
	}
	if fa == fb {
		return 100
	}

	best := levenshtein.Similarity(fa, fb, nil)

	ta, tb := strings.Fields(fa), strings.Fields(fb)
	sort.Strings(ta)
	sort.Strings(tb)
	sortedA, sortedB := strings.Join(ta, " "), strings.Join(tb, " ")
	if r := levenshtein.Similarity(sortedA, sortedB, nil); r > best {
		best = r
	}

	inter, restA, restB := splitTokenSets(ta, tb)
	if len(inter) > 0 {
		base := strings.Join(inter, " ")
		withA := strings.TrimSpace(base + " " + strings.Join(restA, " "))
		withB := strings.TrimSpace(base + " " + strings.Join(restB, " "))
		for _, pair := range [][2]string{{base, withA}, {base, withB}, {withA, withB}} {
			if r := levenshtein.Similarity(pair[0], pair[1], nil); r > best {
				best = r
			}
		}
	}

	return best * 100
}

// splitTokenSets partitions two sorted token slices into the shared tokens
// and each side's remainder, all deduplicated.
func splitTokenSets(ta, tb []string) (inter, restA, restB []string) {
	seenA := make(map[string]struct{}, len(ta))
	for _, t := range ta {
		seenA[t] = struct{}{}
	}
	seenB := make(map[string]struct{}, len(tb))
	for _, t := range tb {
		seenB[t] = struct{}{}
	}
	emitted := make(map[string]struct{}, len(ta)+len(tb))
	for _, t := range ta {
		if _, dup := emitted[t]; dup {
			continue
		}
		emitted[t] = struct{}{}
		if _, ok := seenB[t]; ok {
			inter = append(inter, t)
		} else {
			restA = append(restA, t)
		}
	}
	for _, t := range tb {
		if _, dup := emitted[t]; dup {
			continue
		}
		emitted[t] = struct{}{}
		restB = append(restB, t)
	}
	return inter, restA, restB
}
