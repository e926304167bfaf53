package match

import (
	"log/slog"
	"strings"

	"github.com/shelfscan/shelfscan/constants"
	"github.com/shelfscan/shelfscan/internal/entity"
)

// Matcher resolves extracted lines against one NameIndex. It holds no
// mutable state and is safe for concurrent use over a shared index.
type Matcher struct {
	index  *NameIndex
	scorer SimilarityScorer
	cutoff float64
	logger *slog.Logger
}

func NewMatcher(index *NameIndex, scorer SimilarityScorer, cutoff float64, logger *slog.Logger) *Matcher {
	if scorer == nil {
		scorer = TokenSetScorer{}
	}
	if cutoff <= 0 {
		cutoff = constants.DefaultScoreCutoff
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{index: index, scorer: scorer, cutoff: cutoff, logger: logger}
}

// Match scores nameRaw against every indexed name and returns the single
// best candidate when it reaches the cutoff. Empty input or an empty index
// yields the zero no-match result. Ties keep the first name in catalog
// insertion order.
func (m *Matcher) Match(nameRaw string) entity.MatchResult {
	if strings.TrimSpace(nameRaw) == "" || m.index == nil || m.index.Len() == 0 {
		return entity.MatchResult{}
	}

	bestScore := -1.0
	bestName := ""
	for _, name := range m.index.Names() {
		if s := m.scorer.Score(nameRaw, name); s > bestScore {
			bestScore = s
			bestName = name
		}
	}
	if bestScore < m.cutoff {
		return entity.MatchResult{}
	}
	id, _ := m.index.ProductID(bestName)
	m.logger.Debug("fuzzy match accepted",
		"name_raw", nameRaw, "matched", bestName, "score", bestScore, "scorer", m.scorer.Name())
	return entity.MatchResult{ProductID: id, Score: bestScore}
}

// Resolve identifies an extracted line: an exact barcode hit wins outright,
// otherwise the raw name goes through fuzzy matching. An absent catalog
// yields the zero no-match result, never a panic.
func (m *Matcher) Resolve(line entity.ExtractedLine) entity.MatchResult {
	if m.index == nil {
		return entity.MatchResult{}
	}
	if line.Barcode != "" {
		if id, ok := m.index.BarcodeID(line.Barcode); ok {
			return entity.MatchResult{ProductID: id, Score: 100}
		}
	}
	return m.Match(line.NameRaw)
}
