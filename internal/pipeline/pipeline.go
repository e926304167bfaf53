// Package pipeline orchestrates one document through extraction and
// catalog reconciliation. The stages themselves are pure; the pipeline only
// adds run identity and logging around them.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shelfscan/shelfscan/internal/entity"
	"github.com/shelfscan/shelfscan/internal/match"
	"github.com/shelfscan/shelfscan/internal/parser"
)

// Config holds thresholds for the reconciliation stage.
type Config struct {
	ScoreCutoff float64 // fuzzy-match acceptance score, default 80
}

type Pipeline struct {
	logger    *slog.Logger
	cfg       Config
	extractor *parser.Extractor
	scorer    match.SimilarityScorer
}

func New(cfg Config, extractor *parser.Extractor, scorer match.SimilarityScorer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		extractor = parser.NewExtractor(parser.Config{}, logger)
	}
	if scorer == nil {
		scorer = match.TokenSetScorer{}
	}
	return &Pipeline{logger: logger, cfg: cfg, extractor: extractor, scorer: scorer}
}

// Result is the outcome of one pipeline run. Confidence is carried through
// from the source document untouched.
type Result struct {
	Lines      []entity.ResolvedLine `json:"lines"`
	Confidence float32               `json:"confidence"`
}

// Run extracts item lines from the document and resolves each against the
// catalog. A fresh name index is built per call; the catalog itself is only
// read. Malformed text degrades to an empty line list, never an error;
// cancellation is the only way to get a partial result.
func (p *Pipeline) Run(ctx context.Context, doc entity.Document, catalog []entity.CatalogEntry) (uuid.UUID, Result) {
	runID := uuid.New()

	lines := p.extractor.Extract(doc)
	idx := match.BuildIndex(catalog, p.logger)
	matcher := match.NewMatcher(idx, p.scorer, p.cfg.ScoreCutoff, p.logger)

	res := Result{Lines: make([]entity.ResolvedLine, 0, len(lines)), Confidence: doc.Confidence}
	matched := 0
	for _, line := range lines {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline run cancelled", "run_id", runID, "resolved", len(res.Lines))
			return runID, res
		default:
		}

		m := matcher.Resolve(line)
		if m.ProductID != "" {
			matched++
		}
		res.Lines = append(res.Lines, entity.ResolvedLine{ExtractedLine: line, Match: m})
	}

	p.logger.Info("pipeline run complete",
		"run_id", runID, "lines", len(res.Lines), "matched", matched, "catalog_size", idx.Len())
	return runID, res
}
