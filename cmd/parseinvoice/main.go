// parseinvoice reads raw invoice OCR text from a file (or stdin with "-"),
// extracts item lines, optionally reconciles them against a product catalog
// and prints the result as JSON. With -xlsx the lines are also written as a
// workbook for manual review.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/shelfscan/shelfscan/internal/catalog"
	"github.com/shelfscan/shelfscan/internal/common"
	"github.com/shelfscan/shelfscan/internal/entity"
	"github.com/shelfscan/shelfscan/internal/export"
	"github.com/shelfscan/shelfscan/internal/match"
	"github.com/shelfscan/shelfscan/internal/parser"
	"github.com/shelfscan/shelfscan/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	catalogPath := flag.String("catalog", "", "catalog JSON file to reconcile against")
	xlsxPath := flag.String("xlsx", "", "write resolved lines to this XLSX file")
	confidence := flag.Float64("confidence", 0, "engine-reported OCR confidence (0-1)")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "parseinvoice [-catalog file] [-xlsx out] [-confidence c] <text-file|->")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		logger.Error("read input", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	var entries []entity.CatalogEntry
	if *catalogPath != "" {
		entries, err = catalog.Load(*catalogPath)
		if err != nil {
			logger.Error("load catalog", "path", *catalogPath, "error", err)
			os.Exit(1)
		}
	}

	extractor := parser.NewExtractor(parser.Config{
		MaxLines:     cfg.Parser.MaxLines,
		MaxUnitPrice: cfg.Parser.MaxUnitPrice,
	}, logger)

	var scorer match.SimilarityScorer = match.TokenSetScorer{}
	if cfg.Match.Scorer == "levenshtein" {
		scorer = match.LevenshteinScorer{}
	}

	p := pipeline.New(pipeline.Config{ScoreCutoff: cfg.Match.ScoreCutoff}, extractor, scorer, logger)
	doc := entity.Document{Text: text, Confidence: float32(*confidence)}
	runID, res := p.Run(context.Background(), doc, entries)

	if *xlsxPath != "" {
		b, err := export.LinesXLSX(res.Lines, logger)
		if err != nil {
			logger.Error("export xlsx", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, b, 0o644); err != nil {
			logger.Error("write xlsx", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		logger.Info("xlsx written", "run_id", runID, "path", *xlsxPath)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
