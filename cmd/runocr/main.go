// runocr runs tesseract on one image and prints the raw text plus the
// heuristic confidence as JSON. The output feeds parseinvoice or scanlabel.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shelfscan/shelfscan/internal/common"
	"github.com/shelfscan/shelfscan/internal/ocr"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <image>")
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Language:    cfg.OCR.Language,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)

	res, err := extractor.Extract(ctx, os.Args[1])
	if err != nil {
		logger.Error("ocr failed", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	out := struct {
		Text       string  `json:"text"`
		Engine     string  `json:"engine"`
		Confidence float32 `json:"confidence"`
	}{res.Text, res.Engine, res.Confidence}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
