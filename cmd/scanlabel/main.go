// scanlabel parses a product-label string: GS1 element fields first, then a
// free-text date scan when AI(17) is absent. Prints ExpiryInfo as JSON.
package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shelfscan/shelfscan/internal/gs1"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage", "cmd", "scanlabel <label text>")
		os.Exit(2)
	}
	text := strings.Join(os.Args[1:], " ")

	info := gs1.Parse(text)
	if info.ExpiryDate == nil {
		info.ExpiryDate = gs1.ParseFreeTextDate(text)
	}
	if gs1.HasExpiryKeyword(text) {
		logger.Debug("expiry keyword present", "text", text)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
