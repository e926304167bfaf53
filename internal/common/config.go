package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Parser ParserConfig
	Match  MatchConfig
	OCR    OCRConfig
}

// ParserConfig holds extraction thresholds.
type ParserConfig struct {
	MaxLines     int
	MaxUnitPrice float64
}

// MatchConfig holds reconciliation thresholds.
type MatchConfig struct {
	ScoreCutoff float64
	Scorer      string // "token-set" | "levenshtein"
}

// OCRConfig holds tesseract-related configuration.
type OCRConfig struct {
	Tesseract   string
	Language    string
	PSM         int
	OEM         int
	TessdataDir string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxLines:     getEnvAsInt("PARSER_MAX_LINES", 200),
			MaxUnitPrice: getEnvAsFloat("PARSER_MAX_UNIT_PRICE", 10000),
		},
		Match: MatchConfig{
			ScoreCutoff: getEnvAsFloat("MATCH_SCORE_CUTOFF", 80),
			Scorer:      getEnv("MATCH_SCORER", "token-set"),
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_PATH", "tesseract"),
			Language:    getEnv("TESSERACT_LANG", "tur+eng"),
			PSM:         getEnvAsInt("TESSERACT_PSM", 6),
			OEM:         getEnvAsInt("TESSERACT_OEM", 1),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Parser.MaxLines <= 0 {
		return NewAppError("CONFIG_ERROR", "PARSER_MAX_LINES must be positive", ErrInvalidInput)
	}
	if c.Parser.MaxUnitPrice <= 0 {
		return NewAppError("CONFIG_ERROR", "PARSER_MAX_UNIT_PRICE must be positive", ErrInvalidInput)
	}
	if c.Match.ScoreCutoff <= 0 || c.Match.ScoreCutoff > 100 {
		return NewAppError("CONFIG_ERROR", "MATCH_SCORE_CUTOFF must be in (0,100]", ErrInvalidInput)
	}
	if c.Match.Scorer != "token-set" && c.Match.Scorer != "levenshtein" {
		return NewAppError("CONFIG_ERROR", "MATCH_SCORER must be token-set or levenshtein", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
