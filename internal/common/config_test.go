package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 200, cfg.Parser.MaxLines)
	assert.Equal(t, 10000.0, cfg.Parser.MaxUnitPrice)
	assert.Equal(t, 80.0, cfg.Match.ScoreCutoff)
	assert.Equal(t, "token-set", cfg.Match.Scorer)
	assert.Equal(t, "tesseract", cfg.OCR.Tesseract)
	assert.Equal(t, "tur+eng", cfg.OCR.Language)
	assert.Equal(t, 6, cfg.OCR.PSM)
	assert.Equal(t, 1, cfg.OCR.OEM)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PARSER_MAX_LINES", "50")
	t.Setenv("MATCH_SCORE_CUTOFF", "90.5")
	t.Setenv("MATCH_SCORER", "levenshtein")
	t.Setenv("TESSERACT_LANG", "tur")

	cfg := LoadConfig()
	assert.Equal(t, 50, cfg.Parser.MaxLines)
	assert.Equal(t, 90.5, cfg.Match.ScoreCutoff)
	assert.Equal(t, "levenshtein", cfg.Match.Scorer)
	assert.Equal(t, "tur", cfg.OCR.Language)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("PARSER_MAX_LINES", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 200, cfg.Parser.MaxLines)
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero max lines", mutate: func(c *Config) { c.Parser.MaxLines = 0 }},
		{name: "negative price bound", mutate: func(c *Config) { c.Parser.MaxUnitPrice = -1 }},
		{name: "cutoff over 100", mutate: func(c *Config) { c.Match.ScoreCutoff = 150 }},
		{name: "unknown scorer", mutate: func(c *Config) { c.Match.Scorer = "jaro" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := LoadConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
