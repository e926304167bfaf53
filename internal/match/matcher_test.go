package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfscan/shelfscan/internal/entity"
)

func testCatalog() []entity.CatalogEntry {
	return []entity.CatalogEntry{
		{ID: "p1", Name: "İçim Süt 1L Tam Yağlı", Barcode: "8682971085011"},
		{ID: "p2", Name: "Ece Süzme Peynir 500G"},
		{ID: "p3", Name: "Eti Burçak Bisküvi"},
	}
}

func TestMatchExactName(t *testing.T) {
	m := NewMatcher(BuildIndex(testCatalog(), nil), nil, 0, nil)

	res := m.Match("İçim Süt 1L Tam Yağlı")
	assert.Equal(t, "p1", res.ProductID)
	assert.GreaterOrEqual(t, res.Score, 95.0)
}

func TestMatchReorderedName(t *testing.T) {
	m := NewMatcher(BuildIndex(testCatalog(), nil), nil, 0, nil)

	res := m.Match("SÜZME PEYNİR ECE 500G")
	assert.Equal(t, "p2", res.ProductID)
	assert.GreaterOrEqual(t, res.Score, 95.0)
}

func TestMatchBelowCutoff(t *testing.T) {
	m := NewMatcher(BuildIndex(testCatalog(), nil), nil, 85, nil)

	res := m.Match("Completely Unrelated Text")
	assert.Empty(t, res.ProductID)
	assert.Zero(t, res.Score)
}

func TestMatchEmptyInputs(t *testing.T) {
	m := NewMatcher(BuildIndex(testCatalog(), nil), nil, 0, nil)
	assert.Equal(t, entity.MatchResult{}, m.Match(""))
	assert.Equal(t, entity.MatchResult{}, m.Match("   "))

	empty := NewMatcher(BuildIndex(nil, nil), nil, 0, nil)
	assert.Equal(t, entity.MatchResult{}, empty.Match("İçim Süt"))
}

func TestMatchBestCandidateWins(t *testing.T) {
	catalog := []entity.CatalogEntry{
		{ID: "p1", Name: "İçim Süt"},
		{ID: "p2", Name: "İçim Süt 1L"},
		{ID: "p3", Name: "İçim Süt 1L Tam Yağlı"},
	}
	m := NewMatcher(BuildIndex(catalog, nil), LevenshteinScorer{}, 0, nil)

	res := m.Match("İçim Süt 1L")
	assert.Equal(t, "p2", res.ProductID)
	assert.Equal(t, 100.0, res.Score)
}

func TestMatchTieKeepsFirstCatalogEntry(t *testing.T) {
	// The token-set scorer gives both candidates a full score; the earlier
	// catalog entry must win on every run.
	catalog := []entity.CatalogEntry{
		{ID: "p1", Name: "İçim Süt"},
		{ID: "p2", Name: "İçim Süt 1L"},
	}
	m := NewMatcher(BuildIndex(catalog, nil), TokenSetScorer{}, 0, nil)

	for i := 0; i < 10; i++ {
		res := m.Match("İçim Süt 1L")
		require.Equal(t, "p1", res.ProductID)
		require.Equal(t, 100.0, res.Score)
	}
}

func TestResolve(t *testing.T) {
	m := NewMatcher(BuildIndex(testCatalog(), nil), nil, 0, nil)

	t.Run("barcode wins outright", func(t *testing.T) {
		res := m.Resolve(entity.ExtractedLine{Barcode: "8682971085011", NameRaw: "GARBLED NAME"})
		assert.Equal(t, entity.MatchResult{ProductID: "p1", Score: 100}, res)
	})

	t.Run("unknown barcode falls back to name", func(t *testing.T) {
		res := m.Resolve(entity.ExtractedLine{Barcode: "0000000000000", NameRaw: "Ece Süzme Peynir 500G"})
		assert.Equal(t, "p2", res.ProductID)
	})

	t.Run("no barcode no match", func(t *testing.T) {
		res := m.Resolve(entity.ExtractedLine{NameRaw: "Completely Unrelated Text"})
		assert.Empty(t, res.ProductID)
	})
}

func TestResolveWithoutIndex(t *testing.T) {
	m := NewMatcher(nil, nil, 0, nil)

	res := m.Resolve(entity.ExtractedLine{Barcode: "8682971085011", NameRaw: "İçim Süt"})
	assert.Equal(t, entity.MatchResult{}, res)
	assert.Equal(t, entity.MatchResult{}, m.Match("İçim Süt"))
}
