package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSetScorer(t *testing.T) {
	s := TokenSetScorer{}

	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 100.0, s.Score("Milk 1L", "Milk 1L"))
	})

	t.Run("case and punctuation folded", func(t *testing.T) {
		assert.Equal(t, 100.0, s.Score("İÇİM SÜT, 1/1", "içim süt 1 1"))
	})

	t.Run("word order ignored", func(t *testing.T) {
		assert.Equal(t, 100.0, s.Score("Tam Yağlı Süt", "Süt Tam Yağlı"))
	})

	t.Run("token subset scores full", func(t *testing.T) {
		assert.Equal(t, 100.0, s.Score("İçim Süt 1L Tam Yağlı", "İçim Süt"))
	})

	t.Run("dotless i collapsed", func(t *testing.T) {
		assert.Equal(t, 100.0, s.Score("SAKLAMA KABI", "Saklama Kabi"))
	})

	t.Run("unrelated strings score low", func(t *testing.T) {
		assert.Less(t, s.Score("Completely Unrelated Text", "İçim Süt 1L"), 50.0)
	})

	t.Run("empty input scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, s.Score("", "İçim Süt"))
		assert.Equal(t, 0.0, s.Score("İçim Süt", "   "))
	})
}

func TestLevenshteinScorer(t *testing.T) {
	s := LevenshteinScorer{}

	t.Run("identical after fold", func(t *testing.T) {
		assert.Equal(t, 100.0, s.Score("İÇİM SÜT", "içim süt"))
	})

	t.Run("one-character slip stays high", func(t *testing.T) {
		assert.Greater(t, s.Score("İçim Süt", "İçim Sût"), 80.0)
	})

	t.Run("unrelated strings score low", func(t *testing.T) {
		assert.Less(t, s.Score("Completely Unrelated Text", "İçim Süt"), 50.0)
	})
}
