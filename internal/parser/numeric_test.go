package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want float64
	}{
		{name: "simple number", in: "123.45", want: 123.45},
		{name: "comma decimal", in: "123,45", want: 123.45},
		{name: "TL suffix", in: "123.45 TL", want: 123.45},
		{name: "lira symbol", in: "123.45₺", want: 123.45},
		{name: "embedded spaces", in: "1 234.56", want: 1234.56},
		{name: "garbage", in: "abc", want: 0},
		{name: "empty", in: "", want: 0},
		{name: "thousands-style one", in: "1,000", want: 1},
		{name: "double separator fails", in: "1.234,56", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ParseNumber(tc.in), 1e-9)
		})
	}
}

func TestNormalizeQuantity(t *testing.T) {
	t.Run("snaps near-unity to one", func(t *testing.T) {
		assert.Equal(t, 1.0, NormalizeQuantity(0.95))
		assert.Equal(t, 1.0, NormalizeQuantity(1.05))
		assert.Equal(t, 1.0, NormalizeQuantity(0.999))
		assert.Equal(t, 1.0, NormalizeQuantity(1.0))
	})

	t.Run("keeps everything else", func(t *testing.T) {
		assert.Equal(t, 2.5, NormalizeQuantity(2.5))
		assert.Equal(t, 0.5, NormalizeQuantity(0.5))
		assert.Equal(t, 10.0, NormalizeQuantity(10.0))
	})
}
