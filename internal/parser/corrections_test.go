package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrect(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "FCE misread", in: "FCE SÜZME PEYNİR", want: "ECE SÜZME PEYNİR"},
		{name: "TOLU misread", in: "TOLU PAKET", want: "10LU PAKET"},
		{name: "PMHOUSE misread", in: "PMHOUSE MUTFAK", want: "EMHOUSE MUTFAK"},
		{name: "KARI misread", in: "SAKLAMA KARI", want: "SAKLAMA KABI"},
		{name: "DIKD gains dot", in: "SAKLAMA KABI DIKD", want: "SAKLAMA KABI DIKD."},
		{name: "trailing AT 0 noise", in: "XYZ ÜRÜN AT 0", want: "XYZ ÜRÜN"},
		{name: "split 6 LI", in: "HAVLU 6 LI", want: "HAVLU 6LI"},
		{name: "upper-cases output", in: "ece süzme", want: "ECE SÜZME"},
		{name: "noise inside misread still corrected", in: "SAKI| MA POŞ", want: "SAKLAMA POŞ"},
		{name: "noise inside split 10 LU still corrected", in: "PEÇETE 10@ LU", want: "PEÇETE 10LU"},
		{name: "clean name untouched", in: "İÇİM SÜT TAM YAĞLI", want: "İÇİM SÜT TAM YAĞLI"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Correct(tc.in))
		})
	}
}

func TestCorrectRevertsWhenTooShort(t *testing.T) {
	// Correction strips the trailing noise run and leaves a single rune, so
	// the sanitized input comes back instead.
	assert.Equal(t, "X BQS9GU E", Correct("X BQS9GU E"))
}
