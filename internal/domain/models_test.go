package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguage_Value(t *testing.T) {
	v, err := Language("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = LanguageFrench.Value()
	require.NoError(t, err)
	assert.Equal(t, "FRENCH", v)
}

func TestLanguage_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want Language
	}{
		{"null", nil, ""},
		{"string", "SPANISH", LanguageSpanish},
		{"bytes", []byte("ENGLISH"), LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LanguageFrench
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, l)
		})
	}

	var l Language
	assert.Error(t, l.Scan(42))
}
