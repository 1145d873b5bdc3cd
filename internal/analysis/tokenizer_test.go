package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code972/hebmorph/internal/ports"
)

func tokenize(text string) ports.TokenStream {
	return NewTokenizer(nil).Tokenize(text)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("  ,.! \n"))
}

func TestTokenizeHebrewWords(t *testing.T) {
	toks := tokenize("ספר חדש")
	require.Len(t, toks, 2)
	assert.Equal(t, "ספר", toks[0].Text)
	assert.Equal(t, ports.TokenHebrew, toks[0].Type)
	assert.Equal(t, 1, toks[0].Position)
	assert.Equal(t, "חדש", toks[1].Text)
	assert.Equal(t, 2, toks[1].Position)
}

func TestTokenizeKeepsNiqqud(t *testing.T) {
	toks := tokenize("שָׁלוֹם")
	require.Len(t, toks, 1)
	assert.Equal(t, "שָׁלוֹם", toks[0].Text)
	assert.Equal(t, ports.TokenHebrew, toks[0].Type)
}

func TestTokenizeAcronym(t *testing.T) {
	// Gershayim inside a word stays part of the token.
	toks := tokenize(`צה"ל גדול`)
	require.Len(t, toks, 2)
	assert.Equal(t, `צה"ל`, toks[0].Text)
	assert.Equal(t, ports.TokenHebrew, toks[0].Type)
}

func TestTokenizeQuoteAtWordEdgeIsDropped(t *testing.T) {
	toks := tokenize(`"ספר"`)
	require.Len(t, toks, 1)
	assert.Equal(t, "ספר", toks[0].Text)
}

func TestTokenizeNumericAndForeign(t *testing.T) {
	toks := tokenize("hello ספר 123")
	require.Len(t, toks, 3)
	assert.Equal(t, ports.TokenNonHebrew, toks[0].Type)
	assert.Equal(t, ports.TokenHebrew, toks[1].Type)
	assert.Equal(t, ports.TokenNumeric, toks[2].Type)
	assert.Equal(t, "123", toks[2].Text)
}

func TestTokenizeMixed(t *testing.T) {
	toks := tokenize("ספר123")
	require.Len(t, toks, 1)
	assert.Equal(t, ports.TokenMixed, toks[0].Type)
}
