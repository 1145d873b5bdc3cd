package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code972/hebmorph/internal/ports"
)

func TestIndexingAnalyzer(t *testing.T) {
	a := NewIndexingAnalyzer(newTestDict(t), nil)

	// Pointed text tokenizes, loses niqqud, and lemmatizes through a prefix.
	toks := a.Analyze("בספר")
	require.Len(t, toks, 1)
	assert.Equal(t, "ספר", toks[0].Text)
	assert.True(t, toks[0].Lemma)
}

func TestQueryLightAnalyzerKeepsOriginal(t *testing.T) {
	a := NewQueryLightAnalyzer(newTestDict(t), ports.Settings{})

	toks := a.Analyze("ספרים")
	require.Len(t, toks, 2)
	assert.Equal(t, "ספרים", toks[0].Text)
	assert.Equal(t, "ספר", toks[1].Text)
}

func TestExactAnalyzer(t *testing.T) {
	a := NewExactAnalyzer(newTestDict(t), nil)

	toks := a.Analyze("שָׁלוֹם 42")
	require.Len(t, toks, 2)
	// Niqqud stripped, exact marker added, no lemmatization.
	assert.Equal(t, "שלום$", toks[0].Text)
	assert.Equal(t, "42$", toks[1].Text)
	assert.False(t, toks[0].Lemma)
}

func TestQueryAnalyzerMatchesIndexingChain(t *testing.T) {
	d := newTestDict(t)
	idx := NewIndexingAnalyzer(d, nil)
	qry := NewQueryAnalyzer(d, nil)

	text := "והלך בספר אבגד"
	assert.Equal(t, idx.Analyze(text), qry.Analyze(text))
}
