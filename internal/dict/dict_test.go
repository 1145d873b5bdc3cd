package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDict builds a small dictionary with a few forms and prefixes.
func newTestDict(t *testing.T) *Dictionary {
	t.Helper()
	b := NewBuilder("test", "/tmp/test-dict")
	b.AddEntry("ספר", Lemma{Text: "ספר", POS: POSNoun, Prefixes: PrefixNoun})
	b.AddEntry("הלך", Lemma{Text: "הלך", POS: POSVerb, Prefixes: PrefixVerb})
	b.AddEntry("ספרים", Lemma{Text: "ספר", POS: POSNoun, Prefixes: PrefixNoun})
	b.AddPrefix("ב", PrefixNoun|PrefixAdjective|PrefixProperName)
	b.AddPrefix("ו", PrefixAll)
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func TestDictionaryLookup(t *testing.T) {
	d := newTestDict(t)

	lemmas, ok := d.Lookup("ספרים")
	require.True(t, ok)
	assert.Equal(t, "ספר", lemmas[0].Text)

	_, ok = d.Lookup("אבגד")
	assert.False(t, ok)
}

func TestDictionaryHasPrefix(t *testing.T) {
	d := newTestDict(t)
	assert.True(t, d.HasPrefix("ספר"))
	assert.False(t, d.HasPrefix("ספרים"))
}

func TestDictionaryPrefixMask(t *testing.T) {
	d := newTestDict(t)

	mask, ok := d.PrefixMask("ב")
	require.True(t, ok)
	assert.NotZero(t, mask&PrefixNoun)
	assert.Zero(t, mask&PrefixVerb)

	_, ok = d.PrefixMask("ג")
	assert.False(t, ok)
}

func TestDictionaryMetadata(t *testing.T) {
	d := newTestDict(t)
	assert.Equal(t, "test", d.Name())
	assert.Equal(t, "/tmp/test-dict", d.SourcePath())
	assert.Equal(t, 3, d.Len())
}

func TestBuilderRejectsEmptyDictionary(t *testing.T) {
	b := NewBuilder("empty", "/nowhere")
	_, err := b.Build()
	assert.Error(t, err)
}

func TestParsePOS(t *testing.T) {
	pos, err := ParsePOS("v")
	require.NoError(t, err)
	assert.Equal(t, POSVerb, pos)

	_, err = ParsePOS("x")
	assert.Error(t, err)
}
