package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrieLookupMissing(t *testing.T) {
	tr := newTrie()
	lemmas, isPrefix, exists := tr.lookup("שלום")
	assert.Nil(t, lemmas)
	assert.False(t, isPrefix)
	assert.False(t, exists)
}

func TestTrieInsertAndLookup(t *testing.T) {
	tr := newTrie()
	tr.insert("ספר", []Lemma{{Text: "ספר", POS: POSNoun, Prefixes: PrefixNoun}})

	lemmas, isPrefix, exists := tr.lookup("ספר")
	assert.True(t, exists)
	assert.False(t, isPrefix)
	assert.Len(t, lemmas, 1)
	assert.Equal(t, "ספר", lemmas[0].Text)
}

func TestTriePrefixVsEntry(t *testing.T) {
	tr := newTrie()
	tr.insert("ספר", []Lemma{{Text: "ספר"}})
	tr.insert("ספרים", []Lemma{{Text: "ספר"}})

	// "ספר" is both an entry and a prefix of "ספרים".
	_, isPrefix, exists := tr.lookup("ספר")
	assert.True(t, exists)
	assert.True(t, isPrefix)

	// "ספרי" is only a prefix.
	lemmas, isPrefix, exists := tr.lookup("ספרי")
	assert.Nil(t, lemmas)
	assert.True(t, isPrefix)
	assert.False(t, exists)
}

func TestTrieAppendsLemmasForSameForm(t *testing.T) {
	tr := newTrie()
	tr.insert("ספר", []Lemma{{Text: "ספר", POS: POSNoun}})
	tr.insert("ספר", []Lemma{{Text: "ספר", POS: POSVerb}})

	lemmas, _, exists := tr.lookup("ספר")
	assert.True(t, exists)
	assert.Len(t, lemmas, 2)
	assert.Equal(t, 1, tr.size) // one distinct form
}

func TestTrieIgnoresEmptyForm(t *testing.T) {
	tr := newTrie()
	tr.insert("", []Lemma{{Text: "x"}})
	assert.Equal(t, 0, tr.size)

	_, _, exists := tr.lookup("")
	assert.False(t, exists)
}
