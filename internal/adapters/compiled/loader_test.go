package compiled

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/code972/hebmorph/internal/dict"
)

func testEntries() map[string][]dict.Lemma {
	return map[string][]dict.Lemma{
		"ספר": {
			{Text: "ספר", POS: dict.POSNoun, Prefixes: dict.PrefixNoun},
			{Text: "ספר", POS: dict.POSVerb, Prefixes: dict.PrefixVerb},
		},
		"ירושלים": {
			{Text: "ירושלים", POS: dict.POSProperName, Prefixes: dict.PrefixProperName},
		},
	}
}

func testPrefixes() map[string]dict.PrefixFlag {
	return map[string]dict.PrefixFlag{
		"ב": dict.PrefixNoun | dict.PrefixProperName,
		"ו": dict.PrefixAll,
	}
}

// writeTestDict compiles a dictionary file into a temp dir.
func writeTestDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), dictFile)
	require.NoError(t, Write(path, "hebmorph-test", "1.0", testEntries(), testPrefixes()))
	return path
}

func TestLoaderIdentity(t *testing.T) {
	l := NewLoader()
	assert.Equal(t, "hebmorph-compiled", l.Name())
	assert.Equal(t, DefaultPaths(), l.CandidatePaths())
}

func TestWriteLoadRoundtrip(t *testing.T) {
	path := writeTestDict(t)

	d, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hebmorph-test", d.Name())
	assert.Equal(t, path, d.SourcePath())
	assert.Equal(t, 2, d.Len())

	lemmas, ok := d.Lookup("ספר")
	require.True(t, ok)
	assert.Len(t, lemmas, 2)

	mask, ok := d.PrefixMask("ו")
	require.True(t, ok)
	assert.Equal(t, dict.PrefixAll, mask)
}

func TestLoadRejectsMissingEntriesBucket(t *testing.T) {
	path := filepath.Join(t.TempDir(), dictFile)
	db, err := bolt.Open(path, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucket(bucketMeta)
		return err
	}))
	require.NoError(t, db.Close())

	_, err = NewLoader().Load(path)
	assert.ErrorContains(t, err, "missing")
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), dictFile)
	require.NoError(t, os.WriteFile(path, []byte("this is not a bbolt database"), 0644))

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedEntryRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), dictFile)
	db, err := bolt.Open(path, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		eb, err := tx.CreateBucket(bucketEntries)
		if err != nil {
			return err
		}
		return eb.Put([]byte("ספר"), []byte("{broken json"))
	}))
	require.NoError(t, db.Close())

	_, err = NewLoader().Load(path)
	assert.ErrorContains(t, err, "entry")
}

func TestLoadRejectsEmptyDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), dictFile)
	require.NoError(t, Write(path, "empty", "1.0", nil, nil))

	_, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "no entries")
}
