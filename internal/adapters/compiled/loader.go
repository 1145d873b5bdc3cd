// Package compiled implements the enhanced dictionary loader. A compiled
// dictionary is a single bbolt file produced by the HebMorph dictionary
// toolchain: bucket "meta" holds name and version, bucket "entries" maps
// each surface form to a JSON-encoded lemma list, bucket "prefixes" maps
// each prepositional prefix to a JSON-encoded class mask.
package compiled

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/code972/hebmorph/internal/dict"
)

const dictFile = "hebmorph.db"

var (
	bucketMeta     = []byte("meta")
	bucketEntries  = []byte("entries")
	bucketPrefixes = []byte("prefixes")
	keyName        = []byte("name")
	keyVersion     = []byte("version")
)

// lemmaRecord is the JSON form of a lemma inside the entries bucket.
type lemmaRecord struct {
	Text     string `json:"text"`
	POS      string `json:"pos"`
	Prefixes int    `json:"prefixes"`
}

// DefaultPaths returns the standard compiled-dictionary locations, system
// dirs first, then the per-user and working-directory fallbacks.
func DefaultPaths() []string {
	paths := []string{
		filepath.Join("/var/lib/hebmorph", dictFile),
		filepath.Join("/usr/share/hebmorph", dictFile),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".hebmorph", dictFile))
	}
	return append(paths, "./"+dictFile)
}

// Loader loads compiled single-file dictionaries.
type Loader struct {
	paths []string
}

// NewLoader creates the enhanced loader. Passing candidate paths overrides
// the defaults.
func NewLoader(paths ...string) *Loader {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	return &Loader{paths: paths}
}

func (l *Loader) Name() string { return "hebmorph-compiled" }

func (l *Loader) CandidatePaths() []string { return l.paths }

// Load opens the bbolt file at path read-only and materializes the
// dictionary. The file is closed before returning; the dictionary owns no
// handle to it.
func (l *Loader) Load(path string) (*dict.Dictionary, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("compiled: open %s: %w", path, err)
	}
	defer db.Close()

	var d *dict.Dictionary
	err = db.View(func(tx *bolt.Tx) error {
		entries := tx.Bucket(bucketEntries)
		if entries == nil {
			return fmt.Errorf("missing %q bucket", bucketEntries)
		}

		name := "hebmorph"
		if meta := tx.Bucket(bucketMeta); meta != nil {
			if v := meta.Get(keyName); v != nil {
				name = string(v)
			}
		}

		b := dict.NewBuilder(name, path)
		if err := entries.ForEach(func(k, v []byte) error {
			var records []lemmaRecord
			if err := json.Unmarshal(v, &records); err != nil {
				return fmt.Errorf("entry %q: %w", k, err)
			}
			lemmas := make([]dict.Lemma, 0, len(records))
			for _, rec := range records {
				pos, err := dict.ParsePOS(rec.POS)
				if err != nil {
					return fmt.Errorf("entry %q: %w", k, err)
				}
				lemmas = append(lemmas, dict.Lemma{
					Text:     rec.Text,
					POS:      pos,
					Prefixes: dict.PrefixFlag(rec.Prefixes),
				})
			}
			b.AddEntry(string(k), lemmas...)
			return nil
		}); err != nil {
			return err
		}

		if prefixes := tx.Bucket(bucketPrefixes); prefixes != nil {
			if err := prefixes.ForEach(func(k, v []byte) error {
				var mask int
				if err := json.Unmarshal(v, &mask); err != nil {
					return fmt.Errorf("prefix %q: %w", k, err)
				}
				b.AddPrefix(string(k), dict.PrefixFlag(mask))
				return nil
			}); err != nil {
				return err
			}
		}

		var err error
		d, err = b.Build()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("compiled: %s: %w", path, err)
	}
	return d, nil
}
