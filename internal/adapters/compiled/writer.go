package compiled

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/code972/hebmorph/internal/dict"
)

// Write produces a compiled dictionary file at path. It is the write half of
// the format Loader reads, used by the dictionary build toolchain and by
// tests. Writes are transactional: a crash mid-write cannot leave a
// half-committed file behind an existing one.
func Write(path, name, version string, entries map[string][]dict.Lemma, prefixes map[string]dict.PrefixFlag) error {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return fmt.Errorf("compiled: create %s: %w", path, err)
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		if err := meta.Put(keyName, []byte(name)); err != nil {
			return err
		}
		if err := meta.Put(keyVersion, []byte(version)); err != nil {
			return err
		}

		eb, err := tx.CreateBucketIfNotExists(bucketEntries)
		if err != nil {
			return err
		}
		for form, lemmas := range entries {
			records := make([]lemmaRecord, 0, len(lemmas))
			for _, lm := range lemmas {
				records = append(records, lemmaRecord{
					Text:     lm.Text,
					POS:      string(lm.POS),
					Prefixes: int(lm.Prefixes),
				})
			}
			data, err := json.Marshal(records)
			if err != nil {
				return fmt.Errorf("entry %q: %w", form, err)
			}
			if err := eb.Put([]byte(form), data); err != nil {
				return err
			}
		}

		pb, err := tx.CreateBucketIfNotExists(bucketPrefixes)
		if err != nil {
			return err
		}
		for prefix, mask := range prefixes {
			data, err := json.Marshal(int(mask))
			if err != nil {
				return err
			}
			if err := pb.Put([]byte(prefix), data); err != nil {
				return err
			}
		}
		return nil
	})
}
