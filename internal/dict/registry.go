package dict

import (
	"errors"
	"sync"
)

// Registry is the process-wide slot for the loaded dictionary: written once
// by the resolution flow at construction time, read by every component
// factory afterwards. The stored value is immutable, so post-construction
// reads need no synchronization.
type Registry struct {
	once sync.Once
	d    *Dictionary
}

// Set stores d. Only the first call succeeds; later calls return an error
// and leave the stored value untouched.
func (r *Registry) Set(d *Dictionary) error {
	if d == nil {
		return errors.New("dict: registry rejects nil dictionary")
	}
	stored := false
	r.once.Do(func() {
		r.d = d
		stored = true
	})
	if !stored {
		return errors.New("dict: registry already holds a dictionary")
	}
	return nil
}

// Get returns the stored dictionary. Calling Get before Set has completed is
// a contract violation and returns nil; in the intended flow factories are
// only reachable after construction finished, so this never happens.
func (r *Registry) Get() *Dictionary { return r.d }
