package ports

import "github.com/code972/hebmorph/internal/dict"

// DictionaryLoader is a strategy capable of producing a dictionary from a
// filesystem path and declaring its own ordered list of default locations to
// try. The resolver drives it: it probes the override path first (when
// configured), then the candidates front to back, and stops at the first
// successful load. Implementations are immutable after construction.
type DictionaryLoader interface {
	// Name identifies the loader variant in logs and diagnostics.
	Name() string

	// CandidatePaths returns the default search locations in priority order.
	CandidatePaths() []string

	// Load attempts to read and parse a dictionary at path. The caller has
	// already confirmed the path exists; a returned error means the resource
	// is present but unreadable or malformed.
	Load(path string) (*dict.Dictionary, error)
}
