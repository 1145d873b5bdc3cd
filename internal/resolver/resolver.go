package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/code972/hebmorph/internal/dict"
	"github.com/code972/hebmorph/internal/ports"
	"github.com/code972/hebmorph/internal/privilege"
)

// NotFoundError reports that no candidate produced a dictionary. Attempted
// lists every path that was tried, override first when one was configured.
type NotFoundError struct {
	Loader    string
	Attempted []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not load any dictionary with loader %s (tried: %s)",
		e.Loader, strings.Join(e.Attempted, ", "))
}

// Resolve drives the search-and-load sequence. A non-empty override path is
// tried first and short-circuits everything else on success; otherwise the
// loader's candidate paths are tried in declared order and the first
// successful load wins; there is no scoring and no merging of partial
// dictionaries.
//
// Per attempt: a missing path is skipped silently; a path that exists but
// fails to load is logged and skipped. When every attempt fails, Resolve
// returns a *NotFoundError and the caller must treat construction as failed
// outright: no analysis component may run without a dictionary.
func Resolve(tok privilege.Token, overridePath string, loader ports.DictionaryLoader) (*dict.Dictionary, error) {
	if !tok.Valid() {
		return nil, privilege.ErrNoPrivilege
	}

	var attempted []string

	if overridePath != "" {
		attempted = append(attempted, overridePath)
		slog.Info("trying to load dictionary from configured path", "loader", loader.Name(), "path", overridePath)
		if d := tryLoad(tok, loader, overridePath); d != nil {
			slog.Info("dictionary loaded", "loader", loader.Name(), "path", overridePath)
			return d, nil
		}
	}

	for _, path := range loader.CandidatePaths() {
		attempted = append(attempted, path)
		slog.Info("trying to load dictionary", "loader", loader.Name(), "path", path)
		if d := tryLoad(tok, loader, path); d != nil {
			slog.Info("dictionary loaded", "loader", loader.Name(), "path", path)
			return d, nil
		}
	}

	return nil, &NotFoundError{Loader: loader.Name(), Attempted: attempted}
}

// tryLoad performs one privileged existence check and load attempt. A nil
// result means the attempt failed; individual failures are never fatal here.
func tryLoad(tok privilege.Token, loader ports.DictionaryLoader, path string) *dict.Dictionary {
	d, err := privilege.Do(tok, func() (*dict.Dictionary, error) {
		if _, err := os.Stat(path); err != nil {
			return nil, nil // absent candidate: skip
		}
		return loader.Load(path)
	})
	if err != nil {
		slog.Error("dictionary load failed", "loader", loader.Name(), "path", path, "error", err)
		return nil
	}
	return d
}
