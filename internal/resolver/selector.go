// Package resolver selects a dictionary loader and drives the
// search-and-load sequence that produces the process-wide dictionary.
package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"

	"github.com/code972/hebmorph/internal/adapters/compiled"
	"github.com/code972/hebmorph/internal/adapters/hspell"
	"github.com/code972/hebmorph/internal/ports"
	"github.com/code972/hebmorph/internal/privilege"
)

// wellKnownLib is the base name of the native HebMorph runtime library whose
// presence marks the enhanced compiled loader as available.
const wellKnownLib = "libhebmorph"

// versionSymbol must be exported by the native library; resolving it proves
// the file is a real HebMorph runtime and not a name collision.
const versionSymbol = "hebmorph_dict_version"

// errNotPresent distinguishes "the library simply isn't installed" (normal,
// expected) from a library that was found but could not be initialized.
var errNotPresent = errors.New("native runtime not present")

// libExtension returns the shared library extension for the current platform.
func libExtension() string {
	if runtime.GOOS == "darwin" {
		return ".dylib"
	}
	return ".so"
}

// defaultProbePaths lists the directories searched for the native runtime.
func defaultProbePaths() []string {
	paths := []string{
		"/usr/local/lib/hebmorph",
		"/usr/lib/hebmorph",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".hebmorph", "lib"))
	}
	return paths
}

// SelectLoader chooses between the enhanced compiled loader and the baseline
// hspell loader. The enhanced variant is selected only when the native
// HebMorph runtime library can be located and opened; absence is normal and
// any initialization failure is logged and degrades to the baseline.
// SelectLoader itself never fails.
func SelectLoader(tok privilege.Token) ports.DictionaryLoader {
	return selectLoader(tok, defaultProbePaths())
}

func selectLoader(tok privilege.Token, probePaths []string) ports.DictionaryLoader {
	loader, err := privilege.Do(tok, func() (ports.DictionaryLoader, error) {
		return probeEnhanced(probePaths)
	})
	if err != nil {
		if !errors.Is(err, errNotPresent) {
			slog.Error("unable to initialize the enhanced dictionary loader", "error", err)
		}
		slog.Info("defaulting to hspell dictionary loader")
		return hspell.NewLoader()
	}
	slog.Info("dictionary loader available", "loader", loader.Name())
	return loader
}

// probeEnhanced looks for the native runtime library and, when present,
// constructs the compiled loader. A returned error means the caller falls
// back to the baseline; it never aborts startup.
func probeEnhanced(probePaths []string) (ports.DictionaryLoader, error) {
	libName := wellKnownLib + libExtension()

	var libPath string
	for _, dir := range probePaths {
		candidate := filepath.Join(dir, libName)
		if _, err := os.Stat(candidate); err == nil {
			libPath = candidate
			break
		}
	}
	if libPath == "" {
		return nil, errNotPresent
	}

	handle, err := purego.Dlopen(libPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", libPath, err)
	}
	if _, err := purego.Dlsym(handle, versionSymbol); err != nil {
		return nil, fmt.Errorf("%s: missing symbol %s: %w", libPath, versionSymbol, err)
	}
	return compiled.NewLoader(), nil
}
