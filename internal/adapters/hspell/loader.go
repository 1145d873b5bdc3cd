// Package hspell implements the baseline open dictionary loader. It reads
// the hspell wordlist layout: a data directory containing words.txt and
// prefixes.txt, each optionally gzip-compressed under a .gz suffix.
//
// words.txt lines are form<TAB>lemma<TAB>pos<TAB>mask; prefixes.txt lines
// are prefix<TAB>mask. Blank lines and lines starting with # are ignored.
package hspell

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/code972/hebmorph/internal/dict"
)

const (
	wordsFile    = "words.txt"
	prefixesFile = "prefixes.txt"
)

// DefaultPaths mirrors the locations hspell data packages install to, plus
// the conventional in-plugin locations, in priority order.
func DefaultPaths() []string {
	return []string{
		"/var/lib/hspell-data-files",
		"/usr/share/hspell-data-files",
		"./plugins/analysis-hebrew/hspell-data-files",
		"./hspell-data-files",
	}
}

// Loader loads hspell-format data directories.
type Loader struct {
	paths []string
}

// NewLoader creates the baseline loader. Passing candidate paths overrides
// the defaults; with no arguments the standard hspell locations are used.
func NewLoader(paths ...string) *Loader {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	return &Loader{paths: paths}
}

func (l *Loader) Name() string { return "hspell" }

func (l *Loader) CandidatePaths() []string { return l.paths }

// Load parses the data directory at path into a dictionary.
func (l *Loader) Load(path string) (*dict.Dictionary, error) {
	b := dict.NewBuilder("hspell", path)
	if err := readWords(path, b); err != nil {
		return nil, err
	}
	if err := readPrefixes(path, b); err != nil {
		return nil, err
	}
	return b.Build()
}

func readWords(dir string, b *dict.Builder) error {
	rc, err := openData(dir, wordsFile)
	if err != nil {
		return err
	}
	defer rc.Close()

	return scanLines(rc, wordsFile, func(n int, fields []string) error {
		if len(fields) != 4 {
			return fmt.Errorf("hspell: %s line %d: want 4 fields, got %d", wordsFile, n, len(fields))
		}
		pos, err := dict.ParsePOS(fields[2])
		if err != nil {
			return fmt.Errorf("hspell: %s line %d: %w", wordsFile, n, err)
		}
		mask, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("hspell: %s line %d: bad mask %q", wordsFile, n, fields[3])
		}
		b.AddEntry(fields[0], dict.Lemma{
			Text:     fields[1],
			POS:      pos,
			Prefixes: dict.PrefixFlag(mask),
		})
		return nil
	})
}

func readPrefixes(dir string, b *dict.Builder) error {
	rc, err := openData(dir, prefixesFile)
	if err != nil {
		return err
	}
	defer rc.Close()

	return scanLines(rc, prefixesFile, func(n int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("hspell: %s line %d: want 2 fields, got %d", prefixesFile, n, len(fields))
		}
		mask, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("hspell: %s line %d: bad mask %q", prefixesFile, n, fields[1])
		}
		b.AddPrefix(fields[0], dict.PrefixFlag(mask))
		return nil
	})
}

// scanLines feeds non-blank, non-comment lines to fn as tab-split fields.
func scanLines(r io.Reader, name string, fn func(n int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(n, strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("hspell: read %s: %w", name, err)
	}
	return nil
}

// openData opens name under dir, preferring the plain file and falling back
// to the gzip-compressed variant.
func openData(dir, name string) (io.ReadCloser, error) {
	plain := filepath.Join(dir, name)
	if f, err := os.Open(plain); err == nil {
		return f, nil
	}
	f, err := os.Open(plain + ".gz")
	if err != nil {
		return nil, fmt.Errorf("hspell: %s: neither %s nor %s.gz readable", dir, name, name)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("hspell: %s.gz: %w", plain, err)
	}
	return &gzipFile{gz: gz, f: f}, nil
}

type gzipFile struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipFile) Close() error {
	g.gz.Close()
	return g.f.Close()
}
