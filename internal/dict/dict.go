// Package dict holds the in-memory Hebrew dictionary shared by every
// analysis component. A Dictionary is built once by a loader, published
// through the Registry, and never mutated afterwards; all component
// factories read the same instance for the process lifetime.
package dict

import (
	"errors"
	"fmt"
)

// PartOfSpeech is the grammatical category of a lemma.
type PartOfSpeech rune

const (
	POSNoun       PartOfSpeech = 'n'
	POSVerb       PartOfSpeech = 'v'
	POSAdjective  PartOfSpeech = 'a'
	POSProperName PartOfSpeech = 'p'
	POSNumeral    PartOfSpeech = 'm'
	POSUnknown    PartOfSpeech = '-'
)

// ParsePOS maps the single-letter part-of-speech code used by the
// dictionary formats to a PartOfSpeech.
func ParsePOS(s string) (PartOfSpeech, error) {
	switch s {
	case "n":
		return POSNoun, nil
	case "v":
		return POSVerb, nil
	case "a":
		return POSAdjective, nil
	case "p":
		return POSProperName, nil
	case "m":
		return POSNumeral, nil
	case "-":
		return POSUnknown, nil
	}
	return POSUnknown, fmt.Errorf("dict: unknown part-of-speech code %q", s)
}

// PrefixFlag is a bitmask over word classes. The prefix table maps each
// prepositional prefix to the classes it may precede; each lemma carries the
// classes it belongs to. A prefix split is admitted when the two masks
// intersect.
type PrefixFlag int

const (
	PrefixNoun PrefixFlag = 1 << iota
	PrefixVerb
	PrefixAdjective
	PrefixProperName
	PrefixNumeral

	PrefixAll = PrefixNoun | PrefixVerb | PrefixAdjective | PrefixProperName | PrefixNumeral
)

// Lemma is one dictionary reading of a surface form.
type Lemma struct {
	Text string
	POS  PartOfSpeech

	// Prefixes holds the word classes this reading belongs to, matched
	// against a prefix's allowed-class mask during lemmatization.
	Prefixes PrefixFlag
}

// Dictionary is the opaque, immutable linguistic resource. Construct one
// through a Builder; afterwards it is safe for unsynchronized concurrent
// reads.
type Dictionary struct {
	name       string
	sourcePath string
	entries    *trie
	prefixes   map[string]PrefixFlag
}

// Lookup returns the lemmas for an exact surface form.
func (d *Dictionary) Lookup(form string) ([]Lemma, bool) {
	lemmas, _, exists := d.entries.lookup(form)
	if !exists {
		return nil, false
	}
	return lemmas, true
}

// HasPrefix reports whether some dictionary entry extends form.
func (d *Dictionary) HasPrefix(form string) bool {
	_, isPrefix, _ := d.entries.lookup(form)
	return isPrefix
}

// PrefixMask returns the allowed-class mask for a prepositional prefix.
func (d *Dictionary) PrefixMask(prefix string) (PrefixFlag, bool) {
	mask, ok := d.prefixes[prefix]
	return mask, ok
}

// Len returns the number of distinct surface forms.
func (d *Dictionary) Len() int { return d.entries.size }

// Name returns the dictionary name recorded by the loader.
func (d *Dictionary) Name() string { return d.name }

// SourcePath returns the filesystem path the dictionary was loaded from.
func (d *Dictionary) SourcePath() string { return d.sourcePath }

// Builder accumulates entries during a load. Build finalizes the dictionary;
// the builder must not be used afterwards.
type Builder struct {
	d *Dictionary
}

// NewBuilder starts a dictionary with the given name and source path.
func NewBuilder(name, sourcePath string) *Builder {
	return &Builder{d: &Dictionary{
		name:       name,
		sourcePath: sourcePath,
		entries:    newTrie(),
		prefixes:   map[string]PrefixFlag{},
	}}
}

// AddEntry records lemmas for a surface form.
func (b *Builder) AddEntry(form string, lemmas ...Lemma) {
	b.d.entries.insert(form, lemmas)
}

// AddPrefix records a prepositional prefix and its allowed-class mask.
func (b *Builder) AddPrefix(prefix string, mask PrefixFlag) {
	if prefix == "" {
		return
	}
	b.d.prefixes[prefix] = mask
}

// Build returns the finished dictionary. A dictionary with no entries is
// malformed input, not an empty resource.
func (b *Builder) Build() (*Dictionary, error) {
	if b.d.entries.size == 0 {
		return nil, errors.New("dict: dictionary has no entries")
	}
	return b.d, nil
}
