package analysis

import (
	"strings"

	"github.com/code972/hebmorph/internal/dict"
	"github.com/code972/hebmorph/internal/ports"
)

// NiqqudFilter strips Hebrew points and cantillation marks from Hebrew and
// Mixed tokens. Pointed and unpointed spellings of the same word must index
// to the same term.
type NiqqudFilter struct{}

func NewNiqqudFilter(_ ports.Settings) *NiqqudFilter { return &NiqqudFilter{} }

func (f *NiqqudFilter) Filter(in ports.TokenStream) ports.TokenStream {
	out := make(ports.TokenStream, 0, len(in))
	for _, tok := range in {
		if tok.Type == ports.TokenHebrew || tok.Type == ports.TokenMixed {
			tok.Text = strings.Map(func(r rune) rune {
				if isNiqqud(r) {
					return -1
				}
				return r
			}, tok.Text)
		}
		out = append(out, tok)
	}
	return out
}

// DefaultExactSuffix marks terms indexed for exact (non-lemmatized) search.
const DefaultExactSuffix = "$"

// AddSuffixFilter appends the exact-match marker to Hebrew and Numeric
// tokens so exact terms occupy a separate term space from lemmas.
type AddSuffixFilter struct {
	suffix string
}

// NewAddSuffixFilter builds the add_suffix filter. The "suffix" setting
// overrides the default marker.
func NewAddSuffixFilter(s ports.Settings) *AddSuffixFilter {
	suffix := s["suffix"]
	if suffix == "" {
		suffix = DefaultExactSuffix
	}
	return &AddSuffixFilter{suffix: suffix}
}

func (f *AddSuffixFilter) Filter(in ports.TokenStream) ports.TokenStream {
	out := make(ports.TokenStream, 0, len(in))
	for _, tok := range in {
		if tok.Type == ports.TokenHebrew || tok.Type == ports.TokenNumeric {
			tok.Text += f.suffix
		}
		out = append(out, tok)
	}
	return out
}

// LemmatizerFilter replaces Hebrew tokens with their dictionary lemmas. A
// token found directly emits one token per distinct lemma. On a miss the
// filter tries to strip a prepositional prefix, longest first, and admits
// the remainder's lemmas when the prefix's allowed-class mask intersects the
// lemma's class mask. Tokens still unmatched pass through unchanged:
// out-of-vocabulary words are tolerated, never dropped.
type LemmatizerFilter struct {
	dict         *dict.Dictionary
	keepOriginal bool
}

// NewLemmatizerFilter builds the hebrew_lemmatizer filter over the shared
// dictionary. Setting "keepOriginal" to "true" additionally emits the
// surface form ahead of its lemmas.
func NewLemmatizerFilter(d *dict.Dictionary, s ports.Settings) *LemmatizerFilter {
	return &LemmatizerFilter{dict: d, keepOriginal: s["keepOriginal"] == "true"}
}

func (f *LemmatizerFilter) Filter(in ports.TokenStream) ports.TokenStream {
	var out ports.TokenStream
	for _, tok := range in {
		if tok.Type != ports.TokenHebrew {
			out = append(out, tok)
			continue
		}

		lemmas := f.lemmasFor(tok.Text)
		if len(lemmas) == 0 {
			out = append(out, tok)
			continue
		}

		if f.keepOriginal {
			out = append(out, tok)
		}
		seen := make(map[string]bool, len(lemmas))
		for _, lm := range lemmas {
			if seen[lm.Text] {
				continue
			}
			seen[lm.Text] = true
			out = append(out, ports.Token{
				Text:     lm.Text,
				Type:     tok.Type,
				Position: tok.Position,
				Lemma:    true,
			})
		}
	}
	return out
}

// lemmasFor looks word up directly, then retries with a prepositional
// prefix stripped. Longer prefixes are tried first so ו+ב splits beat a
// bare ו when both are possible.
func (f *LemmatizerFilter) lemmasFor(word string) []dict.Lemma {
	if lemmas, ok := f.dict.Lookup(word); ok {
		return lemmas
	}

	runes := []rune(word)
	for i := len(runes) - 1; i >= 1; i-- {
		mask, ok := f.dict.PrefixMask(string(runes[:i]))
		if !ok {
			continue
		}
		rest, found := f.dict.Lookup(string(runes[i:]))
		if !found {
			continue
		}
		var admitted []dict.Lemma
		for _, lm := range rest {
			if lm.Prefixes&mask != 0 {
				admitted = append(admitted, lm)
			}
		}
		if len(admitted) > 0 {
			return admitted
		}
	}
	return nil
}
