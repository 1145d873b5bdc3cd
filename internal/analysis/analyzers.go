package analysis

import (
	"github.com/code972/hebmorph/internal/dict"
	"github.com/code972/hebmorph/internal/ports"
)

// Analyzer composes the hebrew tokenizer with a filter chain.
type Analyzer struct {
	tokenizer ports.Tokenizer
	filters   []ports.TokenFilter
}

func (a *Analyzer) Analyze(text string) ports.TokenStream {
	ts := a.tokenizer.Tokenize(text)
	for _, f := range a.filters {
		ts = f.Filter(ts)
	}
	return ts
}

// NewIndexingAnalyzer is the hebrew analyzer: tokenize, strip niqqud,
// lemmatize.
func NewIndexingAnalyzer(d *dict.Dictionary, s ports.Settings) *Analyzer {
	return &Analyzer{
		tokenizer: NewTokenizer(s),
		filters: []ports.TokenFilter{
			NewNiqqudFilter(s),
			NewLemmatizerFilter(d, s),
		},
	}
}

// NewQueryAnalyzer is the hebrew_query analyzer. Query-time disambiguation
// beyond the shared lemmatizer is out of scope, so the chain matches the
// indexing analyzer; settings still pass through per invocation.
func NewQueryAnalyzer(d *dict.Dictionary, s ports.Settings) *Analyzer {
	return NewIndexingAnalyzer(d, s)
}

// NewQueryLightAnalyzer is the hebrew_query_light analyzer: like
// hebrew_query but the surface form is kept alongside its lemmas.
func NewQueryLightAnalyzer(d *dict.Dictionary, s ports.Settings) *Analyzer {
	light := make(ports.Settings, len(s)+1)
	for k, v := range s {
		light[k] = v
	}
	light["keepOriginal"] = "true"
	return NewIndexingAnalyzer(d, light)
}

// NewExactAnalyzer is the hebrew_exact analyzer: tokenize, strip niqqud,
// mark terms with the exact suffix. No lemmatization.
func NewExactAnalyzer(_ *dict.Dictionary, s ports.Settings) *Analyzer {
	return &Analyzer{
		tokenizer: NewTokenizer(s),
		filters: []ports.TokenFilter{
			NewNiqqudFilter(s),
			NewAddSuffixFilter(s),
		},
	}
}
