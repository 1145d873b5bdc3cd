// Package plugin wires dictionary resolution to the host-facing component
// factories. Construction runs the whole flow exactly once: grant the
// privilege token, select a loader, resolve a dictionary, publish it in the
// shared registry. A construction error is a hard startup failure; no
// factory map is ever exposed without a loaded dictionary.
package plugin

import (
	"fmt"

	"github.com/code972/hebmorph/internal/analysis"
	"github.com/code972/hebmorph/internal/dict"
	"github.com/code972/hebmorph/internal/ports"
	"github.com/code972/hebmorph/internal/privilege"
	"github.com/code972/hebmorph/internal/resolver"
)

// Config carries the construction-time settings.
type Config struct {
	// DictPath overrides dictionary resolution: when non-empty, the resolver
	// tries it before any of the loader's own candidate paths.
	DictPath string

	// Loader pins a specific loader variant. Nil means automatic selection
	// (enhanced when discoverable, baseline otherwise).
	Loader ports.DictionaryLoader
}

// Plugin exposes the analysis components to the host runtime.
type Plugin struct {
	registry *dict.Registry
}

// New constructs the plugin. It fails with *resolver.NotFoundError when no
// dictionary can be loaded; the host must treat that as fatal, with no
// partial or degraded mode.
func New(cfg Config) (*Plugin, error) {
	tok := privilege.Grant()

	loader := cfg.Loader
	if loader == nil {
		loader = resolver.SelectLoader(tok)
	}

	d, err := resolver.Resolve(tok, cfg.DictPath, loader)
	if err != nil {
		return nil, err
	}

	reg := &dict.Registry{}
	if err := reg.Set(d); err != nil {
		return nil, err
	}
	return &Plugin{registry: reg}, nil
}

// Dictionary returns the shared dictionary handle.
func (p *Plugin) Dictionary() *dict.Dictionary { return p.registry.Get() }

// Tokenizers maps logical tokenizer names to factories.
func (p *Plugin) Tokenizers() map[string]ports.TokenizerFactory {
	return map[string]ports.TokenizerFactory{
		"hebrew": func(s ports.Settings) (ports.Tokenizer, error) {
			return analysis.NewTokenizer(s), nil
		},
	}
}

// TokenFilters maps logical token-filter names to factories. Each factory
// is a pure closure over the shared dictionary and its own settings.
func (p *Plugin) TokenFilters() map[string]ports.TokenFilterFactory {
	d := p.registry.Get()
	return map[string]ports.TokenFilterFactory{
		"hebrew_lemmatizer": func(s ports.Settings) (ports.TokenFilter, error) {
			return analysis.NewLemmatizerFilter(d, s), nil
		},
		"niqqud": func(s ports.Settings) (ports.TokenFilter, error) {
			return analysis.NewNiqqudFilter(s), nil
		},
		"add_suffix": func(s ports.Settings) (ports.TokenFilter, error) {
			return analysis.NewAddSuffixFilter(s), nil
		},
	}
}

// Analyzers maps logical analyzer names to factories.
func (p *Plugin) Analyzers() map[string]ports.AnalyzerFactory {
	d := p.registry.Get()
	return map[string]ports.AnalyzerFactory{
		"hebrew": func(s ports.Settings) (ports.Analyzer, error) {
			return analysis.NewIndexingAnalyzer(d, s), nil
		},
		"hebrew_query": func(s ports.Settings) (ports.Analyzer, error) {
			return analysis.NewQueryAnalyzer(d, s), nil
		},
		"hebrew_query_light": func(s ports.Settings) (ports.Analyzer, error) {
			return analysis.NewQueryLightAnalyzer(d, s), nil
		},
		"hebrew_exact": func(s ports.Settings) (ports.Analyzer, error) {
			return analysis.NewExactAnalyzer(d, s), nil
		},
	}
}

// Analyzer builds a named analyzer directly; convenience for in-process
// hosts like the CLI and the diagnostics server.
func (p *Plugin) Analyzer(name string, s ports.Settings) (ports.Analyzer, error) {
	factory, ok := p.Analyzers()[name]
	if !ok {
		return nil, fmt.Errorf("plugin: unknown analyzer %q", name)
	}
	return factory(s)
}
