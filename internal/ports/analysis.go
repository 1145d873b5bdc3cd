package ports

// TokenType classifies what the tokenizer produced. The lemmatizer only
// touches Hebrew tokens; the exact-suffix filter marks Hebrew and Numeric
// tokens; everything else passes through the chains untouched.
type TokenType int

const (
	TokenHebrew TokenType = iota
	TokenNumeric
	TokenMixed // Hebrew letters mixed with digits or foreign letters
	TokenNonHebrew
)

// Token is a single unit of analyzed text.
type Token struct {
	Text     string
	Type     TokenType
	Position int // 1-based ordinal in the stream

	// Lemma is true when Text is a dictionary lemma emitted by the
	// lemmatizer rather than the surface form from the input.
	Lemma bool
}

// TokenStream is an ordered sequence of tokens flowing through filter chains.
type TokenStream []Token

// Tokenizer splits raw text into a token stream.
type Tokenizer interface {
	Tokenize(text string) TokenStream
}

// TokenFilter transforms a token stream. Filters may drop, rewrite, or
// multiply tokens but never retain state between calls.
type TokenFilter interface {
	Filter(in TokenStream) TokenStream
}

// Analyzer runs a tokenizer and a filter chain as one unit.
type Analyzer interface {
	Analyze(text string) TokenStream
}

// Settings carries per-component configuration supplied by the host at
// factory-invocation time.
type Settings map[string]string

// Factories returned to the host runtime. Each invocation produces a fresh,
// ready-to-use component; the only state shared between invocations is the
// read-only dictionary the factory closes over.
type (
	TokenizerFactory   func(Settings) (Tokenizer, error)
	TokenFilterFactory func(Settings) (TokenFilter, error)
	AnalyzerFactory    func(Settings) (Analyzer, error)
)
