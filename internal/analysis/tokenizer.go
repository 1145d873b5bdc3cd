// Package analysis provides the Hebrew text-analysis components: the
// tokenizer, the token filters, and the analyzer chains that compose them.
// Every component is stateless apart from the shared read-only dictionary
// the lemmatizer closes over.
package analysis

import (
	"unicode"

	"github.com/code972/hebmorph/internal/ports"
)

// Tokenizer splits raw text into Hebrew-aware tokens. Hebrew letters and
// niqqud marks stay in one token together with in-word punctuation (geresh,
// gershayim, ASCII quotes), so acronyms like צה"ל survive as single tokens.
// Runs of digits become Numeric tokens, foreign letter runs NonHebrew, and
// Hebrew mixed with digits or foreign letters Mixed.
type Tokenizer struct{}

// NewTokenizer builds the hebrew tokenizer. It currently takes no settings;
// the parameter keeps the factory signature uniform.
func NewTokenizer(_ ports.Settings) *Tokenizer { return &Tokenizer{} }

func (t *Tokenizer) Tokenize(text string) ports.TokenStream {
	runes := []rune(text)
	var out ports.TokenStream
	pos := 0

	for i := 0; i < len(runes); {
		if !isTokenRune(runes[i]) {
			i++
			continue
		}

		start := i
		var hebrew, digit, foreign bool
		for i < len(runes) {
			r := runes[i]
			if isInWordPunct(r) {
				// Quote characters survive only between token runes.
				if i == start || i+1 >= len(runes) || !isTokenRune(runes[i+1]) {
					break
				}
				i++
				continue
			}
			if !isTokenRune(r) {
				break
			}
			switch {
			case isHebrewLetter(r) || isNiqqud(r):
				hebrew = true
			case unicode.IsDigit(r):
				digit = true
			default:
				foreign = true
			}
			i++
		}

		pos++
		out = append(out, ports.Token{
			Text:     string(runes[start:i]),
			Type:     classify(hebrew, digit, foreign),
			Position: pos,
		})
	}
	return out
}

func classify(hebrew, digit, foreign bool) ports.TokenType {
	switch {
	case hebrew && (digit || foreign):
		return ports.TokenMixed
	case hebrew:
		return ports.TokenHebrew
	case digit && !foreign:
		return ports.TokenNumeric
	default:
		return ports.TokenNonHebrew
	}
}

// isHebrewLetter reports whether r is in the Hebrew letter block.
func isHebrewLetter(r rune) bool { return r >= 0x05D0 && r <= 0x05EA }

// isNiqqud reports whether r is a Hebrew point or cantillation mark.
func isNiqqud(r rune) bool { return r >= 0x0591 && r <= 0x05C7 }

// isInWordPunct reports whether r may appear inside a Hebrew token:
// geresh, gershayim, and their ASCII stand-ins.
func isInWordPunct(r rune) bool {
	return r == '\'' || r == '"' || r == '׳' || r == '״'
}

// isTokenRune reports whether r can belong to a token at all.
func isTokenRune(r rune) bool {
	return isHebrewLetter(r) || isNiqqud(r) || unicode.IsLetter(r) || unicode.IsDigit(r)
}
