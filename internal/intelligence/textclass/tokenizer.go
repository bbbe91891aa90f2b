// Package textclass implements the conversational text classifier: it
// tokenizes free-form user text and partitions the tokens into candidate HSN
// codes and rejected noise.  The tokenizer itself is a capability interface;
// the rule-based default below is sufficient for the classifier's contract
// (token text, punctuation flag, numeric-likeness flag) and can be replaced
// by any richer NLP tokenizer that agrees on those flags.
package textclass

import (
	"strings"
	"unicode"
)

// Token is a single unit produced by a Tokenizer.
type Token struct {
	// Text is the raw token text, original case preserved.
	Text string

	// IsPunct marks tokens that consist purely of punctuation or symbols.
	IsPunct bool

	// IsNumericLike marks tokens that look numeric.  The classifier applies
	// its own strict digit test before accepting a candidate, so this flag is
	// advisory.
	IsNumericLike bool
}

// Tokenizer splits text into annotated tokens.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// RuleTokenizer is the default Tokenizer: whitespace splitting with leading
// and trailing punctuation peeled off into separate punctuation tokens, the
// way a full NLP tokenizer would separate "1101." into "1101" and ".".
type RuleTokenizer struct{}

// NewRuleTokenizer returns the default rule-based tokenizer.
func NewRuleTokenizer() *RuleTokenizer {
	return &RuleTokenizer{}
}

func isPunctRune(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func isPunctToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isPunctRune(r) {
			return false
		}
	}
	return true
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',':
			// decimal / thousands separators
		default:
			return false
		}
	}
	return digits > 0
}

func newToken(text string) Token {
	return Token{
		Text:          text,
		IsPunct:       isPunctToken(text),
		IsNumericLike: looksNumeric(text),
	}
}

// Tokenize splits text on whitespace and separates boundary punctuation from
// each word.  Interior punctuation (apostrophes, decimal points) is left in
// place.
func (t *RuleTokenizer) Tokenize(text string) []Token {
	var tokens []Token
	for _, field := range strings.Fields(text) {
		runes := []rune(field)

		start := 0
		for start < len(runes) && isPunctRune(runes[start]) {
			start++
		}
		end := len(runes)
		for end > start && isPunctRune(runes[end-1]) {
			end--
		}

		for _, r := range runes[:start] {
			tokens = append(tokens, newToken(string(r)))
		}
		if start < end {
			tokens = append(tokens, newToken(string(runes[start:end])))
		}
		for _, r := range runes[end:] {
			tokens = append(tokens, newToken(string(r)))
		}
	}
	return tokens
}
