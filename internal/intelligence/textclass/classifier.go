package textclass

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/turtacn/hsn-advisor/internal/domain/hsn"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
)

// rejectInvalidFormat is the rejection string attached to a numeric token of
// the wrong length.  Part of the observable reply format.
const rejectInvalidFormat = "%s (invalid format - must be 2,4,6, or 8 digits)"

// separatorReplacer turns separator punctuation into spaces before
// tokenization, so that codes glued to commas, slashes, etc. ("1101,0202")
// come out as standalone tokens.
var separatorReplacer = strings.NewReplacer(
	",", " ",
	"，", " ", // full-width comma
	";", " ",
	"/", " ",
	"+", " ",
	"|", " ",
	"-", " ",
)

// Classification is the partition of an input sentence: deduplicated
// candidate codes and deduplicated rejected tokens.  Both slices are sorted
// ascending so the output is deterministic; consumers that need a different
// order re-sort.
type Classification struct {
	Candidates []string `json:"candidates"`
	Rejected   []string `json:"rejected"`
}

// Classifier partitions tokenized text into candidate codes and rejected
// tokens, filtering out punctuation, stop-words, and common intent words.
type Classifier struct {
	tokenizer Tokenizer
	logger    logging.Logger
}

// NewClassifier creates a Classifier.  tokenizer may be nil, in which case
// the rule-based default is used.
func NewClassifier(tokenizer Tokenizer, logger logging.Logger) *Classifier {
	if tokenizer == nil {
		tokenizer = NewRuleTokenizer()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Classifier{tokenizer: tokenizer, logger: logger}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Classify tokenizes text and assigns each token to exactly one bucket:
// candidate code, rejected malformed-numeric, rejected non-numeric, or
// silently ignored (punctuation, stop-word, intent word, or no alphabetic
// content).
func (c *Classifier) Classify(text string) Classification {
	text = separatorReplacer.Replace(text)

	candidates := make(map[string]struct{})
	rejected := make(map[string]struct{})

	for _, tok := range c.tokenizer.Tokenize(text) {
		t := strings.TrimSpace(tok.Text)
		if t == "" || tok.IsPunct {
			continue
		}

		if allDigits(t) {
			if hsn.ValidFormat(t) {
				candidates[t] = struct{}{}
			} else {
				rejected[fmt.Sprintf(rejectInvalidFormat, t)] = struct{}{}
			}
			continue
		}

		word := strings.ToLower(t)
		if stopWords[word] || commonIntentWords[word] || !hasAlpha(word) {
			continue
		}
		rejected[t] = struct{}{}
	}

	c.logger.Debug("classified text",
		logging.Int("candidates", len(candidates)),
		logging.Int("rejected", len(rejected)))

	return Classification{
		Candidates: sortedKeys(candidates),
		Rejected:   sortedKeys(rejected),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
