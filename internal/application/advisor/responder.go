package advisor

import (
	"fmt"
	"sort"
	"strings"
)

// helpMessage is returned verbatim when a message yields neither candidates
// nor rejected tokens.
const helpMessage = "❌ I couldn’t detect a valid HSN code.\n\n" +
	"👉 Try: `01012100`, `Check 99999999`, or `Tell me about 1101`"

// Respond classifies text, validates every candidate code, and composes the
// multi-line chat reply.  Candidates are rendered in ascending string order
// (lexicographic, deliberately not numeric — this ordering is observable
// behavior), followed by rejected tokens in ascending order.
func (s *Service) Respond(text string) string {
	classification := s.Classify(text)

	var lines []string

	// Classify returns candidates already sorted ascending.
	for _, code := range classification.Candidates {
		result := s.Validate(code)
		if !result.Valid {
			lines = append(lines, fmt.Sprintf("❌ %s is invalid: %s", code, result.Reason))
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "✅ %s is valid: %s", code, result.Description)
		if result.Hierarchy != nil {
			b.WriteString("\n🔗 Hierarchy:")
			prefixes := make([]string, 0, len(result.Hierarchy))
			for prefix := range result.Hierarchy {
				prefixes = append(prefixes, prefix)
			}
			// Ancestor prefixes sort ascending by length because each is a
			// prefix of the next, so lexicographic order is level order.
			sort.Strings(prefixes)
			for _, prefix := range prefixes {
				fmt.Fprintf(&b, "\n- %s: %s", prefix, result.Hierarchy[prefix])
			}
		}
		lines = append(lines, b.String())
	}

	for _, token := range classification.Rejected {
		lines = append(lines, fmt.Sprintf("❌ `%s` is not a valid HSN code.", token))
	}

	if len(lines) == 0 {
		return helpMessage
	}
	return strings.Join(lines, "\n")
}
