package hsn

import (
	"strings"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
)

// Rejection reasons reported in ValidationResult.  These strings are part of
// the observable API surface (they appear verbatim in responses and in
// tracker keys) and must not be reworded casually.
const (
	ReasonInvalidFormat = "Invalid format"
	ReasonNotFound      = "code not found"
)

// NotFoundMarker is reported for a hierarchy ancestor whose prefix is absent
// from the table.  Ancestor misses are informational: they do not fail the
// validation and are not recorded in the attempt tracker.
const NotFoundMarker = "Not found"

// validLengths is the set of allowed code lengths.
var validLengths = map[int]bool{2: true, 4: true, 6: true, 8: true}

// hierarchyLevels are the ancestor prefix lengths, ascending.  Only levels
// strictly shorter than the code itself are resolved, so hierarchies exist
// only for 6- and 8-digit codes.
var hierarchyLevels = [...]int{2, 4, 6}

// ValidationResult is the outcome of validating a single code.  Exactly one
// of the two shapes occurs: Valid=true with Description (and Hierarchy for
// 6/8-digit codes), or Valid=false with Reason.  A 2- or 4-digit valid code
// carries no hierarchy field at all.
type ValidationResult struct {
	Valid       bool              `json:"valid"`
	Description string            `json:"description,omitempty"`
	Hierarchy   map[string]string `json:"hierarchy,omitempty"`
	Reason      string            `json:"reason,omitempty"`
}

// BatchEntry pairs an input code with its validation result.
type BatchEntry struct {
	Code   string           `json:"hsn_code"`
	Result ValidationResult `json:"result"`
}

// Validator checks format and existence of HSN codes against the current
// reference table and resolves ancestor hierarchies.  Format and existence
// failures are recorded in the attempt tracker; they are results, not errors.
type Validator struct {
	store   *Store
	tracker *AttemptTracker
	logger  logging.Logger
}

// NewValidator creates a Validator.  tracker may be shared with other
// components; logger may be nil (a nop logger is substituted).
func NewValidator(store *Store, tracker *AttemptTracker, logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Validator{store: store, tracker: tracker, logger: logger}
}

// isDigits reports whether s is non-empty and consists solely of ASCII
// digits.
func isDigits(s string) bool {
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

// ValidFormat reports whether code (already trimmed) satisfies the syntactic
// rule: all digits and length in {2,4,6,8}.
func ValidFormat(code string) bool {
	return isDigits(code) && validLengths[len(code)]
}

// Validate checks a single code.  The input is trimmed first; the trimmed
// form is what appears in tracker keys.  The whole check runs against one
// table snapshot, so a concurrent reload cannot produce a mixed result.
func (v *Validator) Validate(code string) ValidationResult {
	code = strings.TrimSpace(code)

	if !ValidFormat(code) {
		v.tracker.Record(ReasonInvalidFormat, code)
		return ValidationResult{Valid: false, Reason: ReasonInvalidFormat}
	}

	table := v.store.Current()
	desc, ok := table.Lookup(code)
	if !ok {
		v.tracker.Record(ReasonNotFound, code)
		return ValidationResult{Valid: false, Reason: ReasonNotFound}
	}

	result := ValidationResult{Valid: true, Description: desc}
	if len(code) >= 6 {
		result.Hierarchy = resolveHierarchy(table, code)
	}
	return result
}

// resolveHierarchy maps each ancestor prefix of code (lengths 2/4/6, strictly
// shorter than the code) to its description, or NotFoundMarker when the
// prefix is absent.  Every key is a prefix of the next longer one, so the
// sorted-key JSON encoding of the map lists ancestors in ascending level
// order.
func resolveHierarchy(table *Table, code string) map[string]string {
	hierarchy := make(map[string]string)
	for _, level := range hierarchyLevels {
		if level >= len(code) {
			break
		}
		prefix := code[:level]
		if desc, ok := table.Lookup(prefix); ok {
			hierarchy[prefix] = desc
		} else {
			hierarchy[prefix] = NotFoundMarker
		}
	}
	return hierarchy
}

// ValidateAll validates a sequence of codes independently, preserving input
// order and duplicates.  There is no short-circuiting: every element is
// processed even if earlier ones fail.
func (v *Validator) ValidateAll(codes []string) []BatchEntry {
	results := make([]BatchEntry, 0, len(codes))
	for _, code := range codes {
		results = append(results, BatchEntry{Code: code, Result: v.Validate(code)})
	}
	return results
}
