package hsn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
)

func newTestValidator(records []Record) (*Validator, *AttemptTracker) {
	store := NewStore()
	store.Swap(NewTable(records, logging.NewNopLogger()))
	tracker := NewAttemptTracker()
	return NewValidator(store, tracker, logging.NewNopLogger()), tracker
}

var testRecords = []Record{
	{Code: "01", Description: "Live animals"},
	{Code: "0101", Description: "Live horses, asses, mules and hinnies"},
	{Code: "010121", Description: "Pure-bred breeding horses"},
	{Code: "01012100", Description: "Pure-bred breeding horses (8-digit)"},
	{Code: "1101", Description: "Wheat or meslin flour"},
	{Code: "345678", Description: "Orphan six-digit code"},
}

func TestValidate_FormatRejections(t *testing.T) {
	v, tracker := newTestValidator(testRecords)

	for _, code := range []string{"", "abc", "01a1", "1", "123", "12345", "1234567", "123456789", "12.34", "-123"} {
		res := v.Validate(code)
		assert.False(t, res.Valid, "code %q should fail format check", code)
		assert.Equal(t, ReasonInvalidFormat, res.Reason)
		assert.Empty(t, res.Description)
		assert.Nil(t, res.Hierarchy)
	}

	// Each distinct malformed code gets its own reason-qualified key.
	assert.Equal(t, 10, tracker.Len())
}

func TestValidate_TrimsInput(t *testing.T) {
	v, tracker := newTestValidator(testRecords)

	res := v.Validate("  0101  ")
	assert.True(t, res.Valid)
	assert.Equal(t, "Live horses, asses, mules and hinnies", res.Description)
	assert.Equal(t, 0, tracker.Len())
}

func TestValidate_NotFound(t *testing.T) {
	v, tracker := newTestValidator(testRecords)

	res := v.Validate("99999999")
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonNotFound, res.Reason)

	summary := tracker.Summary()
	require.Len(t, summary, 1)
	assert.Equal(t, "code not found | 99999999", summary[0].Key)
}

func TestValidate_ShortCodesCarryNoHierarchy(t *testing.T) {
	v, _ := newTestValidator(testRecords)

	for _, code := range []string{"01", "0101"} {
		res := v.Validate(code)
		require.True(t, res.Valid, "code %q", code)
		assert.Nil(t, res.Hierarchy, "code %q must not carry a hierarchy field", code)
	}
}

func TestValidate_EightDigitHierarchy(t *testing.T) {
	v, _ := newTestValidator(testRecords)

	res := v.Validate("01012100")
	require.True(t, res.Valid)
	require.NotNil(t, res.Hierarchy)
	assert.Equal(t, map[string]string{
		"01":     "Live animals",
		"0101":   "Live horses, asses, mules and hinnies",
		"010121": "Pure-bred breeding horses",
	}, res.Hierarchy)
}

func TestValidate_SixDigitHierarchyStopsBelowOwnLength(t *testing.T) {
	v, _ := newTestValidator(testRecords)

	res := v.Validate("010121")
	require.True(t, res.Valid)
	require.NotNil(t, res.Hierarchy)
	// Only lengths 2 and 4; the code's own length is excluded.
	assert.Equal(t, map[string]string{
		"01":   "Live animals",
		"0101": "Live horses, asses, mules and hinnies",
	}, res.Hierarchy)
}

func TestValidate_HierarchyReportsMissingAncestors(t *testing.T) {
	v, tracker := newTestValidator(testRecords)

	// "345678" exists but neither "34" nor "3456" does.
	res := v.Validate("345678")
	require.True(t, res.Valid)
	assert.Equal(t, map[string]string{
		"34":   NotFoundMarker,
		"3456": NotFoundMarker,
	}, res.Hierarchy)

	// Ancestor misses are reported, not tracked as failures.
	assert.Equal(t, 0, tracker.Len())
}

func TestValidateAll_PreservesOrderAndDuplicates(t *testing.T) {
	v, _ := newTestValidator(testRecords)

	input := []string{"0101", "bogus", "0101", "99999999"}
	results := v.ValidateAll(input)
	require.Len(t, results, len(input))
	for i, entry := range results {
		assert.Equal(t, input[i], entry.Code)
	}
	assert.True(t, results[0].Result.Valid)
	assert.Equal(t, ReasonInvalidFormat, results[1].Result.Reason)
	assert.True(t, results[2].Result.Valid)
	assert.Equal(t, ReasonNotFound, results[3].Result.Reason)
}

func TestValidFormat(t *testing.T) {
	valid := []string{"01", "0101", "010121", "01012100", "99", "99999999"}
	for _, code := range valid {
		assert.True(t, ValidFormat(code), "code %q", code)
	}
	invalid := []string{"", "1", "123", "12345", "1234567", "123456789", "ab", "01 21", "０１"}
	for _, code := range invalid {
		assert.False(t, ValidFormat(code), "code %q", code)
	}
}

func TestValidate_SeesSwappedTable(t *testing.T) {
	store := NewStore()
	store.Swap(NewTable([]Record{{Code: "01", Description: "before"}}, nil))
	v := NewValidator(store, NewAttemptTracker(), nil)

	assert.Equal(t, "before", v.Validate("01").Description)

	store.Swap(NewTable([]Record{{Code: "01", Description: "after"}}, nil))
	assert.Equal(t, "after", v.Validate("01").Description)
}

func TestNewTable_DuplicateLastWriteWins(t *testing.T) {
	table := NewTable([]Record{
		{Code: "01", Description: "first"},
		{Code: "01", Description: "second"},
	}, nil)
	desc, ok := table.Lookup("01")
	require.True(t, ok)
	assert.Equal(t, "second", desc)
	assert.Equal(t, 1, table.Len())
}

func TestNewTable_TrimsCodesAndDescriptions(t *testing.T) {
	table := NewTable([]Record{{Code: " 0101 ", Description: "  padded  "}}, nil)
	desc, ok := table.Lookup("0101")
	require.True(t, ok)
	assert.Equal(t, "padded", desc)
}

func BenchmarkValidate(b *testing.B) {
	records := make([]Record, 0, 10000)
	for i := 0; i < 10000; i++ {
		records = append(records, Record{Code: fmt.Sprintf("%08d", i), Description: "entry"})
	}
	v, _ := newTestValidator(records)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Validate("00004242")
	}
}
