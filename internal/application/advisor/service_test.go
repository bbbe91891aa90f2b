package advisor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/hsn-advisor/internal/domain/hsn"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
	apperrors "github.com/turtacn/hsn-advisor/pkg/errors"
)

const fixtureCSV = `HSNCode,Description
01,Live animals
0101,Live horses
010121,Pure-bred breeding horses
01012100,Pure-bred breeding horses (8-digit)
1101,Wheat or meslin flour
`

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hsn.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))
	svc := NewService(dataset.Source{Path: path}, Options{})
	require.NoError(t, svc.Reload())
	return svc, path
}

func TestService_ValidateAfterReload(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.Validate("1101")
	assert.True(t, res.Valid)
	assert.Equal(t, "Wheat or meslin flour", res.Description)
	assert.Equal(t, 5, svc.TableSize())
}

func TestService_ReloadFailureKeepsPreviousTable(t *testing.T) {
	svc, path := newTestService(t)
	require.NoError(t, os.Remove(path))

	err := svc.Reload()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDatasetNotFound))

	// The previously loaded table keeps serving.
	assert.True(t, svc.Validate("1101").Valid)
	assert.Equal(t, 5, svc.TableSize())
}

func TestService_ReloadIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	before := svc.TableSize()
	require.NoError(t, svc.Reload())
	assert.Equal(t, before, svc.TableSize())
	assert.True(t, svc.Validate("01012100").Valid)
}

func TestService_TrackerIndependentOfReload(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Validate("bogus")
	svc.Validate("bogus")
	require.Len(t, svc.InvalidSummary(), 1)
	assert.Equal(t, 2, svc.InvalidSummary()[0].Count)

	// Reload alone leaves the counters; ResetTracker clears them.
	require.NoError(t, svc.Reload())
	assert.Len(t, svc.InvalidSummary(), 1)

	svc.ResetTracker()
	assert.Empty(t, svc.InvalidSummary())
}

func TestService_ValidateAllOrder(t *testing.T) {
	svc, _ := newTestService(t)
	results := svc.ValidateAll([]string{"1101", "1101", "nope"})
	require.Len(t, results, 3)
	assert.Equal(t, "1101", results[0].Code)
	assert.Equal(t, "1101", results[1].Code)
	assert.Equal(t, hsn.ReasonInvalidFormat, results[2].Result.Reason)
}

func TestRespond_ValidCodeWithHierarchy(t *testing.T) {
	svc, _ := newTestService(t)

	reply := svc.Respond("Check 01012100")
	assert.Equal(t,
		"✅ 01012100 is valid: Pure-bred breeding horses (8-digit)\n"+
			"🔗 Hierarchy:\n"+
			"- 01: Live animals\n"+
			"- 0101: Live horses\n"+
			"- 010121: Pure-bred breeding horses",
		reply)
}

func TestRespond_ValidShortCodeHasNoHierarchyLines(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, "✅ 1101 is valid: Wheat or meslin flour", svc.Respond("Tell me about 1101"))
}

func TestRespond_UnknownCode(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, "❌ 99999999 is invalid: code not found", svc.Respond("Check 99999999"))
}

func TestRespond_RejectedTokens(t *testing.T) {
	svc, _ := newTestService(t)

	reply := svc.Respond("frobnicate 123")
	assert.Equal(t,
		"❌ `123 (invalid format - must be 2,4,6, or 8 digits)` is not a valid HSN code.\n"+
			"❌ `frobnicate` is not a valid HSN code.",
		reply)
}

func TestRespond_MixedCandidatesSortedAsStrings(t *testing.T) {
	svc, _ := newTestService(t)

	// Lexicographic candidate order: "0101" before "1101".
	reply := svc.Respond("1101 0101")
	assert.Equal(t,
		"✅ 0101 is valid: Live horses\n"+
			"✅ 1101 is valid: Wheat or meslin flour",
		reply)
}

func TestRespond_HelpMessageVerbatim(t *testing.T) {
	svc, _ := newTestService(t)

	reply := svc.Respond("tell me about codes")
	assert.Equal(t,
		"❌ I couldn’t detect a valid HSN code.\n\n"+
			"👉 Try: `01012100`, `Check 99999999`, or `Tell me about 1101`",
		reply)
}

func TestRespond_EmptyMessage(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, helpMessage, svc.Respond(""))
}
