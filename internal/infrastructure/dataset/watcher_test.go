package dataset

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncesBurstIntoSingleCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hsn.csv")
	require.NoError(t, os.WriteFile(path, []byte("HSNCode,Description\n01,a\n"), 0o644))

	var calls atomic.Int32
	w, err := NewWatcher(path, 100*time.Millisecond, func() {
		calls.Add(1)
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Close()

	// A burst of writes within the debounce window.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("HSNCode,Description\n01,b\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hsn.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	var calls atomic.Int32
	w, err := NewWatcher(path, 50*time.Millisecond, func() {
		calls.Add(1)
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hsn.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := NewWatcher(path, 0, func() {}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
