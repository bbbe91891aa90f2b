package hsn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_ReasonQualifiedKeys(t *testing.T) {
	tracker := NewAttemptTracker()
	tracker.Record(ReasonInvalidFormat, "123")
	tracker.Record(ReasonNotFound, "123")

	summary := tracker.Summary()
	require.Len(t, summary, 2)
	assert.Equal(t, "Invalid format | 123", summary[0].Key)
	assert.Equal(t, "code not found | 123", summary[1].Key)
}

func TestTracker_AccumulatesUnderOneKey(t *testing.T) {
	tracker := NewAttemptTracker()
	tracker.Record(ReasonInvalidFormat, "abc")
	tracker.Record(ReasonInvalidFormat, "abc")

	summary := tracker.Summary()
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].Count)
}

func TestTracker_SummarySortedByCountDescending(t *testing.T) {
	tracker := NewAttemptTracker()
	tracker.Record(ReasonInvalidFormat, "low")
	for i := 0; i < 3; i++ {
		tracker.Record(ReasonInvalidFormat, "high")
	}
	tracker.Record(ReasonNotFound, "mid")
	tracker.Record(ReasonNotFound, "mid")

	summary := tracker.Summary()
	require.Len(t, summary, 3)
	assert.Equal(t, "Invalid format | high", summary[0].Key)
	assert.Equal(t, 3, summary[0].Count)
	assert.Equal(t, "code not found | mid", summary[1].Key)
	assert.Equal(t, "Invalid format | low", summary[2].Key)
}

func TestTracker_TiesBrokenByInsertionOrder(t *testing.T) {
	tracker := NewAttemptTracker()
	tracker.Record(ReasonInvalidFormat, "zzz")
	tracker.Record(ReasonInvalidFormat, "aaa")
	tracker.Record(ReasonInvalidFormat, "mmm")

	summary := tracker.Summary()
	require.Len(t, summary, 3)
	assert.Equal(t, "Invalid format | zzz", summary[0].Key)
	assert.Equal(t, "Invalid format | aaa", summary[1].Key)
	assert.Equal(t, "Invalid format | mmm", summary[2].Key)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewAttemptTracker()
	tracker.Record(ReasonInvalidFormat, "abc")
	tracker.Reset()
	assert.Empty(t, tracker.Summary())
	assert.Equal(t, 0, tracker.Len())

	// Insertion order restarts after a reset.
	tracker.Record(ReasonNotFound, "first-after-reset")
	summary := tracker.Summary()
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].Count)
}

func TestTracker_ConcurrentIncrementsLoseNoUpdates(t *testing.T) {
	tracker := NewAttemptTracker()
	const goroutines = 8
	const perGoroutine = 500

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				tracker.Record(ReasonInvalidFormat, "racy")
			}
		}()
	}
	wg.Wait()

	summary := tracker.Summary()
	require.Len(t, summary, 1)
	assert.Equal(t, goroutines*perGoroutine, summary[0].Count)
}
