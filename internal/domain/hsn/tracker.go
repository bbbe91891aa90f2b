package hsn

import (
	"fmt"
	"sort"
	"sync"
)

// AttemptTracker counts failed validation attempts, keyed by the composite
// "<reason> | <code>" string.  The key is reason-qualified on purpose: the
// same code failing for two different reasons produces two distinct counters.
//
// Counters are monotonically incremented and only ever cleared by Reset.
// All methods are safe for concurrent use.
type AttemptTracker struct {
	mu     sync.Mutex
	counts map[string]int
	// first-insertion sequence per key, used as the stable tie-break when
	// Summary sorts by count.
	order map[string]int
	seq   int
}

// NewAttemptTracker returns an empty tracker.
func NewAttemptTracker() *AttemptTracker {
	return &AttemptTracker{
		counts: make(map[string]int),
		order:  make(map[string]int),
	}
}

// attemptKey builds the composite tracker key.
func attemptKey(reason, code string) string {
	return fmt.Sprintf("%s | %s", reason, code)
}

// Record increments the counter for the given (reason, code) pair.
func (t *AttemptTracker) Record(reason, code string) {
	key := attemptKey(reason, code)
	t.mu.Lock()
	if _, seen := t.counts[key]; !seen {
		t.order[key] = t.seq
		t.seq++
	}
	t.counts[key]++
	t.mu.Unlock()
}

// AttemptCount is one entry of the invalid-attempt summary.
type AttemptCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Summary returns all counters sorted by count descending; ties are broken by
// the order in which the keys were first recorded.
func (t *AttemptTracker) Summary() []AttemptCount {
	t.mu.Lock()
	out := make([]AttemptCount, 0, len(t.counts))
	for key, count := range t.counts {
		out = append(out, AttemptCount{Key: key, Count: count})
	}
	order := make(map[string]int, len(t.order))
	for k, v := range t.order {
		order[k] = v
	}
	t.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Key] < order[out[j].Key]
	})
	return out
}

// Reset clears all counters.  Whether a dataset reload should also reset the
// tracker is the caller's decision; the two operations are independent here.
func (t *AttemptTracker) Reset() {
	t.mu.Lock()
	t.counts = make(map[string]int)
	t.order = make(map[string]int)
	t.seq = 0
	t.mu.Unlock()
}

// Len returns the number of distinct (reason, code) keys recorded.
func (t *AttemptTracker) Len() int {
	t.mu.Lock()
	n := len(t.counts)
	t.mu.Unlock()
	return n
}
