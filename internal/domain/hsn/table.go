// Package hsn implements the HSN classification-code bounded context: the
// in-memory reference table, the code validator with ancestor-hierarchy
// resolution, and the invalid-attempt tracker.  All business rules that
// concern HSN codes live here; loading the table from a tabular source is
// handled by the infrastructure dataset layer.
package hsn

import (
	"strings"
	"sync"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
)

// Record is a single row of the reference source: a digit-only classification
// code and its human-readable description.
type Record struct {
	Code        string
	Description string
}

// Table is an immutable snapshot of the reference data, indexed by code for
// O(1) lookup.  A Table is never mutated after construction; reloads build a
// fresh Table and swap it into the Store wholesale.
type Table struct {
	entries map[string]string
}

// NewTable builds a Table from records in a single keyed insertion pass.
// Code and description values are trimmed.  When the source contains
// duplicate codes the later row overwrites the earlier one; duplicates are
// logged at WARN but do not fail the build.
func NewTable(records []Record, logger logging.Logger) *Table {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	entries := make(map[string]string, len(records))
	for _, r := range records {
		code := strings.TrimSpace(r.Code)
		if code == "" {
			continue
		}
		if _, dup := entries[code]; dup {
			logger.Warn("duplicate code in reference source, keeping last value",
				logging.String("code", code))
		}
		entries[code] = strings.TrimSpace(r.Description)
	}
	return &Table{entries: entries}
}

// Lookup returns the description for an exact code match.  No normalization
// of leading zeros is performed; codes are compared as strings.
func (t *Table) Lookup(code string) (string, bool) {
	desc, ok := t.entries[code]
	return desc, ok
}

// Len returns the number of distinct codes in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Store holds the current reference Table and supports atomic wholesale
// replacement.  Readers obtain a consistent snapshot via Current; a reload in
// progress never exposes a half-replaced table, and validations that started
// against the previous snapshot keep using it.
type Store struct {
	mu    sync.RWMutex
	table *Table
}

// NewStore returns a Store initialised with an empty table so lookups are
// safe before the first load completes.
func NewStore() *Store {
	return &Store{table: &Table{entries: map[string]string{}}}
}

// Current returns the active table snapshot.
func (s *Store) Current() *Table {
	s.mu.RLock()
	t := s.table
	s.mu.RUnlock()
	return t
}

// Swap replaces the active table.  A nil table is ignored.
func (s *Store) Swap(t *Table) {
	if t == nil {
		return
	}
	s.mu.Lock()
	s.table = t
	s.mu.Unlock()
}
