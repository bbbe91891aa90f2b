// Package advisor wires the HSN domain into the operations exposed to
// callers: single and batch validation, conversational classification and
// reply composition, dataset reload, and the invalid-attempt summary.  The
// HTTP handlers and CLI commands are thin shells over this service.
package advisor

import (
	"sync"

	"github.com/turtacn/hsn-advisor/internal/domain/hsn"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/metrics"
	"github.com/turtacn/hsn-advisor/internal/intelligence/textclass"
)

// Service owns the shared mutable state (reference table store, attempt
// tracker) and composes the validator and text classifier.  All methods are
// safe for concurrent use; Reload serializes with itself and swaps the table
// atomically so in-flight validations keep reading a consistent snapshot.
type Service struct {
	source     dataset.Source
	store      *hsn.Store
	tracker    *hsn.AttemptTracker
	validator  *hsn.Validator
	classifier *textclass.Classifier
	metrics    *metrics.Metrics
	logger     logging.Logger

	reloadMu sync.Mutex
}

// Options carries optional Service collaborators.  Zero values select
// defaults: the rule-based tokenizer, no metrics, a nop logger.
type Options struct {
	Tokenizer textclass.Tokenizer
	Metrics   *metrics.Metrics
	Logger    logging.Logger
}

// NewService creates a Service for the given reference source.  The table
// starts empty; call Reload before serving.
func NewService(source dataset.Source, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	store := hsn.NewStore()
	tracker := hsn.NewAttemptTracker()
	return &Service{
		source:     source,
		store:      store,
		tracker:    tracker,
		validator:  hsn.NewValidator(store, tracker, logger.Named("validator")),
		classifier: textclass.NewClassifier(opts.Tokenizer, logger.Named("classifier")),
		metrics:    opts.Metrics,
		logger:     logger,
	}
}

// Validate checks a single code against the current table.
func (s *Service) Validate(code string) hsn.ValidationResult {
	result := s.validator.Validate(code)
	s.observe(result)
	return result
}

// ValidateAll validates codes in order, preserving duplicates.
func (s *Service) ValidateAll(codes []string) []hsn.BatchEntry {
	entries := s.validator.ValidateAll(codes)
	for _, e := range entries {
		s.observe(e.Result)
	}
	return entries
}

func (s *Service) observe(result hsn.ValidationResult) {
	switch {
	case result.Valid:
		s.metrics.ObserveValidation(metrics.OutcomeValid)
	case result.Reason == hsn.ReasonInvalidFormat:
		s.metrics.ObserveValidation(metrics.OutcomeInvalidFormat)
		s.metrics.ObserveInvalidAttempt(result.Reason)
	default:
		s.metrics.ObserveValidation(metrics.OutcomeNotFound)
		s.metrics.ObserveInvalidAttempt(result.Reason)
	}
}

// Classify partitions free-form text into candidate codes and rejected
// tokens without validating the candidates.
func (s *Service) Classify(text string) textclass.Classification {
	return s.classifier.Classify(text)
}

// Reload loads the reference source and swaps the new table in.  On failure
// the previously loaded table keeps serving and the error carries a dataset
// error code.  Reload does NOT reset the attempt tracker; callers that want
// the original coupled behavior invoke ResetTracker alongside.
func (s *Service) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	records, err := dataset.Load(s.source)
	if err != nil {
		s.metrics.ObserveReload(false, 0)
		s.logger.Error("dataset reload failed",
			logging.String("path", s.source.Path), logging.Err(err))
		return err
	}

	table := hsn.NewTable(records, s.logger.Named("table"))
	s.store.Swap(table)
	s.metrics.ObserveReload(true, table.Len())
	s.logger.Info("dataset reloaded",
		logging.String("path", s.source.Path),
		logging.Int("entries", table.Len()))
	return nil
}

// ResetTracker clears all invalid-attempt counters.
func (s *Service) ResetTracker() {
	s.tracker.Reset()
	s.logger.Info("invalid-attempt tracker reset")
}

// InvalidSummary returns the invalid-attempt counters sorted by count
// descending (ties by first occurrence).
func (s *Service) InvalidSummary() []hsn.AttemptCount {
	return s.tracker.Summary()
}

// TableSize returns the number of codes in the active table.
func (s *Service) TableSize() int {
	return s.store.Current().Len()
}

// SourcePath returns the configured reference data file path.
func (s *Service) SourcePath() string {
	return s.source.Path
}

// Source returns a copy of the configured reference data source.
func (s *Service) Source() dataset.Source {
	return s.source
}
