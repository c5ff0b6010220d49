package session

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/nconklindev/connex/internal/summary"
	"github.com/nconklindev/connex/internal/types"

	"github.com/google/uuid"
)

// Attempt identifies one ingestion pass. Only the latest begun attempt may
// write its result into the store.
type Attempt struct {
	Seq uint64
	ID  string
}

// Store holds the single current parse result shared by the views.
type Store struct {
	mu     sync.Mutex
	seq    uint64
	result types.ParseResult
	limit  int
}

// New creates an empty store. topCompanies bounds the ranking returned by
// Summary; zero uses the default.
func New(topCompanies int) *Store {
	return &Store{result: empty(), limit: topCompanies}
}

func empty() types.ParseResult {
	return types.ParseResult{
		ValidConnections: []types.Connection{},
		Errors:           []string{},
	}
}

// Begin starts a new attempt, superseding any attempt still in flight.
func (s *Store) Begin() Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return Attempt{Seq: s.seq, ID: uuid.New().String()}
}

// Apply stores result if a is still the latest attempt. It reports whether
// the result was kept.
func (s *Store) Apply(a Attempt, result *types.ParseResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Seq != s.seq {
		slog.Debug("Discarding stale parse result", "attempt_id", a.ID, "seq", a.Seq, "latest", s.seq)
		return false
	}

	if result == nil {
		s.result = empty()
		return true
	}
	s.result = types.ParseResult{
		Success:          result.Success,
		TotalRows:        result.TotalRows,
		ValidConnections: slices.Clone(result.ValidConnections),
		Errors:           slices.Clone(result.Errors),
	}
	return true
}

// Record applies the outcome of an import for attempt a. Fatal import errors
// come with their own failed result; an error without a result is unexpected
// and clears the store.
func (s *Store) Record(a Attempt, result *types.ParseResult, err error) bool {
	if err != nil && result == nil {
		slog.Debug("Parse attempt failed", "attempt_id", a.ID, "error", err)
		return s.Fail(a, err)
	}

	if result != nil {
		slog.Debug("Parse attempt finished", "attempt_id", a.ID,
			"rows", result.TotalRows, "valid", len(result.ValidConnections), "messages", len(result.Errors))
	}
	return s.Apply(a, result)
}

// Fail records an unexpected failure of attempt a, clearing all parsed data.
func (s *Store) Fail(a Attempt, err error) bool {
	return s.Apply(a, types.Failed(FailureMessage(err)))
}

// Reset clears the store and invalidates any in-flight attempt.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.result = empty()
}

// Current returns a copy of the stored result.
func (s *Store) Current() types.ParseResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return types.ParseResult{
		Success:          s.result.Success,
		TotalRows:        s.result.TotalRows,
		ValidConnections: slices.Clone(s.result.ValidConnections),
		Errors:           slices.Clone(s.result.Errors),
	}
}

// Summary aggregates the stored result.
func (s *Store) Summary() types.Summary {
	result := s.Current()
	return summary.Summarize(&result, s.limit)
}

// FailureMessage formats an unexpected error for display.
func FailureMessage(err error) string {
	if err == nil {
		return "Failed to parse file: Unknown error occurred"
	}
	return fmt.Sprintf("Failed to parse file: %s", err.Error())
}
