// Package roster holds the in-memory candidate collection the dashboard
// displays and mutates. Persistence lives elsewhere; this is the working set.
package roster

import (
	"iter"
	"sort"
	"sync"

	"github.com/jonathan/recruit-ai/internal/types"
)

// HoursSavedPerAnalysis is the fixed estimate credited to the time-saved
// counter for each successful AI analysis.
const HoursSavedPerAnalysis = 1.5

// Store is an ordered, mutex-guarded collection of candidates keyed by id.
// Insertion order is newest-first; sorted views never mutate stored order.
type Store struct {
	mu         sync.Mutex
	candidates []types.Candidate
	timeSaved  float64
}

// NewStore creates an empty roster.
func NewStore() *Store {
	return &Store{}
}

// Hydrate replaces the roster contents with candidates fetched from the
// persistence layer. The time-saved accumulator is left untouched.
func (s *Store) Hydrate(candidates []types.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = make([]types.Candidate, len(candidates))
	copy(s.candidates, candidates)
}

// Insert prepends a newly analyzed candidate and credits the time-saved
// accumulator. The accumulator only ever grows.
func (s *Store) Insert(c types.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = append([]types.Candidate{c}, s.candidates...)
	s.timeSaved += HoursSavedPerAnalysis
}

// Get returns the candidate with the given id.
func (s *Store) Get(id string) (types.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.candidates {
		if c.ID == id {
			return c, true
		}
	}
	return types.Candidate{}, false
}

// SetStatus transitions a candidate's status. Returns false if the id is
// not in the roster.
func (s *Store) SetStatus(id string, status types.CandidateStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			s.candidates[i].Status = status
			return true
		}
	}
	return false
}

// Remove deletes a candidate by id. Removing an absent id is a no-op,
// mirroring the idempotent delete semantics of the persistence layer.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.candidates {
		if c.ID == id {
			s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
			return
		}
	}
}

// Len returns the number of candidates in the roster.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.candidates)
}

// Snapshot returns a copy of the roster in stored (newest-first insertion)
// order.
func (s *Store) Snapshot() []types.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// SortedByAppliedDate returns a restartable view of the roster ordered by
// application instant, newest first. The sort happens lazily each time the
// sequence is ranged over; stored order is never touched.
func (s *Store) SortedByAppliedDate() iter.Seq[types.Candidate] {
	return func(yield func(types.Candidate) bool) {
		sorted := s.Snapshot()
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AppliedDate.After(sorted[j].AppliedDate)
		})
		for _, c := range sorted {
			if !yield(c) {
				return
			}
		}
	}
}
