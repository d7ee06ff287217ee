package roster

import "github.com/jonathan/recruit-ai/internal/types"

// Metrics derives the dashboard counters from the current roster state.
// candidatesProcessed counts everything in the roster, pendingReview counts
// New candidates, interviewsScheduled counts Interview candidates, and
// timeSaved reports the per-analysis accumulator.
func (s *Store) Metrics() types.DashboardMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := types.DashboardMetrics{
		CandidatesProcessed: len(s.candidates),
		TimeSaved:           s.timeSaved,
	}
	for _, c := range s.candidates {
		switch c.Status {
		case types.StatusNew:
			m.PendingReview++
		case types.StatusInterview:
			m.InterviewsScheduled++
		}
	}
	return m
}
