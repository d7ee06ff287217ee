package dashboard

import "fmt"

// ErrCandidateNotFound indicates the candidate does not exist for this user
type ErrCandidateNotFound struct {
	ID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}
