package extraction

import "fmt"

// ExtractionError indicates a resume file could not be read or parsed.
// Recoverable: the caller is expected to offer manual text entry instead.
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
