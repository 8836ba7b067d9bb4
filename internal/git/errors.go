package git

import "fmt"

// SourceUnavailableError indicates the repository path is invalid or cannot
// be opened. It is surfaced immediately; a one-shot run never retries.
type SourceUnavailableError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("repository unavailable: %s does not contain a readable Git repository: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
