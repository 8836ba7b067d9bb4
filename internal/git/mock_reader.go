package git

import "context"

// MockCommitSource is a test double for HistoryReader.
// It allows tests to provide predefined commit data without needing a real
// Git repository.
type MockCommitSource struct {
	Commits []RawCommit
	Error   error
}

// NewMockCommitSource creates a new MockCommitSource with the given data.
func NewMockCommitSource(commits []RawCommit, err error) *MockCommitSource {
	return &MockCommitSource{Commits: commits, Error: err}
}

// ReadCommits returns the predefined records or error.
func (m *MockCommitSource) ReadCommits(_ context.Context) ([]RawCommit, error) {
	return m.Commits, m.Error
}
