package git

import "context"

// CommitSource defines the interface for reading Git repository history.
// Records are returned newest first. This abstraction allows for easier
// testing and alternative backends.
type CommitSource interface {
	// ReadCommits reads the commit history as raw records.
	ReadCommits(ctx context.Context) ([]RawCommit, error)
}

// Compile-time interface conformance checks.
var (
	_ CommitSource = (*HistoryReader)(nil)
	_ CommitSource = (*MockCommitSource)(nil)
)
