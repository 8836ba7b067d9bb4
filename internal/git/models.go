package git

import "time"

// RawCommit is one commit record as produced by a source backend.
// The date is carried as the backend's ISO-ish string; parsing it into a
// typed value is the normalizer's job, not the source's.
type RawCommit struct {
	Hash        string
	Author      string
	AuthorEmail string
	Date        string
	Message     string
}

// SourceBackend selects how repository history is read.
type SourceBackend int

const (
	// BackendGoGit reads history in-process via go-git.
	BackendGoGit SourceBackend = iota
	// BackendGitCLI shells out to git(1).
	BackendGitCLI
)

// String returns a string representation of the backend.
func (b SourceBackend) String() string {
	switch b {
	case BackendGitCLI:
		return "cli"
	default:
		return "gogit"
	}
}

// ReadOptions configures a commit source.
type ReadOptions struct {
	RepoPath   string
	Branch     string
	Since      *time.Time // Inclusive lower bound on commit dates
	SkipMerges bool
	Backend    SourceBackend
}
