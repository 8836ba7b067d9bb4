package git

import (
	"context"
	"errors"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader reads commit history from a Git repository.
type HistoryReader struct {
	repo *gogit.Repository
	opts ReadOptions
}

// NewHistoryReader opens the repository at opts.RepoPath. A path that does
// not contain a readable repository yields a *SourceUnavailableError.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, &SourceUnavailableError{Path: opts.RepoPath, Err: err}
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ReadCommits reads raw commit records from the repository, newest first.
func (r *HistoryReader) ReadCommits(ctx context.Context) ([]RawCommit, error) {
	if r.opts.Backend == BackendGitCLI {
		return r.readCommitsGitCLI(ctx)
	}

	from, err := r.resolveStart()
	if err != nil {
		return nil, err
	}
	// A valid repository with no commits yet yields an empty sequence.
	if from.IsZero() {
		return []RawCommit{}, nil
	}

	logOpts := &gogit.LogOptions{From: from, Order: gogit.LogOrderCommitterTime}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}

	var results []RawCommit

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.opts.SkipMerges && c.NumParents() > 1 {
			return nil
		}

		// First line of the commit message only
		message := c.Message
		if idx := strings.IndexByte(message, '\n'); idx != -1 {
			message = message[:idx]
		}

		// Committer time, consistent with the CLI backend and with what
		// the since filter compares against.
		results = append(results, RawCommit{
			Hash:        c.Hash.String(),
			Author:      c.Author.Name,
			AuthorEmail: c.Author.Email,
			Date:        c.Committer.When.Format(time.RFC3339),
			Message:     strings.TrimSpace(message),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// resolveStart resolves the starting commit for the log walk. The zero hash
// with a nil error means the repository has no commits yet.
func (r *HistoryReader) resolveStart() (plumbing.Hash, error) {
	branch := strings.TrimSpace(r.opts.Branch)
	if branch == "" || strings.EqualFold(branch, "HEAD") {
		ref, err := r.repo.Head()
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, nil
		}
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	}
	// An explicitly named branch that cannot be resolved is still an error:
	// only an unborn HEAD means a repository with no commits yet.
	hash, err := r.repo.ResolveRevision(plumbing.Revision(branch))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}
