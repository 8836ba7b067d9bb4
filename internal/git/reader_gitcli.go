package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// readCommitsGitCLI reads history by shelling out to git(1).
// Each commit is prefixed by 0x1e (record separator) with NUL-separated
// fields, which makes the output reliably parseable as records split on 0x1e
// regardless of what the commit subject contains.
func (r *HistoryReader) readCommitsGitCLI(ctx context.Context) ([]RawCommit, error) {
	const format = "%x1e%H%x00%cI%x00%an%x00%ae%x00%s"

	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--no-color",
		"--pretty=format:" + format,
	}

	if r.opts.SkipMerges {
		args = append(args, "--no-merges")
	}
	if r.opts.Since != nil {
		args = append(args, fmt.Sprintf("--since=@%d", r.opts.Since.Unix()))
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	// Stdout only: warnings on stderr must not land in the parse stream.
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			// A repository with no commits yet yields an empty sequence,
			// consistent with the go-git backend.
			if strings.Contains(stderr, "does not have any commits") {
				return []RawCommit{}, nil
			}
			return nil, fmt.Errorf("git log failed: %w: %s", err, stderr)
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	records := bytes.Split(out, []byte{0x1e})
	results := make([]RawCommit, 0, len(records))

	for _, rec := range records {
		rec = bytes.TrimSuffix(rec, []byte{'\n'})
		if len(rec) == 0 {
			continue
		}

		fields := bytes.SplitN(rec, []byte{0x00}, 5)
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git log record format")
		}

		results = append(results, RawCommit{
			Hash:        string(fields[0]),
			Date:        string(fields[1]),
			Author:      string(fields[2]),
			AuthorEmail: string(fields[3]),
			Message:     strings.TrimSpace(string(fields[4])),
		})
	}

	return results, nil
}
