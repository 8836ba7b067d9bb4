package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phicus/changelog-go/config"
	"github.com/phicus/changelog-go/internal/changelog"
	"github.com/phicus/changelog-go/internal/git"
	"github.com/phicus/changelog-go/internal/reponame"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for generating a changelog: the loaded
// configuration, the resolved repository name, and the normalized commit
// sequence read from the source.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	RepoName string
	Since    *time.Time
	Commits  []changelog.Commit
}

// NewCommandContext creates a context from CLI flags. It resolves the
// repository name, opens the source, reads the history, and normalizes every
// record. Flag and format validation must already have happened: this is the
// first point where repository I/O occurs.
func NewCommandContext(c *cli.Context, cfg *config.Config) (*CommandContext, error) {
	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return nil, fmt.Errorf("invalid since date: %w", err)
	}

	backend, err := parseBackendFlag(c.String("backend"))
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")
	name := c.String("repo-name")
	if name == "" && c.Bool("auto-name") {
		name = reponame.Discover(repoPath)
	}
	if name == "" {
		return nil, fmt.Errorf("repository name required: set --repo-name or enable --auto-name")
	}

	source, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath:   repoPath,
		Branch:     c.String("branch"),
		Since:      since,
		SkipMerges: cfg.Source.SkipMerges,
		Backend:    backend,
	})
	if err != nil {
		return nil, err
	}

	raws, err := source.ReadCommits(c.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	log.Debug("read history", "repo", repoPath, "backend", backend, "records", len(raws))

	commits, err := changelog.NormalizeAll(raws)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		RepoName: name,
		Since:    since,
		Commits:  commits,
	}, nil
}
