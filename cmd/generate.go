package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/phicus/changelog-go/config"
	"github.com/phicus/changelog-go/internal/changelog"
	"github.com/phicus/changelog-go/internal/output"
	"github.com/urfave/cli/v2"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate a changelog from repository history",
		Flags:   generateFlags(),
		Action:  generateAction,
	}
}

func generateAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if c.Bool("write-config") {
		if err := config.SaveConfig(cfg, ".changelog.json"); err != nil {
			return err
		}
		log.Info("wrote configuration", "path", ".changelog.json")
		return nil
	}

	// Validate the format before any repository or sink I/O.
	formatSel := c.String("format")
	if formatSel == "" {
		formatSel = cfg.Output.Format
	}
	format, err := output.ParseFormat(formatSel)
	if err != nil {
		return err
	}
	renderer, err := output.NewRenderer(format)
	if err != nil {
		return err
	}

	policySel := c.String("group-policy")
	if policySel == "" {
		policySel = cfg.Grouping.Policy
	}
	policy, err := changelog.ParseGroupPolicy(policySel)
	if err != nil {
		return err
	}

	ctx, err := NewCommandContext(c, cfg)
	if err != nil {
		return err
	}
	log.Info("processing repository", "name", ctx.RepoName, "commits", len(ctx.Commits))

	commits := ctx.Commits
	if !c.Bool("no-skip") {
		patterns := append([]string{}, cfg.Messages.SkipPatterns...)
		patterns = append(patterns, cfg.Messages.MergePatterns...)
		filter, err := changelog.NewSkipFilter(patterns)
		if err != nil {
			return err
		}
		before := len(commits)
		commits = filter.Apply(commits)
		log.Debug("applied skip filter", "dropped", before-len(commits))
	}
	if !c.Bool("no-rewrite") {
		canon, err := changelog.NewCanonicalizer(cfg.Messages.RewriteRules)
		if err != nil {
			return err
		}
		commits = canon.Apply(commits)
	}

	var doc *changelog.Document
	if c.Bool("date-group") {
		doc = changelog.NewGroupedDocument(ctx.RepoName, changelog.GroupByDate(commits, policy))
	} else {
		doc = changelog.NewFlatDocument(ctx.RepoName, commits)
	}

	rendered, err := renderer.Render(doc)
	if err != nil {
		return err
	}

	return output.WriteDocument(c.String("output"), rendered)
}
