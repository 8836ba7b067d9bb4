package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phicus/changelog-go/config"
	"github.com/phicus/changelog-go/internal/git"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "changelog",
		Usage:   "Changelog generator for Git repositories",
		Version: "2.0.0",
		Commands: []*cli.Command{
			GenerateCmd(),
		},
		Flags: append(generateFlags(),
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "warn",
			},
		),
		Before: func(c *cli.Context) error {
			level, err := log.ParseLevel(c.String("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(level)
			return nil
		},
		// Flag-only invocation without a subcommand generates a changelog,
		// matching how the original tool was driven.
		Action: generateAction,
	}
}

// generateFlags returns the flags understood by the generate command.
// They are also mounted on the root command for legacy invocations.
func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r", "path-repo"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Include commits since this date, inclusive (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o", "outfile"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (md, json)",
		},
		&cli.StringFlag{
			Name:  "repo-name",
			Usage: "Repository name label (overrides autodiscovery)",
		},
		&cli.BoolFlag{
			Name:  "auto-name",
			Usage: "Autodiscover the repository name from the repository path",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "date-group",
			Usage: "Group commits by calendar date",
		},
		&cli.StringFlag{
			Name:  "group-policy",
			Usage: "What a reappearing date does (merge, split)",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to read (default: HEAD)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (gogit, cli)",
			Value: "gogit",
		},
		&cli.BoolFlag{
			Name:  "no-rewrite",
			Usage: "Disable message canonicalization",
		},
		&cli.BoolFlag{
			Name:  "no-skip",
			Usage: "Disable the noise-message skip filter",
		},
		&cli.BoolFlag{
			Name:  "write-config",
			Usage: "Write the effective configuration to .changelog.json and exit",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// parseBackendFlag parses the history backend flag.
func parseBackendFlag(s string) (git.SourceBackend, error) {
	switch s {
	case "", "gogit":
		return git.BackendGoGit, nil
	case "cli", "git":
		return git.BackendGitCLI, nil
	default:
		return git.BackendGoGit, fmt.Errorf("unknown backend: %q (expected gogit or cli)", s)
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
