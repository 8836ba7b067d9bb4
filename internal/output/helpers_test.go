package output

import (
	"time"

	"github.com/phicus/changelog-go/internal/changelog"
)

func mkCommit(hash, author, day, message string) changelog.Commit {
	d, _ := time.Parse("2006-01-02", day)
	return changelog.Commit{Hash: hash, Author: author, Date: d, Message: message}
}

// exampleCommits is the worked example: two commits on 2024-01-02 followed by
// one on 2024-01-01, newest first.
func exampleCommits() []changelog.Commit {
	return []changelog.Commit{
		mkCommit("a1", "Bo", "2024-01-02", "fix"),
		mkCommit("b2", "Bo", "2024-01-02", "add"),
		mkCommit("c3", "Al", "2024-01-01", "init"),
	}
}

func exampleGroupedDocument() *changelog.Document {
	commits := exampleCommits()
	return changelog.NewGroupedDocument("demo", changelog.GroupByDate(commits, changelog.PolicyMerge))
}
