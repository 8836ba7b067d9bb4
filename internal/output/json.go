package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/phicus/changelog-go/internal/changelog"
)

// JSONRenderer renders a document as JSON.
//
// The schema is a stable machine contract:
//
//	flat:    {"repository": string, "commits": [...]}
//	grouped: {"repository": string, "groups": [{"date": string, "commits": [...]}]}
//
// where each commit object is {"hash", "author", "date", "message"} with the
// date in RFC 3339.
type JSONRenderer struct{}

// JSONFlatDocument is the top-level JSON output structure in flat mode.
type JSONFlatDocument struct {
	Repository string       `json:"repository"`
	Commits    []JSONCommit `json:"commits"`
}

// JSONGroupedDocument is the top-level JSON output structure in grouped mode.
type JSONGroupedDocument struct {
	Repository string      `json:"repository"`
	Groups     []JSONGroup `json:"groups"`
}

// JSONGroup is the JSON output structure for one date group.
type JSONGroup struct {
	Date    string       `json:"date"`
	Commits []JSONCommit `json:"commits"`
}

// JSONCommit is the JSON output structure for a single commit.
type JSONCommit struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// Render produces the indented JSON changelog.
func (r *JSONRenderer) Render(doc *changelog.Document) (string, error) {
	var out any
	if doc.Grouped {
		groups := make([]JSONGroup, len(doc.Groups))
		for i, g := range doc.Groups {
			groups[i] = JSONGroup{Date: g.Date, Commits: jsonCommits(g.Commits)}
		}
		out = JSONGroupedDocument{Repository: doc.Repository, Groups: groups}
	} else {
		out = JSONFlatDocument{Repository: doc.Repository, Commits: jsonCommits(doc.Commits)}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func jsonCommits(commits []changelog.Commit) []JSONCommit {
	items := make([]JSONCommit, len(commits))
	for i, c := range commits {
		items[i] = JSONCommit{
			Hash:    c.Hash,
			Author:  c.Author,
			Date:    c.Date.Format(time.RFC3339),
			Message: c.Message,
		}
	}
	return items
}
