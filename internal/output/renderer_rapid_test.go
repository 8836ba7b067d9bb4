package output

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/phicus/changelog-go/internal/changelog"
	"pgregory.net/rapid"
)

// --- Generators ---

func genCommit() *rapid.Generator[changelog.Commit] {
	return rapid.Custom(func(t *rapid.T) changelog.Commit {
		day := rapid.IntRange(1, 7).Draw(t, "day")
		return changelog.Commit{
			Hash:    fmt.Sprintf("%08x", rapid.Uint32().Draw(t, "hash")),
			Author:  rapid.SampledFrom([]string{"Al", "Bo", "Cy"}).Draw(t, "author"),
			Date:    time.Date(2024, 2, day, rapid.IntRange(0, 23).Draw(t, "hour"), 0, 0, 0, time.UTC),
			Message: rapid.StringMatching(`[a-z ]{1,20}`).Draw(t, "message"),
		}
	})
}

func genCommits() *rapid.Generator[[]changelog.Commit] {
	return rapid.SliceOfN(genCommit(), 0, 30)
}

// --- Property Tests ---

func TestRapidRender_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		commits := genCommits().Draw(t, "commits")
		grouped := rapid.Bool().Draw(t, "grouped")

		var doc *changelog.Document
		if grouped {
			doc = changelog.NewGroupedDocument("demo", changelog.GroupByDate(commits, changelog.PolicyMerge))
		} else {
			doc = changelog.NewFlatDocument("demo", commits)
		}

		for _, format := range []Format{FormatMarkdown, FormatJSON} {
			r, err := NewRenderer(format)
			if err != nil {
				t.Fatalf("NewRenderer(%s): %v", format, err)
			}
			first, err := r.Render(doc)
			if err != nil {
				t.Fatalf("Render(%s): %v", format, err)
			}
			second, err := r.Render(doc)
			if err != nil {
				t.Fatalf("Render(%s): %v", format, err)
			}
			if first != second {
				t.Fatalf("%s rendering not idempotent", format)
			}
		}
	})
}

func TestRapidRender_JSONPreservesFlatOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		commits := genCommits().Draw(t, "commits")
		doc := changelog.NewFlatDocument("demo", commits)

		rendered, err := (&JSONRenderer{}).Render(doc)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		var parsed JSONFlatDocument
		if err := json.Unmarshal([]byte(rendered), &parsed); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(parsed.Commits) != len(commits) {
			t.Fatalf("len = %d, want %d", len(parsed.Commits), len(commits))
		}
		for i, c := range commits {
			got := parsed.Commits[i]
			if got.Hash != c.Hash || got.Author != c.Author || got.Message != c.Message {
				t.Fatalf("commit %d reordered or altered: %+v vs %+v", i, got, c)
			}
		}
	})
}
