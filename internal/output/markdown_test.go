package output

import (
	"strings"
	"testing"

	"github.com/phicus/changelog-go/internal/changelog"
)

func TestMarkdownRenderFlat(t *testing.T) {
	doc := changelog.NewFlatDocument("demo", exampleCommits())

	got, err := (&MarkdownRenderer{}).Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "# demo\n" +
		"\n" +
		"- 2024-01-02 Bo: fix (a1)\n" +
		"- 2024-01-02 Bo: add (b2)\n" +
		"- 2024-01-01 Al: init (c3)\n"
	if got != want {
		t.Fatalf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestMarkdownRenderGrouped(t *testing.T) {
	got, err := (&MarkdownRenderer{}).Render(exampleGroupedDocument())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "# demo\n" +
		"\n## 2024-01-02\n\n" +
		"- Bo: fix (a1)\n" +
		"- Bo: add (b2)\n" +
		"\n## 2024-01-01\n\n" +
		"- Al: init (c3)\n"
	if got != want {
		t.Fatalf("Render() =\n%q\nwant\n%q", got, want)
	}

	// Newest date heading comes first.
	if strings.Index(got, "## 2024-01-02") > strings.Index(got, "## 2024-01-01") {
		t.Fatal("2024-01-02 heading should precede 2024-01-01")
	}
}

func TestMarkdownRenderEmpty(t *testing.T) {
	t.Run("Flat", func(t *testing.T) {
		got, err := (&MarkdownRenderer{}).Render(changelog.NewFlatDocument("demo", nil))
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != "# demo\n" {
			t.Fatalf("Render() = %q, want %q", got, "# demo\n")
		}
	})

	t.Run("Grouped", func(t *testing.T) {
		got, err := (&MarkdownRenderer{}).Render(changelog.NewGroupedDocument("demo", nil))
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != "# demo\n" {
			t.Fatalf("Render() = %q, want %q", got, "# demo\n")
		}
	})
}

func TestMarkdownRenderIdempotent(t *testing.T) {
	doc := exampleGroupedDocument()
	r := &MarkdownRenderer{}

	first, err := r.Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := r.Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if first != second {
		t.Fatal("repeated rendering produced different output")
	}
}
