package output

import (
	"fmt"
	"strings"

	"github.com/phicus/changelog-go/internal/changelog"
)

// MarkdownRenderer renders a document as Markdown.
type MarkdownRenderer struct{}

// Render produces the Markdown changelog. Flat mode emits one bullet per
// commit in source order; grouped mode emits a second-level heading per date
// group, with the date omitted from bullets since it lives in the heading.
func (r *MarkdownRenderer) Render(doc *changelog.Document) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", doc.Repository)

	if doc.Grouped {
		for _, g := range doc.Groups {
			fmt.Fprintf(&b, "\n## %s\n\n", g.Date)
			for _, c := range g.Commits {
				fmt.Fprintf(&b, "- %s: %s (%s)\n", c.Author, c.Message, c.ShortHash())
			}
		}
		return b.String(), nil
	}

	if len(doc.Commits) > 0 {
		b.WriteString("\n")
	}
	for _, c := range doc.Commits {
		fmt.Fprintf(&b, "- %s %s: %s (%s)\n", c.Day(), c.Author, c.Message, c.ShortHash())
	}
	return b.String(), nil
}
