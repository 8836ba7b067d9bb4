package output

import (
	"fmt"

	"github.com/phicus/changelog-go/internal/changelog"
)

// Compile-time interface conformance checks.
var (
	_ Renderer = (*MarkdownRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
)

// Format represents the output format type.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// UnsupportedFormatError indicates a format selector outside the supported
// set. It is a configuration error and aborts before any rendering or sink
// I/O happens.
type UnsupportedFormatError struct {
	Format string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format: %q (valid formats: md, json)", e.Format)
}

// ParseFormat validates a format selector from config or a CLI flag.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}

// Renderer serializes a document into a text blob. Rendering is pure: the
// same document always produces the same string, and no clock is read.
type Renderer interface {
	Render(doc *changelog.Document) (string, error)
}

// NewRenderer creates a renderer for the specified format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatMarkdown:
		return &MarkdownRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
}
