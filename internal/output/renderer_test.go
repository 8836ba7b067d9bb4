package output

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "json", want: FormatJSON},
		{in: "yaml", wantErr: true},
		{in: "csv", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error", tt.in)
				}
				var ufe *UnsupportedFormatError
				if !errors.As(err, &ufe) {
					t.Fatalf("error type = %T, want *UnsupportedFormatError", err)
				}
				if ufe.Format != tt.in {
					t.Fatalf("Format = %q, want %q", ufe.Format, tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewRenderer(t *testing.T) {
	t.Run("Markdown", func(t *testing.T) {
		r, err := NewRenderer(FormatMarkdown)
		if err != nil {
			t.Fatalf("NewRenderer() error = %v", err)
		}
		if _, ok := r.(*MarkdownRenderer); !ok {
			t.Fatalf("renderer type = %T, want *MarkdownRenderer", r)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		r, err := NewRenderer(FormatJSON)
		if err != nil {
			t.Fatalf("NewRenderer() error = %v", err)
		}
		if _, ok := r.(*JSONRenderer); !ok {
			t.Fatalf("renderer type = %T, want *JSONRenderer", r)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewRenderer(Format("yaml"))
		var ufe *UnsupportedFormatError
		if !errors.As(err, &ufe) {
			t.Fatalf("error = %v, want *UnsupportedFormatError", err)
		}
	})
}
