package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// WriteDocument writes rendered text to the given path, or to stdout when the
// path is empty. The file handle is acquired only here, after rendering has
// already succeeded, and is released on every exit path.
func WriteDocument(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	// Confirmation goes to stderr so stdout stays reserved for documents.
	color.New(color.FgGreen).Fprintf(color.Error, "File %q was saved successfully\n", path)
	return nil
}
