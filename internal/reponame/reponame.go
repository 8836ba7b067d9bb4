// Package reponame autodiscovers a display name for a repository. The name
// is only a label in the rendered document and never feeds grouping or
// filtering.
package reponame

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Discover resolves a repository name from the repository path. It tries the
// package.json name (npm scope stripped), then the go.mod module path base,
// and falls back to the base directory name.
func Discover(repoPath string) string {
	if name := fromPackageJSON(filepath.Join(repoPath, "package.json")); name != "" {
		return name
	}
	if name := fromGoMod(filepath.Join(repoPath, "go.mod")); name != "" {
		return name
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return filepath.Base(repoPath)
	}
	return filepath.Base(abs)
}

func fromPackageJSON(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	name := pkg.Name
	// Strip the npm scope, e.g. "@acme/widget" -> "widget"
	if strings.HasPrefix(name, "@") {
		if idx := strings.IndexByte(name, '/'); idx != -1 {
			name = name[idx+1:]
		}
	}
	return name
}

func fromGoMod(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if modPath, ok := strings.CutPrefix(line, "module "); ok {
			return path.Base(strings.TrimSpace(modPath))
		}
	}
	return ""
}
