package changelog

// Document is the rendering target: either a flat commit sequence or a
// sequence of date groups, labelled with the repository name. It exists only
// transiently between grouping and rendering.
type Document struct {
	Repository string
	Grouped    bool
	Commits    []Commit      // Flat mode
	Groups     []CommitGroup // Grouped mode
}

// NewFlatDocument builds a flat document over the given commits.
func NewFlatDocument(repository string, commits []Commit) *Document {
	return &Document{Repository: repository, Commits: commits}
}

// NewGroupedDocument builds a date-grouped document.
func NewGroupedDocument(repository string, groups []CommitGroup) *Document {
	return &Document{Repository: repository, Grouped: true, Groups: groups}
}
