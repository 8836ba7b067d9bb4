package changelog

import "fmt"

// CommitGroup holds the commits sharing one calendar date, in the same
// relative order as the source sequence.
type CommitGroup struct {
	Date    string // YYYY-MM-DD
	Commits []Commit
}

// GroupPolicy controls what happens when a date reappears later in the
// sequence after a different date.
type GroupPolicy int

const (
	// PolicyMerge folds a reappearing date back into its existing group.
	// Groups are ordered by first appearance.
	PolicyMerge GroupPolicy = iota
	// PolicySplit opens a new group at the current position instead. This
	// keeps the transform strictly single-pass and streaming.
	PolicySplit
)

// String returns a string representation of the policy.
func (p GroupPolicy) String() string {
	switch p {
	case PolicySplit:
		return "split"
	default:
		return "merge"
	}
}

// ParseGroupPolicy parses a policy name from config or a CLI flag.
func ParseGroupPolicy(s string) (GroupPolicy, error) {
	switch s {
	case "", "merge":
		return PolicyMerge, nil
	case "split":
		return PolicySplit, nil
	default:
		return PolicyMerge, fmt.Errorf("unknown group policy: %q (expected merge or split)", s)
	}
}

// GroupByDate partitions the ordered commit sequence into date-keyed groups.
// Relative commit order is preserved in every group; an empty input yields an
// empty group slice.
func GroupByDate(commits []Commit, policy GroupPolicy) []CommitGroup {
	if policy == PolicySplit {
		return groupSplit(commits)
	}
	return groupMerge(commits)
}

func groupMerge(commits []Commit) []CommitGroup {
	groups := make([]CommitGroup, 0)
	index := make(map[string]int) // date -> position in groups

	for _, c := range commits {
		day := c.Day()
		i, seen := index[day]
		if !seen {
			i = len(groups)
			index[day] = i
			groups = append(groups, CommitGroup{Date: day})
		}
		groups[i].Commits = append(groups[i].Commits, c)
	}
	return groups
}

func groupSplit(commits []Commit) []CommitGroup {
	groups := make([]CommitGroup, 0)

	for _, c := range commits {
		day := c.Day()
		if n := len(groups); n > 0 && groups[n-1].Date == day {
			groups[n-1].Commits = append(groups[n-1].Commits, c)
			continue
		}
		groups = append(groups, CommitGroup{Date: day, Commits: []Commit{c}})
	}
	return groups
}

// Flatten concatenates group commit sequences in group order. For split
// grouping this reproduces the original sequence exactly.
func Flatten(groups []CommitGroup) []Commit {
	var commits []Commit
	for _, g := range groups {
		commits = append(commits, g.Commits...)
	}
	return commits
}
