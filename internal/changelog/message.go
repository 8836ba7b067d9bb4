package changelog

import (
	"regexp"
	"strings"
)

// SkipFilter drops commits whose messages match noise patterns, such as
// work-in-progress markers and merge messages.
type SkipFilter struct {
	patterns []*regexp.Regexp
}

// NewSkipFilter compiles a filter from a list of regex pattern strings.
// Patterns are compiled as case-insensitive. Returns an error if any pattern
// fails to compile.
func NewSkipFilter(patterns []string) (*SkipFilter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "(?i)") {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &SkipFilter{patterns: compiled}, nil
}

// Matches returns true if the message matches any of the filter's patterns.
func (f *SkipFilter) Matches(message string) bool {
	for _, re := range f.patterns {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}

// Apply returns the commits whose messages do not match, preserving order.
// A filter with no patterns is the identity.
func (f *SkipFilter) Apply(commits []Commit) []Commit {
	if len(f.patterns) == 0 {
		return commits
	}
	kept := make([]Commit, 0, len(commits))
	for _, c := range commits {
		if f.Matches(c.Message) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// RewriteRule canonicalizes one shorthand message prefix to a label.
type RewriteRule struct {
	Pattern string `json:"pattern"` // Regex matched against the message start
	Label   string `json:"label"`   // Canonical label, e.g. "Fix:"
}

// Canonicalizer rewrites shorthand commit-message prefixes into canonical
// labels and pulls issue references out into a trailing note.
type Canonicalizer struct {
	rules []compiledRule
}

type compiledRule struct {
	re    *regexp.Regexp
	label string
}

var issueRef = regexp.MustCompile(`#\d+`)

// NewCanonicalizer compiles a canonicalizer from rewrite rules. Each pattern
// is anchored at the message start and compiled case-insensitive.
func NewCanonicalizer(rules []RewriteRule) (*Canonicalizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		p := strings.TrimSpace(r.Pattern)
		if p == "" {
			continue
		}
		re, err := regexp.Compile("(?i)^(?:" + p + `)[:\s]+`)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledRule{re: re, label: r.Label})
	}
	return &Canonicalizer{rules: compiled}, nil
}

// Rewrite canonicalizes one message.
func (c *Canonicalizer) Rewrite(message string) string {
	if issue := issueRef.FindString(message); issue != "" {
		message = strings.Replace(message, issue, "", 1)
		message = strings.ReplaceAll(message, " :", ":")
		message = strings.TrimSpace(message) + " (Related to issue: " + issue + ")"
	}
	for _, r := range c.rules {
		if loc := r.re.FindStringIndex(message); loc != nil {
			return r.label + " " + strings.TrimSpace(message[loc[1]:])
		}
	}
	return message
}

// Apply rewrites every commit message, preserving order. Commits are value
// types, so the input slice is left untouched.
func (c *Canonicalizer) Apply(commits []Commit) []Commit {
	if len(c.rules) == 0 {
		return commits
	}
	out := make([]Commit, len(commits))
	for i, commit := range commits {
		commit.Message = c.Rewrite(commit.Message)
		out[i] = commit
	}
	return out
}
