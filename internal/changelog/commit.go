package changelog

import (
	"fmt"
	"time"

	"github.com/phicus/changelog-go/internal/git"
)

// Commit is one normalized commit record. It is never mutated after creation.
type Commit struct {
	Hash    string
	Author  string
	Date    time.Time
	Message string
}

// ShortHash returns the abbreviated hash used in rendered output.
func (c Commit) ShortHash() string {
	if len(c.Hash) > 8 {
		return c.Hash[:8]
	}
	return c.Hash
}

// Day returns the commit's calendar date with the time of day discarded.
func (c Commit) Day() string {
	return c.Date.Format("2006-01-02")
}

// MalformedRecordError indicates a raw record from the commit source could
// not be normalized. A corrupt record likely means an incompatible source
// format, so the whole run aborts.
type MalformedRecordError struct {
	Hash  string // May be empty when the hash itself is the problem
	Index int    // Position of the record in the source sequence
	Field string
	Err   error
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	id := e.Hash
	if id == "" {
		id = fmt.Sprintf("record %d", e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed commit record %s: bad %s: %v", id, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed commit record %s: bad %s", id, e.Field)
}

// Unwrap returns the underlying error.
func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Date layouts accepted from source backends, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02",
}

// Normalize converts one raw record into a Commit with a parsed date.
func Normalize(raw git.RawCommit, index int) (Commit, error) {
	if raw.Hash == "" {
		return Commit{}, &MalformedRecordError{Index: index, Field: "hash"}
	}

	var when time.Time
	var err error
	for _, layout := range dateLayouts {
		when, err = time.Parse(layout, raw.Date)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Commit{}, &MalformedRecordError{Hash: raw.Hash, Index: index, Field: "date", Err: err}
	}

	return Commit{
		Hash:    raw.Hash,
		Author:  raw.Author,
		Date:    when,
		Message: raw.Message,
	}, nil
}

// NormalizeAll converts a raw record sequence in order, failing on the first
// malformed record.
func NormalizeAll(raws []git.RawCommit) ([]Commit, error) {
	commits := make([]Commit, 0, len(raws))
	for i, raw := range raws {
		c, err := Normalize(raw, i)
		if err != nil {
			return nil, err
		}
		commits = append(commits, c)
	}
	return commits, nil
}
