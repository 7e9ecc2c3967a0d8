package gitlog

import (
	"errors"
	"fmt"
	"strings"
)

// Accumulator is the record reconstruction state machine. It consumes one
// raw line at a time and emits a finalized Commit whenever a boundary line
// closes the record in progress; Flush does the same at end of input.
//
// At most one record is in progress at any time. The zero value is ready to
// use. An Accumulator serves a single parse and is not safe for concurrent
// use; drivers create one per invocation.
type Accumulator struct {
	cur     *Commit
	message []string
	files   []string
}

// Feed classifies one line and applies it to the record in progress. It
// returns a finalized Commit when the line is a boundary that closes a
// previous record, or nil otherwise. A non-nil error means the line was
// malformed for its role and was not applied; the machine's state is
// unchanged, so processing can continue with the next line.
func (a *Accumulator) Feed(line string) (*Commit, error) {
	switch Classify(line) {
	case RoleBoundary:
		return a.boundary(line)

	case RoleMerge:
		a.open().Merge = fieldValue(line)

	case RoleAuthor:
		name, email, err := splitNameEmail(fieldValue(line))
		if err != nil {
			return nil, fmt.Errorf("author line: %w", err)
		}
		c := a.open()
		c.Author, c.AuthorEmail = name, email

	case RoleCommitter:
		name, email, err := splitNameEmail(fieldValue(line))
		if err != nil {
			return nil, fmt.Errorf("committer line: %w", err)
		}
		c := a.open()
		c.CommitBy, c.CommitByEmail = name, email

	case RoleAuthorDate:
		// Kept verbatim; timestamp parsing is Process's job.
		a.open().Date = fieldValue(line)

	case RoleCommitterDate:
		a.open().CommitByDate = fieldValue(line)

	case RoleMessage:
		a.message = append(a.message, strings.TrimSpace(line))

	case RoleFile:
		name, _, _ := strings.Cut(line, "|")
		a.files = append(a.files, strings.TrimSpace(name))

	case RoleStats:
		// A second summary line for the same record overwrites the first.
		if s, ok := extractStats(line); ok {
			a.open().Stats = &s
		}
	}
	return nil, nil
}

// Flush finalizes the record in progress, if any: pending message lines are
// joined with newlines, the pending file list is attached to the record's
// stats, and transient state is reset. Returns nil when no record is open.
func (a *Accumulator) Flush() *Commit {
	done := a.cur
	if done != nil {
		if len(a.message) > 0 {
			done.Message = strings.Join(a.message, "\n")
		}
		if len(a.files) > 0 {
			if done.Stats == nil {
				done.Stats = &Stats{FilesChanged: "0", Insertions: "0", Deletions: "0"}
			}
			done.Stats.Files = a.files
		}
	}
	a.cur = nil
	a.message = nil
	a.files = nil
	return done
}

// boundary opens a new record, flushing the previous one first. The new
// record is validated before the flush so a malformed boundary line leaves
// the record in progress untouched.
func (a *Accumulator) boundary(line string) (*Commit, error) {
	next := &Commit{}
	if strings.HasPrefix(line, "commit ") {
		id := fieldValue(line)
		if id == "" {
			return nil, errors.New("record boundary missing identifier")
		}
		next.Commit = id
	} else {
		// Oneline dialect: hash, then the whole remainder is the message.
		hash, rest, _ := cutToken(line)
		next.Commit = hash
		next.Message = rest
	}
	done := a.Flush()
	a.cur = next
	return done, nil
}

// open returns the record in progress, creating one when a field line
// arrives without a preceding boundary.
func (a *Accumulator) open() *Commit {
	if a.cur == nil {
		a.cur = &Commit{}
	}
	return a.cur
}

// fieldValue returns the remainder of a "Label: value" line after the first
// whitespace run. The fuller format pads labels with extra spaces, so the
// remainder's leading whitespace is stripped too.
func fieldValue(line string) string {
	_, rest, _ := cutToken(line)
	return rest
}

// splitNameEmail splits an identity value on its last whitespace run: the
// left portion is the display name, the right the email address with
// enclosing angle brackets stripped.
func splitNameEmail(v string) (name, email string, err error) {
	i := strings.LastIndexAny(v, " \t")
	if i < 0 {
		return "", "", fmt.Errorf("no email in %q", v)
	}
	return strings.TrimRight(v[:i], " \t"), strings.Trim(v[i+1:], "<>"), nil
}
