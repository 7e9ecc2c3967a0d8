package gitlog

import (
	"regexp"
	"strings"
)

// Role is the semantic classification of one raw line of git log output.
type Role int

const (
	// RoleUnknown marks a line no rule recognizes. Unknown lines are
	// no-ops during accumulation, so decorative output never breaks a parse.
	RoleUnknown Role = iota
	RoleBoundary
	RoleMerge
	RoleAuthor
	RoleAuthorDate
	RoleCommitterDate
	RoleCommitter
	RoleMessage
	RoleFile
	RoleStats
)

var hashRe = regexp.MustCompile(`^[0-9a-f]{40}$`)

// IsCommitHash reports whether s looks like a full commit identifier:
// exactly 40 lowercase hexadecimal characters.
func IsCommitHash(s string) bool {
	return len(s) == 40 && hashRe.MatchString(s)
}

// Classify maps one raw line to its Role. It is stateless and total: every
// line maps to some role. A line starting with "commit " is a record
// boundary regardless of dialect; in the oneline dialect a boundary is any
// unindented line whose first token is a full commit hash.
func Classify(line string) Role {
	switch {
	case strings.HasPrefix(line, "commit "):
		return RoleBoundary
	case strings.HasPrefix(line, "Merge: "):
		return RoleMerge
	case strings.HasPrefix(line, "Author: "):
		return RoleAuthor
	case strings.HasPrefix(line, "Date: "), strings.HasPrefix(line, "AuthorDate: "):
		return RoleAuthorDate
	case strings.HasPrefix(line, "CommitDate: "):
		return RoleCommitterDate
	case strings.HasPrefix(line, "Commit: "):
		return RoleCommitter
	case strings.HasPrefix(line, "    "):
		return RoleMessage
	case strings.HasPrefix(line, " "), strings.HasPrefix(line, "\t"):
		if strings.Contains(line, "changed, ") {
			return RoleStats
		}
		return RoleFile
	default:
		if first, _, _ := cutToken(line); IsCommitHash(first) {
			return RoleBoundary
		}
		return RoleUnknown
	}
}

// cutToken splits line at the first whitespace run, returning the first
// token, the remainder with its leading whitespace removed, and whether a
// remainder exists.
func cutToken(line string) (token, rest string, ok bool) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, "", false
	}
	token = line[:i]
	rest = strings.TrimLeft(line[i:], " \t")
	return token, rest, rest != ""
}
