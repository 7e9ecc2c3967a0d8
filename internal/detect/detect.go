// Package detect sniffs input to determine the git log dialect family.
package detect

import (
	"bytes"
	"strings"

	"github.com/gitjot/gitjot/pkg/gitlog"
)

// Dialect represents a recognized output variant of git log.
type Dialect int

const (
	Unknown Dialect = iota
	Oneline         // one record per line, hash first
	Long            // "commit <hash>" header blocks (short/medium/full/fuller)
)

// String returns the dialect name for diagnostics.
func (d Dialect) String() string {
	switch d {
	case Oneline:
		return "oneline"
	case Long:
		return "long"
	default:
		return "unknown"
	}
}

// Sniff examines the first bytes of input to determine the dialect family.
// Detection only drives diagnostics and mode selection; unknown input still
// parses, because line classification is total.
func Sniff(data []byte) Dialect {
	for _, raw := range bytes.Split(data, []byte("\n")) {
		line := string(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "commit ") {
			return Long
		}
		first, _, _ := strings.Cut(line, " ")
		if gitlog.IsCommitHash(first) {
			return Oneline
		}
		return Unknown
	}
	return Unknown
}
