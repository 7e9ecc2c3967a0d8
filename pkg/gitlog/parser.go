package gitlog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single input line; log messages and file lists can
// get long but never near this.
const maxLineSize = 1024 * 1024

// Parse reconstructs commit records from complete git log output. Records
// come back in source order. Lines that match no known shape are ignored,
// so unknown decorations never fail a parse, and malformed field lines are
// skipped rather than reported. Empty input yields an empty slice.
func Parse(data string) []Commit {
	commits, _ := ParseReader(strings.NewReader(data))
	return commits
}

// ParseReader is Parse over an io.Reader. The only possible error is a
// scanner failure from the reader itself; malformed content never errors.
func ParseReader(r io.Reader) ([]Commit, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var acc Accumulator
	commits := []Commit{}
	for scanner.Scan() {
		done, err := acc.Feed(scanner.Text())
		if err != nil {
			continue
		}
		if done != nil {
			commits = append(commits, *done)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning log output: %w", err)
	}
	if done := acc.Flush(); done != nil {
		commits = append(commits, *done)
	}
	return commits, nil
}
