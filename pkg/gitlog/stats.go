package gitlog

import "regexp"

// changesRe matches the shortstat summary line, e.g.
//
//	" 3 files changed, 90 insertions(+), 12 deletions(-)"
//
// The insertions and deletions clauses are each optional: git omits a clause
// entirely when its count is zero.
var changesRe = regexp.MustCompile(
	`^\s+(\d+) files? changed(?:, (\d+) insertions?\(\+\))?(?:, (\d+) deletions?\(-\))?`,
)

// extractStats pulls the change counts out of a summary line. Counts stay
// textual; clauses missing from the line resolve to "0". ok is false when
// the line does not match the summary shape at all, in which case no stats
// should be attached for it.
func extractStats(line string) (Stats, bool) {
	m := changesRe.FindStringSubmatch(line)
	if m == nil {
		return Stats{}, false
	}
	return Stats{
		FilesChanged: m[1],
		Insertions:   orZero(m[2]),
		Deletions:    orZero(m[3]),
	}, true
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
