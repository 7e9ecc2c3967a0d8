// Package timestamp converts git date strings to epoch values.
package timestamp

import (
	"strings"
	"time"
)

// Result holds the outcome of a conversion. Naive is the string's wall
// clock interpreted in the local timezone, ignoring any offset it carries.
// UTC is timezone-aware and set only when the source string carries a zero
// UTC offset. Both stay nil when no known layout matches.
type Result struct {
	Naive *int64
	UTC   *int64
}

// Layouts git emits depending on --date: default, rfc2822, iso, iso-strict.
var layouts = []string{
	"Mon Jan 2 15:04:05 2006 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02T15:04:05-07:00",
}

// Parse tries each known git date layout against s. Unparseable input
// returns the zero Result; it is never an error, callers simply leave the
// epoch fields absent.
func Parse(s string) Result {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		naive := time.Date(t.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, time.Local).Unix()
		res := Result{Naive: &naive}
		if _, offset := t.Zone(); offset == 0 {
			utc := t.Unix()
			res.UTC = &utc
		}
		return res
	}
	return Result{}
}
