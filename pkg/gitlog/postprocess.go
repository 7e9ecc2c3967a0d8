package gitlog

import (
	"github.com/gitjot/gitjot/internal/coerce"
	"github.com/gitjot/gitjot/internal/timestamp"
)

// Process enriches parsed commits into fully typed records: change counts
// become integers and epoch fields are derived from the date string. It is
// pure and idempotent, and it is optional; a Commit is structurally valid
// without it. A date that fails to parse leaves the epoch fields absent; it
// never fails the record.
func Process(commits []Commit) []Record {
	records := make([]Record, 0, len(commits))
	for _, c := range commits {
		r := Record{
			Commit:        c.Commit,
			Merge:         c.Merge,
			Author:        c.Author,
			AuthorEmail:   c.AuthorEmail,
			Date:          c.Date,
			CommitBy:      c.CommitBy,
			CommitByEmail: c.CommitByEmail,
			CommitByDate:  c.CommitByDate,
			Message:       c.Message,
		}
		if c.Date != "" {
			ts := timestamp.Parse(c.Date)
			r.Epoch, r.EpochUTC = ts.Naive, ts.UTC
		}
		if c.Stats != nil {
			files, _ := coerce.ToInt(c.Stats.FilesChanged)
			ins, _ := coerce.ToInt(c.Stats.Insertions)
			del, _ := coerce.ToInt(c.Stats.Deletions)
			r.Stats = &RecordStats{
				FilesChanged: files,
				Insertions:   ins,
				Deletions:    del,
				Files:        c.Stats.Files,
			}
		}
		records = append(records, r)
	}
	return records
}
