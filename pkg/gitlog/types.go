// Package gitlog reconstructs structured commit records from the
// human-oriented output of git log. It understands the oneline, short,
// medium, full and fuller presentation formats, optionally annotated with
// --stat or --shortstat summaries.
package gitlog

// Commit is one reconstructed log entry as it appeared in the source text.
// Every field is optional: a field is populated only when the corresponding
// line was present in the input, and absence is meaningful rather than an
// error. All values are kept verbatim as strings; see Process for numeric
// coercion and timestamp enrichment.
type Commit struct {
	Commit        string `json:"commit,omitempty"`
	Merge         string `json:"merge,omitempty"`
	Author        string `json:"author,omitempty"`
	AuthorEmail   string `json:"author_email,omitempty"`
	Date          string `json:"date,omitempty"`
	CommitBy      string `json:"commit_by,omitempty"`
	CommitByEmail string `json:"commit_by_email,omitempty"`
	CommitByDate  string `json:"commit_by_date,omitempty"`
	Message       string `json:"message,omitempty"`
	Stats         *Stats `json:"stats,omitempty"`
}

// Stats holds the change summary attached to a commit by --stat or
// --shortstat output. Counts stay textual until Process coerces them.
// Files preserves source order, duplicates included.
type Stats struct {
	FilesChanged string   `json:"files_changed"`
	Insertions   string   `json:"insertions"`
	Deletions    string   `json:"deletions"`
	Files        []string `json:"files,omitempty"`
}

// Record is a fully processed commit: change counts coerced to integers and
// epoch fields derived from the date string. Epoch is the date interpreted
// in local time; EpochUTC is set only when the date carries a zero UTC
// offset. Both stay nil when the date is absent or unparseable.
type Record struct {
	Commit        string       `json:"commit,omitempty"`
	Merge         string       `json:"merge,omitempty"`
	Author        string       `json:"author,omitempty"`
	AuthorEmail   string       `json:"author_email,omitempty"`
	Date          string       `json:"date,omitempty"`
	Epoch         *int64       `json:"epoch,omitempty"`
	EpochUTC      *int64       `json:"epoch_utc,omitempty"`
	CommitBy      string       `json:"commit_by,omitempty"`
	CommitByEmail string       `json:"commit_by_email,omitempty"`
	CommitByDate  string       `json:"commit_by_date,omitempty"`
	Message       string       `json:"message,omitempty"`
	Stats         *RecordStats `json:"stats,omitempty"`
}

// RecordStats is the processed form of Stats.
type RecordStats struct {
	FilesChanged int      `json:"files_changed"`
	Insertions   int      `json:"insertions"`
	Deletions    int      `json:"deletions"`
	Files        []string `json:"files,omitempty"`
}

// Meta reports the outcome of one streamed unit of work.
type Meta struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"error_msg,omitempty"`
	Line     string `json:"line,omitempty"`
}

// Unit is one item produced by the streaming driver: either a finalized
// Commit, or a Meta describing a line that failed in isolation. A successful
// unit carries Meta only when StreamOptions.Quiet asked for an explicit
// success marker.
type Unit struct {
	Commit *Commit `json:"commit,omitempty"`
	Meta   *Meta   `json:"_meta,omitempty"`
}

// Failed reports whether the unit records an isolated line failure.
func (u Unit) Failed() bool {
	return u.Meta != nil && !u.Meta.Success
}
