package render

import (
	"encoding/json"

	"github.com/gitjot/gitjot/pkg/gitlog"
)

// JSON renders records as an indented JSON array for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// Render formats all records as JSON.
func (j *JSON) Render(records []gitlog.Record) string {
	return marshal(records)
}

// Raw renders unprocessed commits as JSON: counts stay textual and no epoch
// fields are computed.
func Raw(commits []gitlog.Commit) string {
	return marshal(commits)
}

// Unit renders one streamed unit as a single NDJSON line. Unless raw is
// set, a commit payload is post-processed first. Failed units serialize
// only their meta block.
func Unit(u gitlog.Unit, raw bool) string {
	var v any
	switch {
	case u.Commit == nil:
		v = struct {
			Meta *gitlog.Meta `json:"_meta"`
		}{u.Meta}
	case raw && u.Meta != nil:
		v = struct {
			*gitlog.Commit
			Meta *gitlog.Meta `json:"_meta"`
		}{u.Commit, u.Meta}
	case raw:
		v = u.Commit
	default:
		rec := gitlog.Process([]gitlog.Commit{*u.Commit})[0]
		if u.Meta != nil {
			v = struct {
				gitlog.Record
				Meta *gitlog.Meta `json:"_meta"`
			}{rec, u.Meta}
		} else {
			v = rec
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return `{"_meta":{"success":false,"error_msg":"marshal failure"}}` + "\n"
	}
	return string(data) + "\n"
}

func marshal(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON) + "\n"
	}
	return string(data) + "\n"
}
