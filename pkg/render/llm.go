package render

import (
	"fmt"
	"strings"

	"github.com/gitjot/gitjot/pkg/gitlog"
)

// LLM renders records as terse plain text optimized for AI consumption.
// Zero ANSI codes, one commit per line, a SCOPE line up front.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all records for LLM consumption.
func (l *LLM) Render(records []gitlog.Record) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("SCOPE: %d commits\n", len(records)))
	for _, r := range records {
		sb.WriteString(shortHash(r.Commit))
		if r.AuthorEmail != "" {
			sb.WriteString(" " + r.AuthorEmail)
		}
		if r.Date != "" {
			sb.WriteString(" " + r.Date)
		}
		if s := subject(r.Message); s != "" {
			sb.WriteString(" " + s)
		}
		if r.Stats != nil {
			sb.WriteString(fmt.Sprintf(" [+%d -%d files:%d]",
				r.Stats.Insertions, r.Stats.Deletions, r.Stats.FilesChanged))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
