package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gitjot/gitjot/pkg/gitlog"
)

// Terminal renders records as a styled commit listing.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

var titleCaser = cases.Title(language.English)

// Render formats all records for terminal display.
func (t *Terminal) Render(records []gitlog.Record) string {
	var sb strings.Builder
	header := titleCaser.String(fmt.Sprintf("commits (%d)", len(records)))
	sb.WriteString(t.theme.Bold.Render(header))
	sb.WriteString("\n")

	for _, r := range records {
		sb.WriteString(t.renderOne(r))
	}
	return sb.String()
}

func (t *Terminal) renderOne(r gitlog.Record) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(t.theme.Hash.Render(shortHash(r.Commit)))
	if r.Merge != "" {
		sb.WriteString(t.theme.Muted.Render(" (merge)"))
	}
	sb.WriteString(" ")
	sb.WriteString(t.theme.Bold.Render(t.truncate(subject(r.Message))))
	sb.WriteString("\n")

	if r.Author != "" {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Author.Render(r.Author))
		if r.AuthorEmail != "" {
			sb.WriteString(t.theme.Muted.Render(" <" + r.AuthorEmail + ">"))
		}
		sb.WriteString("\n")
	}
	if r.Date != "" {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(r.Date))
		sb.WriteString("\n")
	}
	if r.Stats != nil {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Added.Render(fmt.Sprintf("+%d", r.Stats.Insertions)))
		sb.WriteString(" ")
		sb.WriteString(t.theme.Removed.Render(fmt.Sprintf("-%d", r.Stats.Deletions)))
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf(" (%d files)", r.Stats.FilesChanged)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// truncate shortens s to the available terminal width in display cells,
// which keeps East Asian Wide characters and emoji from overflowing.
func (t *Terminal) truncate(s string) string {
	limit := t.width - 12 // hash column plus padding
	if limit < 10 {
		limit = 10
	}
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	return runewidth.Truncate(s, limit, "…")
}

// shortHash abbreviates a full commit identifier for display.
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	if hash == "" {
		return "????????"
	}
	return hash
}

// subject returns the first line of a commit message.
func subject(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}
