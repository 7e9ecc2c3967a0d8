// Package render provides output renderers for reconstructed commit records.
package render

import "github.com/gitjot/gitjot/pkg/gitlog"

// Renderer converts processed records to formatted output.
type Renderer interface {
	Render(records []gitlog.Record) string
}
