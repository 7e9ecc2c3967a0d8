package gitlog

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// StreamOptions configures the streaming driver.
type StreamOptions struct {
	// Quiet attaches an explicit success marker (Meta) to successful
	// units. It never changes failure reporting: failed lines always
	// surface as failed units, never as errors across the stream boundary.
	Quiet bool

	// MaxLineLength bounds a single input line. Zero means the default.
	MaxLineLength int
}

// scanResult carries a scanned line or terminal error from the scanner
// goroutine.
type scanResult struct {
	line string
	err  error
}

// Stream applies the record reconstruction machine to r line by line and
// calls fn once per unit: once for every finalized record, and once for
// every line whose processing failed. A failed line never terminates the
// stream; the machine simply continues with the next line. Units are
// emitted at record granularity, so callers never see a partially
// accumulated record.
//
// Stops on EOF or when ctx is cancelled. On context cancel, Stream closes r
// (if it implements io.Closer) to unblock the scanner goroutine; otherwise
// the caller must close the underlying reader externally to prevent a
// goroutine leak.
func Stream(ctx context.Context, r io.Reader, opts StreamOptions, fn func(Unit)) error {
	maxLine := opts.MaxLineLength
	if maxLine <= 0 {
		maxLine = maxLineSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	lines := make(chan scanResult)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanResult{line: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	var acc Accumulator
	emit := func(c *Commit) {
		u := Unit{Commit: c}
		if opts.Quiet {
			u.Meta = &Meta{Success: true}
		}
		fn(u)
	}

	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				if done := acc.Flush(); done != nil {
					emit(done)
				}
				return nil
			}
			if res.err != nil {
				return res.err
			}
			done, err := feed(&acc, res.line)
			if err != nil {
				fn(Unit{Meta: &Meta{ErrorMsg: err.Error(), Line: res.line}})
				continue
			}
			if done != nil {
				emit(done)
			}
		}
	}
}

// feed isolates one line's worth of work: any panic while processing the
// line degrades to an error on that line alone.
func feed(a *Accumulator, line string) (done *Commit, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse error: %v", r)
		}
	}()
	return a.Feed(line)
}
