// gitjot converts human-oriented git log output into structured records.
//
// Usage:
//
//	git log | gitjot
//	git log --stat | gitjot -format llm
//	git log --oneline | gitjot -stream
//
// Accepts the oneline, short, medium, full and fuller presentation formats
// on stdin, optionally annotated with --stat or --shortstat.
//
// Output modes (auto-detected):
//
//	json      - structured JSON array (default when piped)
//	terminal  - styled commit listing (default when TTY)
//	llm       - terse plain text for AI consumption
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/gitjot/gitjot/internal/config"
	"github.com/gitjot/gitjot/internal/detect"
	"github.com/gitjot/gitjot/internal/platform"
	"github.com/gitjot/gitjot/pkg/gitlog"
	"github.com/gitjot/gitjot/pkg/live"
	"github.com/gitjot/gitjot/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gitjot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", config.DefaultFormat, "Output format: auto, json, terminal, llm")
	themeFlag := fs.String("theme", config.DefaultTheme, "Theme: default, orca, mono")
	rawFlag := fs.Bool("raw", false, "Skip post-processing: counts stay textual, no epoch fields")
	quietFlag := fs.Bool("quiet", false, "Attach explicit success markers to streamed units")
	streamFlag := fs.Bool("stream", false, "Parse line by line, emitting one unit per record")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fileCfg, err := config.FindAndLoad()
	if err != nil {
		fmt.Fprintf(stderr, "gitjot: %v\n", err)
		return 2
	}
	flags := config.Flags{
		Format: *formatFlag,
		Theme:  *themeFlag,
		Raw:    *rawFlag,
		Quiet:  *quietFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			flags.FormatSet = true
		case "theme":
			flags.ThemeSet = true
		case "raw":
			flags.RawSet = true
		case "quiet":
			flags.QuietSet = true
		}
	})
	cfg := config.Resolve(flags, os.Getenv, fileCfg)

	if cfg.Warnings {
		platform.Warn(stderr)
	}

	// Peek stdin to detect the dialect without consuming.
	br := bufio.NewReaderSize(stdin, 8*1024)
	peeked, _ := br.Peek(4096)
	if len(peeked) == 0 {
		fmt.Fprintln(stderr, "gitjot: no input on stdin")
		return 2
	}
	if detect.Sniff(peeked) == detect.Unknown && cfg.Warnings {
		fmt.Fprintln(stderr, "gitjot: warning: input does not look like git log output")
	}

	if *streamFlag {
		return runStream(stdin, br, stdout, stderr, cfg)
	}
	return runBatch(br, stdout, stderr, cfg)
}

// runBatch parses the whole input at once and renders it in the resolved
// format.
func runBatch(r io.Reader, stdout, stderr io.Writer, cfg config.Resolved) int {
	commits, err := gitlog.ParseReader(r)
	if err != nil {
		fmt.Fprintf(stderr, "gitjot: %v\n", err)
		return 2
	}
	if cfg.Raw {
		fmt.Fprint(stdout, render.Raw(commits))
		return 0
	}

	records := gitlog.Process(commits)
	var renderer render.Renderer
	switch resolveFormat(cfg.Format, stdout) {
	case "terminal":
		width, _ := termSize(stdout)
		renderer = render.NewTerminal(render.ThemeByName(cfg.Theme), width)
	case "llm":
		renderer = render.NewLLM()
	default:
		renderer = render.NewJSON()
	}
	fmt.Fprint(stdout, renderer.Render(records))
	return 0
}

// runStream parses line by line with per-line failure isolation. On a TTY
// it shows the live view; otherwise it emits one NDJSON unit per record.
// Exit code 1 means the stream contained failed units.
func runStream(stdin io.Reader, br *bufio.Reader, stdout, stderr io.Writer, cfg config.Resolved) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// Close the underlying reader on cancel to unblock Stream's scanner
	// goroutine. bufio.Reader doesn't implement io.Closer, so Stream can't
	// close it itself.
	if c, ok := stdin.(io.Closer); ok {
		stopClose := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stopClose()
	}

	opts := gitlog.StreamOptions{Quiet: cfg.Quiet, MaxLineLength: cfg.MaxLineLength}

	if isTTYWriter(stdout) {
		width, height := termSize(stdout)
		summary, err := live.Run(ctx, br, stdout, width, height, opts)
		if err != nil {
			fmt.Fprintf(stderr, "gitjot: %v\n", err)
			return 2
		}
		if summary.Failures > 0 {
			return 1
		}
		return 0
	}

	failures := 0
	err := gitlog.Stream(ctx, br, opts, func(u gitlog.Unit) {
		if u.Failed() {
			failures++
		}
		fmt.Fprint(stdout, render.Unit(u, cfg.Raw))
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(stderr, "gitjot: %v\n", err)
		return 2
	}
	if failures > 0 {
		return 1
	}
	return 0
}

// resolveFormat maps "auto" to terminal on a TTY and json otherwise.
func resolveFormat(format string, stdout io.Writer) string {
	if format != "auto" && format != "" {
		return format
	}
	if isTTYWriter(stdout) {
		return "terminal"
	}
	return "json"
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
