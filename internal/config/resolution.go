package config

// Resolution priority, highest to lowest:
//
//	1. CLI flags
//	2. Environment (GITJOT_FORMAT, GITJOT_THEME, GITJOT_QUIET, NO_COLOR)
//	3. .gitjot.yaml
//	4. Defaults
//
// User intent beats environment beats file beats defaults, so behavior stays
// predictable across shells and CI.

// Defaults.
const (
	DefaultFormat        = "auto"
	DefaultTheme         = "default"
	DefaultMaxLineLength = 1024 * 1024
)

// Flags holds command-line flag values along with whether each was
// explicitly set; only explicitly set flags participate in resolution.
type Flags struct {
	Format string
	Theme  string
	Raw    bool
	Quiet  bool

	FormatSet bool
	ThemeSet  bool
	RawSet    bool
	QuietSet  bool
}

// Resolved is the final configuration after applying all priority rules.
type Resolved struct {
	Format        string
	Theme         string
	Raw           bool
	Quiet         bool
	Warnings      bool
	MaxLineLength int

	// Resolution metadata, for debugging.
	FormatSource string // "cli", "env", "file", "default"
	ThemeSource  string
}

// Resolve applies the priority order. env is a lookup function, usually
// os.Getenv, injected so tests control the environment.
func Resolve(flags Flags, env func(string) string, file File) Resolved {
	r := Resolved{
		Format:        DefaultFormat,
		Theme:         DefaultTheme,
		Warnings:      true,
		MaxLineLength: DefaultMaxLineLength,
		FormatSource:  "default",
		ThemeSource:   "default",
	}

	if file.Format != "" {
		r.Format, r.FormatSource = file.Format, "file"
	}
	if file.Theme != "" {
		r.Theme, r.ThemeSource = file.Theme, "file"
	}
	if file.Raw != nil {
		r.Raw = *file.Raw
	}
	if file.Quiet != nil {
		r.Quiet = *file.Quiet
	}
	if file.Warnings != nil {
		r.Warnings = *file.Warnings
	}
	if file.MaxLineLength > 0 {
		r.MaxLineLength = file.MaxLineLength
	}

	if v := env("GITJOT_FORMAT"); v != "" {
		r.Format, r.FormatSource = v, "env"
	}
	if v := env("GITJOT_THEME"); v != "" {
		r.Theme, r.ThemeSource = v, "env"
	}
	if env("NO_COLOR") != "" {
		r.Theme, r.ThemeSource = "mono", "env"
	}
	if env("GITJOT_QUIET") != "" {
		r.Quiet = true
	}

	if flags.FormatSet {
		r.Format, r.FormatSource = flags.Format, "cli"
	}
	if flags.ThemeSet {
		r.Theme, r.ThemeSource = flags.Theme, "cli"
	}
	if flags.RawSet {
		r.Raw = flags.Raw
	}
	if flags.QuietSet {
		r.Quiet = flags.Quiet
	}

	return r
}
