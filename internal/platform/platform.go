// Package platform advises on host compatibility for the source command's
// output formats. Advisory only: a mismatch warns, never blocks parsing.
package platform

import (
	"fmt"
	"io"
	"runtime"
)

// verified lists the operating systems git log output parsing has been
// verified on.
var verified = map[string]bool{
	"linux":   true,
	"darwin":  true,
	"windows": true,
	"freebsd": true,
	"aix":     true,
}

// Verified reports whether the current OS is in the verified set.
func Verified() bool {
	return verified[runtime.GOOS]
}

// Warn writes a compatibility warning for the current OS to w if it is not
// verified. Callers gate this on their warnings setting; there is no
// process-wide toggle.
func Warn(w io.Writer) {
	if !Verified() {
		fmt.Fprintf(w, "gitjot: warning: output parsing is unverified on %s\n", runtime.GOOS)
	}
}
