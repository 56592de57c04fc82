package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/agbru/fieldbench/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the arguments request version output,
// allowing the fast path in main before full flag parsing.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes version information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fieldbench %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
