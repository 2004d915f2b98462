// Package trace is an env-gated debug printer in the teacher's dbg idiom:
// silent unless RLWEKEX_DEBUG=1, in which case every call writes its
// formatted text (Stage to stderr, Printf to the given writer). There is no structured-logging dependency in this module;
// this mirrors the ambient stack the rest of the pack carries.
package trace

import (
	"fmt"
	"io"
	"os"
)

var enabled = os.Getenv("RLWEKEX_DEBUG") == "1"

// Printf writes a formatted line to w when tracing is enabled, otherwise
// it is a no-op.
func Printf(w io.Writer, format string, a ...any) {
	if enabled {
		fmt.Fprintf(w, format, a...)
	}
}

// Stage is a convenience wrapper for Printf(os.Stderr, ...).
func Stage(format string, a ...any) {
	Printf(os.Stderr, format, a...)
}
