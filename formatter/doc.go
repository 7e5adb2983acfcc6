/*
Package formatter renders optimal binary search trees for terminals.

The renderer produces an indented listing with box-drawing branch glyphs, one
node per line, root first. Node classes (keys, values, the sentinel) are
colorized with a configurable palette.

_________________________________________________________________________

# BSD 3-Clause License

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'optbst'
func tracer() tracing.Trace {
	return tracing.Select("optbst")
}
