/*
Package dataset loads optimal-BST construction inputs from plain text files.

A dataset file carries one record per line. Key records name a key, its value
and its lookup probability; miss records carry the probability of a lookup
falling into the next gap. Blank lines and lines starting with '#' are
ignored.

	# three keys, probabilities total 1
	miss 0.1
	key a A 0.3
	miss 0.1
	key b B 0.2
	miss 0.1
	key c C 0.1
	miss 0.1

Keys must appear in ascending order and a well-formed file carries exactly one
miss record more than key records; both conventions are checked by the tree
construction, not by the parser. Records may interleave freely, positions are
taken from the order of appearance.

While a Loader parses a file it broadcasts every parsed record to all
subscribers, so progress observers can follow a long load without polling.

_________________________________________________________________________

# BSD 3-Clause License

Please refer to the LICENSE file for details.
*/
package dataset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'optbst'
func tracer() tracing.Trace {
	return tracing.Select("optbst")
}
