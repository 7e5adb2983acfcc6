/*
Package optbst constructs statically optimal binary search trees.

Given a fixed set of keys in ascending order, the probability that a lookup
hits each key, and the probability that a lookup misses into each gap
between/around the keys, Build arranges the keys into the binary search tree
which minimizes the expected number of comparisons over all lookups. This is
the classical dynamic-programming construction (Knuth, TAOCP Vol. 3, §6.2.2):
cost and weight tables are filled over all contiguous key spans by increasing
span length, together with the optimal split point per span, and the finished
split table is then materialized into a tree of immutable nodes.

The tree is built once and never changes. Empty child slots are not nil but
a shared sentinel node, so traversal code can distinguish exactly two node
kinds and never touches a nil pointer.

Lookup structures on top of the tree are deliberately thin: Map wraps a
finished tree with the usual read-only accessors.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package optbst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'optbst'
func tracer() tracing.Trace {
	return tracing.Select("optbst")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
