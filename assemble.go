package optbst

// subtree materializes the node for span (d, s] from the finished root table.
//
// An empty span yields the shared sentinel, so every real node ends up with
// both child slots populated. Assembly is a separate top-down pass over the
// tables and never mutates them; it cannot fail for any span the table fill
// has covered.
func (tb *tables) subtree(keys, values []string, d, s int) *Node {
	if s == d {
		return sentinel
	}
	r := tb.root[d][s]
	assert(r > d && r <= s, "optbst: split table corrupt, root outside of span")
	return &Node{
		key:   keys[r-1],
		value: values[r-1],
		left:  tb.subtree(keys, values, d, r-1),
		right: tb.subtree(keys, values, r, s),
	}
}
