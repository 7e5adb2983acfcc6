package optbst

import "math"

// tables holds the dynamic-programming state of one construction run.
//
// All three tables are sized (n+1)×(n+1) and indexed by span boundaries d, s
// with 0 ≤ d ≤ s ≤ n. Span (d, s] covers the keys at positions d…s-1 plus the
// gaps enclosing them. weight[d][s] is the probability mass of the span,
// cost[d][s] its minimum expected search cost, and root[d][s] the 1-based key
// position chosen as subtree root, i.e. the key at position root[d][s]-1.
// An empty span (d, d] has no root; root[d][d] stays 0.
//
// Invariant for every d < s after the fill:
//
//	cost[d][s] = weight[d][s] + cost[d][root[d][s]-1] + cost[root[d][s]][s]
type tables struct {
	n      int
	weight [][]float64
	cost   [][]float64
	root   [][]int
}

// split pairs the cost of the best partition of a span with the chosen root
// position. minSplit returns both together; there is no other channel between
// the minimization and its caller.
type split struct {
	cost float64
	root int
}

// buildTables fills weight, cost and root bottom-up by increasing span length.
//
// A span of length L depends on spans of every smaller length, so the outer
// loop over L is a hard ordering requirement. Spans of equal length are
// mutually independent.
func buildTables(keyProbs, missProbs []float64) *tables {
	n := len(keyProbs)
	tb := newTables(n)
	// Length-0 spans are single gaps and contribute only their miss weight.
	for d := 0; d <= n; d++ {
		tb.weight[d][d] = missProbs[d]
		tb.cost[d][d] = missProbs[d]
	}
	for L := 1; L <= n; L++ {
		for d := 0; d+L <= n; d++ {
			s := d + L
			// Extend the span by key s-1 and its trailing gap.
			tb.weight[d][s] = tb.weight[d][s-1] + keyProbs[s-1] + missProbs[s]
			best := tb.minSplit(d, s)
			tb.root[d][s] = best.root
			tb.cost[d][s] = tb.weight[d][s] + best.cost
		}
	}
	return tb
}

func newTables(n int) *tables {
	tb := &tables{
		n:      n,
		weight: make([][]float64, n+1),
		cost:   make([][]float64, n+1),
		root:   make([][]int, n+1),
	}
	for i := 0; i <= n; i++ {
		tb.weight[i] = make([]float64, n+1)
		tb.cost[i] = make([]float64, n+1)
		tb.root[i] = make([]int, n+1)
	}
	return tb
}

// minSplit scans every candidate root r in (d, s] and returns the cheapest
// partition of the span together with the chosen r. The comparison is strictly
// less-than: on a cost tie the smallest r wins, which keeps the resulting tree
// shape deterministic.
func (tb *tables) minSplit(d, s int) split {
	best := split{cost: math.Inf(1)}
	for r := d + 1; r <= s; r++ {
		if c := tb.cost[d][r-1] + tb.cost[r][s]; c < best.cost {
			best = split{cost: c, root: r}
		}
	}
	return best
}
