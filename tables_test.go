package optbst

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTablesScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "optbst")
	defer teardown()

	tb := buildTables(scenarioKeyProbs, scenarioMissProbs)
	if !near(tb.weight[0][3], 1.0) {
		t.Errorf("weight of full span: got=%v want=1", tb.weight[0][3])
	}
	if !near(tb.cost[0][3], 2.2) {
		t.Errorf("cost of full span: got=%v want=2.2", tb.cost[0][3])
	}
	if tb.root[0][3] != 2 {
		t.Errorf("root of full span: got=%d want=2", tb.root[0][3])
	}
	// Per-length spot checks against hand computation.
	if !near(tb.cost[0][1], 0.7) || !near(tb.cost[1][2], 0.6) || !near(tb.cost[2][3], 0.5) {
		t.Errorf("single-key span costs: got=%v/%v/%v want=0.7/0.6/0.5",
			tb.cost[0][1], tb.cost[1][2], tb.cost[2][3])
	}
	if !near(tb.cost[0][2], 1.5) || !near(tb.cost[1][3], 1.2) {
		t.Errorf("two-key span costs: got=%v/%v want=1.5/1.2",
			tb.cost[0][2], tb.cost[1][3])
	}
}

func TestTablesRecurrenceInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "optbst")
	defer teardown()

	keyProbs := []float64{0.05, 0.2, 0.02, 0.13, 0.1}
	missProbs := []float64{0.1, 0.05, 0.15, 0.05, 0.05, 0.1}
	tb := buildTables(keyProbs, missProbs)
	for d := 0; d <= tb.n; d++ {
		for s := d + 1; s <= tb.n; s++ {
			r := tb.root[d][s]
			if r <= d || r > s {
				t.Fatalf("root[%d][%d]=%d outside of span", d, s, r)
			}
			want := tb.weight[d][s] + tb.cost[d][r-1] + tb.cost[r][s]
			if !near(tb.cost[d][s], want) {
				t.Errorf("cost[%d][%d]=%v violates recurrence (want %v)", d, s, tb.cost[d][s], want)
			}
			// No alternative split may beat the chosen one.
			for alt := d + 1; alt <= s; alt++ {
				c := tb.cost[d][alt-1] + tb.cost[alt][s]
				if c < tb.cost[d][r-1]+tb.cost[r][s] && !near(c, tb.cost[d][r-1]+tb.cost[r][s]) {
					t.Errorf("span (%d,%d]: split %d beats chosen root %d", d, s, alt, r)
				}
			}
		}
	}
}

func TestTieBreakKeepsSmallestRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "optbst")
	defer teardown()

	// Fully symmetric two-key input: both candidate roots for the full span
	// cost the same, bit for bit. The scan must keep the first one.
	keys := []string{"x", "y"}
	values := []string{"X", "Y"}
	keyProbs := []float64{0.25, 0.25}
	missProbs := []float64{1.0 / 6, 1.0 / 6, 1.0 / 6}

	tb := buildTables(keyProbs, missProbs)
	left := tb.cost[0][0] + tb.cost[1][2]
	right := tb.cost[0][1] + tb.cost[2][2]
	if left != right {
		t.Fatalf("inputs no longer produce an exact tie: %v vs %v", left, right)
	}
	if tb.root[0][2] != 1 {
		t.Fatalf("tie not broken towards smallest root: got=%d want=1", tb.root[0][2])
	}

	tree, err := Build(keys, values, keyProbs, missProbs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tree.Root().Key() != "x" {
		t.Fatalf("tie-broken tree root: got=%s want=x", tree.Root().Key())
	}
	if tree.Root().Right().Key() != "y" || !tree.Root().Left().IsSentinel() {
		t.Fatalf("tie-broken tree shape unexpected")
	}
}

func TestTablesDegenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "optbst")
	defer teardown()

	tb := buildTables(nil, []float64{1.0})
	if tb.n != 0 {
		t.Fatalf("n mismatch: got=%d want=0", tb.n)
	}
	if !near(tb.cost[0][0], 1.0) || !near(tb.weight[0][0], 1.0) {
		t.Fatalf("degenerate tables: cost=%v weight=%v want=1/1", tb.cost[0][0], tb.weight[0][0])
	}
}
