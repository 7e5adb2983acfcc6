package dataset

import (
	"github.com/ecameron545/optbst"
)

// Dataset carries the raw inputs for one optimal-BST construction. The four
// slices follow the conventions of optbst.Build: KeyProbs aligns with Keys
// and Values, MissProbs has one entry per gap, i.e. one more than Keys.
type Dataset struct {
	Keys      []string
	Values    []string
	KeyProbs  []float64
	MissProbs []float64
}

// Build constructs the optimal search tree for the dataset. Validation of
// lengths and probability totals happens inside optbst.Build.
func (d Dataset) Build() (optbst.Tree, error) {
	return optbst.Build(d.Keys, d.Values, d.KeyProbs, d.MissProbs)
}

// BuildMap constructs the optimal search tree and wraps it as a read-only map.
func (d Dataset) BuildMap() (optbst.Map, error) {
	return optbst.BuildMap(d.Keys, d.Values, d.KeyProbs, d.MissProbs)
}
