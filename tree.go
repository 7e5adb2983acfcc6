package optbst

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import "iter"

// Tree is a handle for a finished optimal binary search tree.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like a tree over zero keys. Trees are
// immutable: the node structure below Root never changes after Build returns.
type Tree struct {
	root *Node
	cost float64
	size int
}

// Build constructs a statically optimal binary search tree.
//
// keys must be unique and in ascending order; values[i] belongs to keys[i].
// keyProbs[i] is the probability that a lookup matches keys[i] exactly, and
// missProbs[i] the probability that a lookup falls into the gap before keys[i]
// (missProbs[n] is the gap after the last key). All probabilities together
// must total 1 within a small tolerance.
//
// Build fails fast with ErrMalformedInput or ErrInvalidProbability before any
// table work; a partially built tree is never returned. For n = 0 the
// resulting tree is the sentinel alone.
func Build(keys, values []string, keyProbs, missProbs []float64) (Tree, error) {
	if err := checkLengths(keys, values, keyProbs, missProbs); err != nil {
		return Tree{}, err
	}
	if err := checkProbs(keyProbs, missProbs); err != nil {
		return Tree{}, err
	}
	tb := buildTables(keyProbs, missProbs)
	root := tb.subtree(keys, values, 0, tb.n)
	tracer().Debugf("optimal BST over %d keys, expected cost %.4f", tb.n, tb.cost[0][tb.n])
	return Tree{root: root, cost: tb.cost[0][tb.n], size: tb.n}, nil
}

// Root returns the root node of the tree. For an empty tree this is the
// sentinel itself, never nil.
func (tree Tree) Root() *Node {
	if tree.root == nil {
		return sentinel
	}
	return tree.root
}

// IsEmpty reports whether the tree holds no keys.
func (tree Tree) IsEmpty() bool {
	return tree.Root().IsSentinel()
}

// Size returns the number of keys in the tree.
func (tree Tree) Size() int {
	return tree.size
}

// ExpectedCost returns the expected number of comparisons per lookup under
// the probabilities the tree was built with. This is the minimum achievable
// over all arrangements of the keys.
func (tree Tree) ExpectedCost() float64 {
	return tree.cost
}

// Height returns the number of nodes on the longest root-to-key path.
// The empty tree has height 0.
func (tree Tree) Height() int {
	return height(tree.Root())
}

func height(node *Node) int {
	if node.IsSentinel() {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}

// RangeNode returns an iterator over all real nodes, in-order. The keys are
// therefore visited in ascending order.
func (tree Tree) RangeNode() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		inorder(tree.Root(), yield)
	}
}

func inorder(node *Node, yield func(*Node) bool) bool {
	if node.IsSentinel() {
		return true
	}
	return inorder(node.left, yield) && yield(node) && inorder(node.right, yield)
}

// EachNode visits all real nodes in-order together with their key position.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (tree Tree) EachNode(f func(node *Node, pos int) error) error {
	var err error
	pos := 0
	tree.RangeNode()(func(node *Node) bool {
		err = f(node, pos)
		pos++
		return err == nil
	})
	return err
}
