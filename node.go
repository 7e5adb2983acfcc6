package optbst

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

// Node is a vertex of an optimal binary search tree.
//
// Nodes are created during tree assembly and never mutated afterwards. Both
// child slots of a real node are always populated, either with a real subtree
// or with the shared sentinel. Clients test for the sentinel with IsSentinel
// and must not rely on field inspection to recognize it.
type Node struct {
	key   string
	value string
	left  *Node
	right *Node
}

// sentinel is the single shared marker for an absent child. Every empty child
// slot in every tree points to this one node.
var sentinel = &Node{}

// Sentinel returns the shared marker node representing an absent subtree.
func Sentinel() *Node {
	return sentinel
}

// IsSentinel reports whether node is the shared sentinel.
func (node *Node) IsSentinel() bool {
	return node == sentinel
}

// Key returns the key stored in node. The sentinel holds no key.
func (node *Node) Key() string {
	return node.key
}

// Value returns the value stored in node. The sentinel holds no value.
func (node *Node) Value() string {
	return node.value
}

// Left returns the left child of node, possibly the sentinel.
// The sentinel itself has no children.
func (node *Node) Left() *Node {
	return node.left
}

// Right returns the right child of node, possibly the sentinel.
// The sentinel itself has no children.
func (node *Node) Right() *Node {
	return node.right
}

// String returns a short textual form of node (for debugging purposes).
func (node *Node) String() string {
	if node.IsSentinel() {
		return "∅"
	}
	return "⟨" + node.key + "⟩"
}
