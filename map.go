package optbst

import "iter"

// Map is a read-only string map backed by an optimal binary search tree.
//
// A map created by
//
//	Map{}
//
// is valid and behaves like the empty map. Maps carry no mutation API: the
// key set and the tree shape are fixed at construction time.
type Map struct {
	tree Tree
}

// BuildMap constructs the optimal tree for the given inputs and wraps it as
// a Map. Input conventions and failure modes are those of Build.
func BuildMap(keys, values []string, keyProbs, missProbs []float64) (Map, error) {
	tree, err := Build(keys, values, keyProbs, missProbs)
	if err != nil {
		return Map{}, err
	}
	return Map{tree: tree}, nil
}

// NewMap wraps an already constructed tree.
func NewMap(tree Tree) Map {
	return Map{tree: tree}
}

// Get returns the value stored for key and reports whether key is present.
//
// The descent relies on the sentinel contract: every child slot is populated,
// so the loop tests node kinds only and never a nil pointer.
func (m Map) Get(key string) (string, bool) {
	node := m.tree.Root()
	for !node.IsSentinel() {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node.value, true
		}
	}
	return "", false
}

// ContainsKey reports whether key is present in the map.
func (m Map) ContainsKey(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Size returns the number of keys in the map.
func (m Map) Size() int {
	return m.tree.Size()
}

// Tree returns the underlying search tree.
func (m Map) Tree() Tree {
	return m.tree
}

// All returns an iterator over all key/value pairs in ascending key order.
func (m Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for node := range m.tree.RangeNode() {
			if !yield(node.key, node.value) {
				return
			}
		}
	}
}
