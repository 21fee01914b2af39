package nest

import "strings"

// JoinLeaves collapses a uniformly nested tree of string leaves to depth
// toDepth. Every node at toDepth has its children — which must be leaves —
// replaced by a single leaf holding their sep-joined concatenation (an
// empty branch collapses to the empty string). Branch structure above
// toDepth is preserved. toDepth 0 collapses the whole tree to one leaf.
//
// toDepth must be given explicitly: a tree with empty branches has no
// leaves to infer it from. The caller is responsible for supplying a tree
// whose leaves all sit strictly below toDepth; behavior on leaves at or
// above toDepth, or on non-uniform trees, is undefined.
//
// The input is never mutated; the result is a fresh tree.
func JoinLeaves(sep string, tree *Node[string], toDepth int) *Node[string] {
	return joinAt(sep, tree, toDepth, 0)
}

func joinAt(sep string, n *Node[string], toDepth, depth int) *Node[string] {
	if depth == toDepth {
		parts := make([]string, len(n.children))
		for i, child := range n.children {
			parts[i] = child.value
		}
		return Leaf(strings.Join(parts, sep))
	}
	children := make([]*Node[string], len(n.children))
	for i, child := range n.children {
		children[i] = joinAt(sep, child, toDepth, depth+1)
	}
	return Branch(children...)
}
