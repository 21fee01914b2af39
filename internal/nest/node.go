// Package nest provides traversal, enumeration, and collapse primitives
// over uniformly nested sequence trees. The document extraction pipeline
// produces content as:
//
//	[  // tables (full document contents)
//	    [  // table
//	        [  // row
//	            [  // cell
//	                [  // paragraph
//	                    "run", ...
//	                ]
//	            ]
//	        ]
//	    ]
//	]
//
// These primitives manipulate that deep nest without deep indentation.
// Every operation assumes uniform depth: all leaves sit the same distance
// from the root. That precondition is the caller's responsibility and is
// never validated here; mixing leaves and branches as siblings is
// undefined.
package nest

// Node is one position in a uniformly nested tree: either a leaf carrying
// a value, or a branch carrying an ordered list of children.
type Node[T any] struct {
	value    T
	children []*Node[T]
	leaf     bool
}

// Leaf returns a new leaf node holding v.
func Leaf[T any](v T) *Node[T] {
	return &Node[T]{value: v, leaf: true}
}

// Branch returns a new branch node with the given children, in order.
// A branch with no children is valid and distinct from a leaf.
func Branch[T any](children ...*Node[T]) *Node[T] {
	return &Node[T]{children: children}
}

// BranchOf returns a branch whose children are leaves holding the given
// values, in order.
func BranchOf[T any](values ...T) *Node[T] {
	children := make([]*Node[T], len(values))
	for i, v := range values {
		children[i] = Leaf(v)
	}
	return Branch(children...)
}

// IsLeaf reports whether n is a leaf.
func (n *Node[T]) IsLeaf() bool { return n.leaf }

// Value returns the leaf payload. For a branch it returns the zero value.
func (n *Node[T]) Value() T { return n.value }

// Children returns the ordered children of a branch, nil for a leaf.
// The returned slice is the node's own backing slice; callers that modify
// it modify the tree.
func (n *Node[T]) Children() []*Node[T] { return n.children }

// Len returns the number of children (zero for a leaf).
func (n *Node[T]) Len() int { return len(n.children) }

// Append adds children to the end of a branch, in order.
func (n *Node[T]) Append(children ...*Node[T]) {
	n.children = append(n.children, children...)
}

// SetLeaf rewrites n in place into a leaf holding v, discarding any
// children.
func (n *Node[T]) SetLeaf(v T) {
	n.value = v
	n.children = nil
	n.leaf = true
}

// Clone returns a deep structural copy of the tree rooted at n. Leaf
// payloads are copied by assignment, so payloads containing references
// are shared between the original and the copy.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}
	c := &Node[T]{value: n.value, leaf: n.leaf}
	if n.children != nil {
		c.children = make([]*Node[T], len(n.children))
		for i, child := range n.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// Equal reports whether two trees have identical structure and equal leaf
// payloads at every position.
func Equal[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.leaf != b.leaf {
		return false
	}
	if a.leaf {
		return a.value == b.value
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
