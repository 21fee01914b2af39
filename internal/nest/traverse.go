package nest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Supported traversal depths. The recursion itself has no depth limit;
// the ceiling exists to keep the documented error contract of the
// depth-indexed operations. Raising it is a one-constant change.
const (
	minDepth = 1
	maxDepth = 5
)

// ErrInvalidDepth is matched by errors.Is for any depth outside the
// supported range.
var ErrInvalidDepth = errors.New("invalid depth")

// DepthError reports a traversal depth outside the supported range.
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("depth %d out of range: depth must be %d through %d", e.Depth, minDepth, maxDepth)
}

func (e *DepthError) Unwrap() error { return ErrInvalidDepth }

// Address locates a node by its index at each level from the root. Its
// length equals the depth at which the node was found.
type Address []int

// String renders the canonical textual form: parenthesized, comma-space
// separated integers, e.g. "(0, 0, 1, 0)".
func (a Address) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, n := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(')')
	return b.String()
}

// Placed pairs a node with the address where a traversal found it.
type Placed[T any] struct {
	Addr Address
	Item *Node[T]
}

// EnumAtDepth enumerates the nodes of tree at the given depth, pairing
// each with its address.
//
//	1 => ((i), tree[i])
//	2 => ((i, j), tree[i][j])
//	3 => ((i, j, k), tree[i][j][k])
//	...
//
// Results come in strict depth-first, left-to-right order: addresses are
// lexicographically sorted with the outermost index varying slowest.
// Each Address is freshly allocated and safe to retain.
//
// Returns a *DepthError (matching ErrInvalidDepth) when depth is outside
// 1 through 5.
func EnumAtDepth[T any](tree *Node[T], depth int) ([]Placed[T], error) {
	if depth < minDepth || depth > maxDepth {
		return nil, &DepthError{Depth: depth}
	}
	var out []Placed[T]
	enumAt(tree, depth, make([]int, 0, depth), &out)
	return out, nil
}

func enumAt[T any](n *Node[T], depth int, prefix []int, out *[]Placed[T]) {
	for i, child := range n.children {
		if depth == 1 {
			addr := make(Address, len(prefix)+1)
			copy(addr, prefix)
			addr[len(prefix)] = i
			*out = append(*out, Placed[T]{Addr: addr, Item: child})
			continue
		}
		enumAt(child, depth-1, append(prefix, i), out)
	}
}

// IterAtDepth returns the nodes of tree at the given depth, in the same
// order as EnumAtDepth, without addresses. Same error behavior.
func IterAtDepth[T any](tree *Node[T], depth int) ([]*Node[T], error) {
	placed, err := EnumAtDepth(tree, depth)
	if err != nil {
		return nil, err
	}
	items := make([]*Node[T], len(placed))
	for i, p := range placed {
		items[i] = p.Item
	}
	return items, nil
}
