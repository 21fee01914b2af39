// Package docmap binds the generic nest traversal to the four-level
// document hierarchy (tables → rows → cells → paragraphs, runs below) and
// renders an HTML map of a document's content addresses.
package docmap

import "github.com/dgallion1/docmap/internal/nest"

// Semantic depths of the extracted document hierarchy.
const (
	TableDepth     = 1
	RowDepth       = 2
	CellDepth      = 3
	ParagraphDepth = 4
	RunDepth       = 5
)

// atDepth calls nest.IterAtDepth with one of the fixed depths above,
// which can never be out of range.
func atDepth[T any](tree *nest.Node[T], depth int) []*nest.Node[T] {
	items, err := nest.IterAtDepth(tree, depth)
	if err != nil {
		panic(err) // unreachable: depth constants are always valid
	}
	return items
}

func enumDepth[T any](tree *nest.Node[T], depth int) []nest.Placed[T] {
	placed, err := nest.EnumAtDepth(tree, depth)
	if err != nil {
		panic(err) // unreachable: depth constants are always valid
	}
	return placed
}

// IterTables returns tree[i] for every i, in order.
func IterTables[T any](tree *nest.Node[T]) []*nest.Node[T] {
	return atDepth(tree, TableDepth)
}

// IterRows returns tree[:][j], in order.
func IterRows[T any](tree *nest.Node[T]) []*nest.Node[T] {
	return atDepth(tree, RowDepth)
}

// IterCells returns tree[:][:][k], in order.
func IterCells[T any](tree *nest.Node[T]) []*nest.Node[T] {
	return atDepth(tree, CellDepth)
}

// IterParagraphs returns tree[:][:][:][m], in order.
func IterParagraphs[T any](tree *nest.Node[T]) []*nest.Node[T] {
	return atDepth(tree, ParagraphDepth)
}

// EnumTables returns ((i), tree[i]) for every i, in order.
func EnumTables[T any](tree *nest.Node[T]) []nest.Placed[T] {
	return enumDepth(tree, TableDepth)
}

// EnumRows returns ((i, j), tree[i][j]), in order.
func EnumRows[T any](tree *nest.Node[T]) []nest.Placed[T] {
	return enumDepth(tree, RowDepth)
}

// EnumCells returns ((i, j, k), tree[i][j][k]), in order.
func EnumCells[T any](tree *nest.Node[T]) []nest.Placed[T] {
	return enumDepth(tree, CellDepth)
}

// EnumParagraphs returns ((i, j, k, m), tree[i][j][k][m]), in order.
func EnumParagraphs[T any](tree *nest.Node[T]) []nest.Placed[T] {
	return enumDepth(tree, ParagraphDepth)
}
