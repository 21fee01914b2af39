package docmap

import (
	"strings"

	"github.com/dgallion1/docmap/internal/nest"
)

// BuildHTMLMap renders a visual map of the document in HTML: a grid of
// cell boxes per table, every paragraph prefixed with its index tuple, so
// a browser shows the relative location and address of each paragraph.
// A paragraph whose value is `text` at (0, 0, 0, 0) appears as
// "(0, 0, 0, 0) text".
//
// tree is the extracted document: tables → rows → cells → paragraphs,
// where each paragraph is either a plain string or a branch of run
// strings. The builder works on a private deep copy, so the caller's tree
// is never mutated. Output is byte-identical across calls for the same
// input; malformed trees are not guarded against.
func BuildHTMLMap(tree *nest.Node[string]) string {
	work := tree.Clone()

	// Prepend the index tuple to each paragraph's text.
	for _, p := range EnumParagraphs(work) {
		p.Item.SetLeaf(p.Addr.String() + " " + paragraphText(p.Item))
	}

	// Wrap each paragraph in <pre> tags.
	for _, cell := range IterCells(work) {
		cell.SetLeaf(wrapChildren(cell, "pre"))
	}

	// Wrap each cell in <td> tags.
	for _, row := range IterRows(work) {
		row.SetLeaf(wrapChildren(row, "td"))
	}

	// Wrap each row in <tr> tags.
	for _, table := range IterTables(work) {
		table.SetLeaf(wrapChildren(table, "tr"))
	}

	// Wrap each table in <table> tags.
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, table := range work.Children() {
		b.WriteString(`<table border="1">`)
		b.WriteString(table.Value())
		b.WriteString("</table>")
	}
	b.WriteString("</body></html>")
	return b.String()
}

// paragraphText joins a paragraph's runs with no separator. A paragraph
// stored as a plain string is returned as-is.
func paragraphText(par *nest.Node[string]) string {
	if par.IsLeaf() {
		return par.Value()
	}
	var b strings.Builder
	for _, run := range par.Children() {
		b.WriteString(run.Value())
	}
	return b.String()
}

// wrapChildren concatenates the node's leaf children, each wrapped in the
// given tag, in order with no separator.
func wrapChildren(n *nest.Node[string], tag string) string {
	var b strings.Builder
	for _, child := range n.Children() {
		b.WriteString("<" + tag + ">")
		b.WriteString(child.Value())
		b.WriteString("</" + tag + ">")
	}
	return b.String()
}
