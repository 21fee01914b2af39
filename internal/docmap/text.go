package docmap

import (
	"strings"

	"github.com/dgallion1/docmap/internal/nest"
)

// JoinRuns collapses the run level of an extracted document so every
// paragraph becomes a single string. The input must carry run strings at
// depth 5; the result carries paragraph strings at depth 4. The input is
// not mutated.
func JoinRuns(tree *nest.Node[string]) *nest.Node[string] {
	return nest.JoinLeaves("", tree, ParagraphDepth)
}

// Text returns the document's plain text: every paragraph's runs joined,
// then all paragraphs joined with blank lines, in document order.
func Text(tree *nest.Node[string]) string {
	paragraphs := IterParagraphs(JoinRuns(tree))
	parts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		parts[i] = p.Value()
	}
	return strings.Join(parts, "\n\n")
}
