package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/docmap/internal/nest"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Pipe tables map
// to real tables; runs of other blocks group into body tables between
// them.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*nest.Node[string], error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	root := nest.Branch[string]()
	var body []*nest.Node[string]

	flushBody := func() {
		if len(body) > 0 {
			root.Append(bodyTable(body))
			body = nil
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *east.Table:
			flushBody()
			root.Append(markdownTable(node, src))
		case *ast.Paragraph:
			if par := inlineRuns(node, src); par.Len() > 0 {
				body = append(body, par)
			}
		default:
			if t := extractText(n, src); t != "" {
				body = append(body, nest.BranchOf(t))
			}
		}
	}
	flushBody()

	return root, nil
}

// markdownTable converts a goldmark table node: the header and each body
// row become rows, each cell a one-paragraph cell.
func markdownTable(tbl *east.Table, src []byte) *nest.Node[string] {
	table := nest.Branch[string]()
	for r := tbl.FirstChild(); r != nil; r = r.NextSibling() {
		if r.Kind() != east.KindTableHeader && r.Kind() != east.KindTableRow {
			continue
		}
		row := nest.Branch[string]()
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			row.Append(nest.Branch(nest.BranchOf(extractText(c, src))))
		}
		table.Append(row)
	}
	return table
}

// inlineRuns builds a paragraph node with one run per top-level inline
// segment, so emphasis and link spans keep their boundaries.
func inlineRuns(n ast.Node, src []byte) *nest.Node[string] {
	par := nest.Branch[string]()
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		var run string
		if t, ok := c.(*ast.Text); ok {
			run = string(t.Value(src))
		} else {
			run = extractText(c, src)
		}
		if run != "" {
			par.Append(nest.Leaf(run))
		}
	}
	return par
}

// extractText gets the text content of a goldmark AST node. Nodes with
// children (paragraphs, headings, cells) collect their inline texts;
// leaf blocks (code blocks) fall back to their raw lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.HasChildren() {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else {
				buf.WriteString(extractText(c, src))
			}
		}
	} else if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	return strings.TrimSpace(buf.String())
}
