package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/docmap/internal/nest"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Word tables become real tables;
// consecutive body paragraphs between them group into body tables. Each
// Word run becomes one run string, so paragraph addresses in the map line
// up with the source document's run boundaries.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*nest.Node[string], error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docmap-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	root := nest.Branch[string]()
	var body []*nest.Node[string]

	flushBody := func() {
		if len(body) > 0 {
			root.Append(bodyTable(body))
			body = nil
		}
	}

	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			if par := docxParagraph(it); par.Len() > 0 {
				body = append(body, par)
			}
		case *docx.Table:
			flushBody()
			root.Append(docxTable(it))
		}
	}
	flushBody()

	return root, nil
}

// docxParagraph builds a paragraph node with one run string per Word run.
func docxParagraph(para *docx.Paragraph) *nest.Node[string] {
	node := nest.Branch[string]()
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		var buf strings.Builder
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
		if buf.Len() > 0 {
			node.Append(nest.Leaf(buf.String()))
		}
	}
	return node
}

func docxTable(tbl *docx.Table) *nest.Node[string] {
	table := nest.Branch[string]()
	for _, tr := range tbl.TableRows {
		row := nest.Branch[string]()
		for _, tc := range tr.TableCells {
			cell := nest.Branch[string]()
			for _, para := range tc.Paragraphs {
				cell.Append(docxParagraph(para))
			}
			row.Append(cell)
		}
		table.Append(row)
	}
	return table
}
