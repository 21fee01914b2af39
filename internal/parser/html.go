package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docmap/internal/nest"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. <table> elements map directly to the
// table/row/cell structure; other block text groups into body tables.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*nest.Node[string], error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := nest.Branch[string]()
	var body []*nest.Node[string]

	flushBody := func() {
		if len(body) > 0 {
			root.Append(bodyTable(body))
			body = nil
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "table":
				flushBody()
				root.Append(htmlTable(n))
				return
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "blockquote", "h1", "h2", "h3", "h4", "h5", "h6":
				if t := textContent(n); t != "" {
					body = append(body, nest.BranchOf(t))
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if b := findBody(doc); b != nil {
		walk(b)
	} else {
		walk(doc)
	}
	flushBody()

	return root, nil
}

// htmlTable converts a <table> element: one row per <tr>, one cell per
// <td>/<th>. Cells with <p> children get one paragraph each; otherwise
// the cell's whole text is a single paragraph.
func htmlTable(n *html.Node) *nest.Node[string] {
	table := nest.Branch[string]()
	for _, tr := range findElements(n, "tr") {
		row := nest.Branch[string]()
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
				continue
			}
			cell := nest.Branch[string]()
			for _, par := range findElements(c, "p") {
				if t := textContent(par); t != "" {
					cell.Append(nest.BranchOf(t))
				}
			}
			if cell.Len() == 0 {
				if t := textContent(c); t != "" {
					cell.Append(nest.BranchOf(t))
				}
			}
			row.Append(cell)
		}
		table.Append(row)
	}
	return table
}

// findElements collects descendant elements with the given tag, in
// document order, without descending into matches.
func findElements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return found
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
