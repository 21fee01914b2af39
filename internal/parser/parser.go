// Package parser converts raw document bytes into the uniformly nested
// content structure consumed by the traversal and mapping primitives:
// tables → rows → cells → paragraphs → runs, with run strings at depth 5.
// Body content outside real tables is modeled as a one-row, one-cell
// table of its paragraphs, so the whole document is uniform.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docmap/internal/nest"
)

// Parser converts raw document bytes into the nested content tree.
type Parser interface {
	Parse(r io.Reader, filename string) (*nest.Node[string], error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// bodyTable wraps loose paragraphs in a one-row, one-cell table.
func bodyTable(paragraphs []*nest.Node[string]) *nest.Node[string] {
	return nest.Branch(nest.Branch(nest.Branch(paragraphs...)))
}
