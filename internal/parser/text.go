package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docmap/internal/nest"
)

// TextParser handles plain text files. The whole file becomes a single
// body table; blank-line-separated paragraphs each carry one run.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*nest.Node[string], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []*nest.Node[string]
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			paragraphs = append(paragraphs, nest.BranchOf(current.String()))
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(paragraphs) == 0 {
		return nest.Branch[string](), nil
	}
	return nest.Branch(bodyTable(paragraphs)), nil
}
