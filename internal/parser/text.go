package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// linesPerTextPage paginates plain text that carries no form feeds.
const linesPerTextPage = 50

// TextParser handles plain text files. Form feeds are honored as page
// breaks; otherwise the text is paginated by line count.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]document.Page, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rawPages [][]string
	var current []string

	endPage := func() {
		if len(current) > 0 {
			rawPages = append(rawPages, current)
			current = nil
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "\f") {
			parts := strings.Split(line, "\f")
			for i, part := range parts {
				if i > 0 {
					endPage()
				}
				if part != "" {
					current = append(current, part)
				}
			}
			continue
		}
		current = append(current, line)
		if len(current) >= linesPerTextPage {
			endPage()
		}
	}
	endPage()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	pages := make([]document.Page, 0, len(rawPages))
	for i, lines := range rawPages {
		pages = append(pages, document.Page{
			Number:    i + 1,
			Lines:     lines,
			CodeSpans: indentedCodeSpans(lines),
			Headings:  headingCandidates(lines, i+1),
		})
	}
	return pages, nil
}
