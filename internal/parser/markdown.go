package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// MarkdownParser handles Markdown files using goldmark. Each h1/h2 heading
// opens a new page; fenced and indented code blocks become code span
// candidates with the "fence" detection method.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) ([]document.Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	b := newPageBuilder()
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			b.addHeading(string(node.Text(src)), node.Level)
		case *ast.FencedCodeBlock:
			b.addCodeSpan(blockLines(node, src), "fence", "monospace")
		case *ast.CodeBlock:
			b.addCodeSpan(blockLines(node, src), "fence", "monospace")
		default:
			if t := inlineText(n, src); t != "" {
				b.addText(t)
			}
		}
	}

	pages := b.build()
	if len(pages) == 0 {
		pages = []document.Page{{Number: 1, Lines: []string{}, CodeSpans: []document.CodeSpan{}}}
	}
	return pages, nil
}

// blockLines joins the raw source lines of a block node.
func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}

// inlineText gets the text content of a goldmark AST node.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(inlineText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
