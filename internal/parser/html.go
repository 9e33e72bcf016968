package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// HTMLParser handles HTML files. h1-h6 become heading candidates (h1/h2
// open a new page) and <pre> blocks become monospace code span candidates.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) ([]document.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	b := newPageBuilder()

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case headingLevel(n.Data) > 0:
				b.addHeading(textContent(n), headingLevel(n.Data))
				return
			case n.Data == "pre":
				b.addCodeSpan(textContent(n), "font", "monospace")
				return
			case n.Data == "script" || n.Data == "style" || n.Data == "head":
				return
			case n.Data == "p" || n.Data == "li" || n.Data == "td" || n.Data == "blockquote":
				if t := strings.TrimSpace(textContent(n)); t != "" {
					b.addText(t)
				}
				return
			case n.Data == "img":
				if src := attr(n, "src"); src != "" {
					b.cur.Images = append(b.cur.Images, src)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	pages := b.build()
	if len(pages) == 0 {
		pages = []document.Page{{Number: 1, Lines: []string{}, CodeSpans: []document.CodeSpan{}}}
	}
	return pages, nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
