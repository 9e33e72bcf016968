package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// DOCXParser handles .docx files. Heading styles become heading candidates
// and code-styled paragraphs become "font"-method code span candidates.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) ([]document.Page, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "docquality-docx-*.docx")
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

	b := newPageBuilder()
	var codeRun []string

	flushCode := func() {
		if len(codeRun) > 0 {
			b.addCodeSpan(strings.Join(codeRun, "\n"), "font", "monospace")
			codeRun = nil
		}
	}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := docxParagraphText(para)
		if text == "" {
			continue
		}

		if docxIsCodeStyle(para) {
			codeRun = append(codeRun, text)
			b.addText(text)
			continue
		}
		flushCode()

		if level := docxHeadingLevel(para); level > 0 {
			b.addHeading(text, level)
		} else {
			b.addText(text)
		}
	}
	flushCode()

	pages := b.build()
	if len(pages) == 0 {
		pages = []document.Page{{Number: 1, Lines: []string{}, CodeSpans: []document.CodeSpan{}}}
	}
	return pages, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(para.Properties.Style.Val)
	style = strings.ReplaceAll(style, " ", "")
	if rest, ok := strings.CutPrefix(style, "heading"); ok && len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
		return int(rest[0] - '0')
	}
	return 0
}

// docxIsCodeStyle reports paragraphs whose style marks fixed-font content.
func docxIsCodeStyle(para *docx.Paragraph) bool {
	if para.Properties == nil || para.Properties.Style == nil {
		return false
	}
	style := strings.ToLower(para.Properties.Style.Val)
	switch style {
	case "code", "codeblock", "sourcecode", "htmlpreformatted":
		return true
	}
	return false
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
