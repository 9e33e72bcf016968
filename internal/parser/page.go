package parser

import (
	"regexp"
	"strings"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// pageBuilder accumulates lines, headings, and code spans into pages for
// the formats that have no native pagination (markdown, html, docx). A new
// page opens on every h1/h2 heading.
type pageBuilder struct {
	pages []document.Page
	cur   document.Page
}

func newPageBuilder() *pageBuilder {
	return &pageBuilder{cur: emptyPage()}
}

func emptyPage() document.Page {
	return document.Page{Lines: []string{}, CodeSpans: []document.CodeSpan{}}
}

func (b *pageBuilder) pageEmpty() bool {
	return len(b.cur.Lines) == 0 && len(b.cur.CodeSpans) == 0 && len(b.cur.Headings) == 0
}

// breakPage closes the current page unless it is still empty.
func (b *pageBuilder) breakPage() {
	if b.pageEmpty() {
		return
	}
	b.pages = append(b.pages, b.cur)
	b.cur = emptyPage()
}

func (b *pageBuilder) addHeading(text string, level int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if level <= 2 {
		b.breakPage()
	}
	b.cur.Headings = append(b.cur.Headings, document.Heading{Text: text, Level: level})
	b.cur.Lines = append(b.cur.Lines, text)
}

func (b *pageBuilder) addText(text string) {
	for _, line := range strings.Split(text, "\n") {
		b.cur.Lines = append(b.cur.Lines, line)
	}
}

func (b *pageBuilder) addCodeSpan(text, method, fontHint string) {
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	b.cur.CodeSpans = append(b.cur.CodeSpans, document.CodeSpan{
		Text:            text,
		DetectionMethod: method,
		FontHint:        fontHint,
	})
}

// build numbers the pages 1..N and stamps heading page numbers.
func (b *pageBuilder) build() []document.Page {
	b.breakPage()
	for i := range b.pages {
		b.pages[i].Number = i + 1
		for j := range b.pages[i].Headings {
			b.pages[i].Headings[j].Page = i + 1
		}
	}
	return b.pages
}

// allCapsRe matches short shouty lines that paginated formats commonly use
// as section titles.
var allCapsRe = regexp.MustCompile(`^[A-Z][A-Z0-9 .,:'-]{3,60}$`)

// headingCandidates picks heading-looking lines out of raw page text. Used
// for PDF and plain text where no structural heading markup exists.
func headingCandidates(lines []string, pageNum int) []document.Heading {
	var headings []document.Heading
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if allCapsRe.MatchString(line) && !strings.HasSuffix(line, ".") {
			headings = append(headings, document.Heading{Text: line, Level: 1, Page: pageNum})
		}
		// Only the leading block of a page is worth scanning.
		if len(headings) >= 2 {
			break
		}
	}
	return headings
}

// indentedCodeSpans detects runs of consecutive indented lines and emits
// them as "indentation"-method code span candidates. A run needs at least
// two code-looking lines to count.
func indentedCodeSpans(lines []string) []document.CodeSpan {
	spans := []document.CodeSpan{}
	var run []string
	codeLines := 0

	flush := func() {
		if codeLines >= 2 {
			text := strings.TrimRight(strings.Join(run, "\n"), "\n")
			spans = append(spans, document.CodeSpan{
				Text:            text,
				DetectionMethod: "indentation",
			})
		}
		run = nil
		codeLines = 0
	}

	for _, line := range lines {
		indented := strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
		blank := strings.TrimSpace(line) == ""
		switch {
		case indented:
			run = append(run, line)
			codeLines++
		case blank && len(run) > 0:
			run = append(run, line)
		default:
			flush()
		}
	}
	flush()
	return spans
}
