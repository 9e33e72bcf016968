// Package chapter detects chapter boundaries in a page sequence and builds
// the chapter partition of a document.
package chapter

import (
	"regexp"
	"strings"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// UntitledChapter names the implicit chapter covering pages that precede
// the first detected boundary (or the whole document when none is found).
const UntitledChapter = "Untitled"

// markerPatterns matches common chapter idioms in a page's first non-blank
// line. Ordered; the first match wins.
var markerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^chapter\s+\d+\b.*$`),
	regexp.MustCompile(`(?i)^part\s+[\dIVXLC]+\b.*$`),
	regexp.MustCompile(`(?i)^section\s+\d+(\.\d+)*\b.*$`),
	regexp.MustCompile(`^\d+\.\s+\S.*$`),
}

// Detector decides whether a page starts a new chapter.
type Detector struct{}

// NewDetector returns a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectStart reports whether the page begins a chapter, and the chapter
// title when it does. A first heading of level 1 or 2 takes priority; the
// first non-blank text line is then matched against the marker idioms.
// Only the first page of a chapter reports true.
func (d *Detector) DetectStart(page document.Page) (bool, string) {
	if len(page.Headings) > 0 {
		h := page.Headings[0]
		if h.Level == 1 || h.Level == 2 {
			title := strings.TrimSpace(h.Text)
			if title != "" {
				return true, title
			}
		}
	}

	for _, line := range page.Lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, pattern := range markerPatterns {
			if m := pattern.FindString(line); m != "" {
				return true, strings.TrimSpace(m)
			}
		}
		// Only the first non-blank line is considered.
		break
	}
	return false, ""
}

// Partition splits the page sequence into non-overlapping chapters whose
// union covers the full page range. Pages before the first detected
// boundary fall into an implicit untitled chapter.
func (d *Detector) Partition(pages []document.Page) []document.Chapter {
	if len(pages) == 0 {
		return nil
	}

	var chapters []document.Chapter
	current := document.Chapter{Title: UntitledChapter, StartPage: pages[0].Number}
	started := false

	for _, page := range pages {
		isStart, title := d.DetectStart(page)
		if isStart {
			if started || page.Number > current.StartPage {
				current.EndPage = page.Number - 1
				chapters = append(chapters, current)
			}
			current = document.Chapter{Title: title, StartPage: page.Number}
			started = true
		}
	}
	current.EndPage = pages[len(pages)-1].Number
	chapters = append(chapters, current)
	return chapters
}
