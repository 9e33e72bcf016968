// Package merge stitches code spans that continue across a page boundary.
package merge

import (
	"strings"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/lang"
)

// Merger joins a span ending one page with the span opening the next when
// they look like one interrupted block.
type Merger struct {
	detector *lang.Detector
}

// NewMerger returns a Merger using the given detector to compare the
// languages of adjacent spans.
func NewMerger(detector *lang.Detector) *Merger {
	return &Merger{detector: detector}
}

// Pages runs a single left-to-right pass over the page sequence. For each
// adjacent pair it compares the last span of the earlier page with the
// first span of the later one; when language and detection method match and
// the earlier text reads as unfinished, the texts are concatenated onto the
// earlier span and the later page's duplicate is removed.
//
// The input slice is never mutated: the caller's pages are deep-copied
// before any span moves.
func (m *Merger) Pages(pages []document.Page) []document.Page {
	out := document.ClonePages(pages)

	for i := 0; i+1 < len(out); i++ {
		cur := &out[i]
		next := &out[i+1]
		if len(cur.CodeSpans) == 0 || len(next.CodeSpans) == 0 {
			continue
		}

		last := &cur.CodeSpans[len(cur.CodeSpans)-1]
		first := next.CodeSpans[0]

		if last.DetectionMethod != first.DetectionMethod {
			continue
		}
		lastLang, _ := m.detector.Detect(last.Text)
		firstLang, _ := m.detector.Detect(first.Text)
		if lastLang != firstLang {
			continue
		}
		if !continues(last.Text) {
			continue
		}

		last.Text = last.Text + "\n" + first.Text
		last.MergedFromNextPage = true
		next.CodeSpans = next.CodeSpans[1:]
	}
	return out
}

// continues judges whether trimmed code text is likely interrupted: it does
// not end in a strong block closer, or it ends in an explicit continuation
// marker.
func continues(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, ",") || strings.HasSuffix(trimmed, "\\") {
		return true
	}
	return !strings.HasSuffix(trimmed, "}") && !strings.HasSuffix(trimmed, ";")
}
