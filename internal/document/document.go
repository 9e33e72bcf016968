package document

// Page is one unit of source input, produced by an upstream extractor.
// Pages are 1-indexed and contiguous within a document.
type Page struct {
	Number    int        `json:"page_number"`
	Lines     []string   `json:"lines"`
	CodeSpans []CodeSpan `json:"code_samples"`
	Headings  []Heading  `json:"headings,omitempty"`
	Images    []string   `json:"images,omitempty"`
}

// CodeSpan is a candidate code block extracted from a page. The raw fields
// (Text, FontHint, DetectionMethod) come from the extractor; the rest are
// written by the pipeline.
type CodeSpan struct {
	Text            string `json:"text"`
	FontHint        string `json:"font_hint,omitempty"`
	DetectionMethod string `json:"detection_method"`

	Language           string   `json:"language"`
	Confidence         float64  `json:"confidence"`
	QualityScore       float64  `json:"quality_score"`
	IsValid            bool     `json:"is_valid"`
	ValidationIssues   []string `json:"validation_issues"`
	MergedFromNextPage bool     `json:"merged_from_next_page"`
}

// Heading is a heading candidate with its level (1-6).
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

// Chapter is a logical section spanning one or more pages. StartPage and
// EndPage are inclusive and 1-indexed; chapters partition the page sequence.
type Chapter struct {
	Title     string `json:"title"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
}

// Chunk is a size- and chapter-bounded grouping of consecutive pages.
type Chunk struct {
	Number       int    `json:"chunk_number"`
	StartPage    int    `json:"start_page"`
	EndPage      int    `json:"end_page"`
	ChapterTitle string `json:"chapter_title,omitempty"`
	Pages        []Page `json:"pages"`
}

// QualityStatistics aggregates over all retained code spans.
type QualityStatistics struct {
	AverageQuality      float64 `json:"average_quality"`
	AverageConfidence   float64 `json:"average_confidence"`
	ValidCodeBlocks     int     `json:"valid_code_blocks"`
	InvalidCodeBlocks   int     `json:"invalid_code_blocks"`
	ValidationRate      float64 `json:"validation_rate"`
	HighQualityBlocks   int     `json:"high_quality_blocks"`
	MediumQualityBlocks int     `json:"medium_quality_blocks"`
	LowQualityBlocks    int     `json:"low_quality_blocks"`
}

// Document is the final report of one pipeline run. Warnings lists page
// numbers whose per-page processing failed non-fatally.
type Document struct {
	Pages      []Page            `json:"pages"`
	Chapters   []Chapter         `json:"chapters"`
	Chunks     []Chunk           `json:"chunks"`
	Statistics QualityStatistics `json:"quality_statistics"`
	Warnings   []int             `json:"warnings"`
}

// TotalCodeSpans counts spans across all pages.
func (d *Document) TotalCodeSpans() int {
	n := 0
	for i := range d.Pages {
		n += len(d.Pages[i].CodeSpans)
	}
	return n
}

// ClonePages deep-copies a page slice so one holder's mutations never leak
// into another's. Span and heading slices are copied; strings are immutable.
func ClonePages(pages []Page) []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		cp := p
		if p.Lines != nil {
			cp.Lines = append([]string(nil), p.Lines...)
		}
		if p.CodeSpans != nil {
			cp.CodeSpans = make([]CodeSpan, len(p.CodeSpans))
			for j, s := range p.CodeSpans {
				sc := s
				if s.ValidationIssues != nil {
					sc.ValidationIssues = append([]string(nil), s.ValidationIssues...)
				}
				cp.CodeSpans[j] = sc
			}
		}
		if p.Headings != nil {
			cp.Headings = append([]Heading(nil), p.Headings...)
		}
		if p.Images != nil {
			cp.Images = append([]string(nil), p.Images...)
		}
		out[i] = cp
	}
	return out
}
