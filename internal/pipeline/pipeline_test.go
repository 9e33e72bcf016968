package pipeline

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/chapter"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/lang"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/merge"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/quality"
)

func testPipeline() *Pipeline {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func samplePages() []document.Page {
	return []document.Page{
		{
			Number:   1,
			Lines:    []string{"intro text"},
			Headings: []document.Heading{{Text: "Chapter 1 Basics", Level: 1, Page: 1}},
			CodeSpans: []document.CodeSpan{
				{Text: "def add_numbers(first, second):\n    return first + second", DetectionMethod: "indentation"},
			},
		},
		{
			Number: 2,
			Lines:  []string{"more text"},
			CodeSpans: []document.CodeSpan{
				{Text: "The quick brown fox and the lazy dog sat on the mat", DetectionMethod: "font"},
			},
		},
	}
}

func TestRun_AnnotatesEverySpan(t *testing.T) {
	doc, err := testPipeline().Run(samplePages(), Options{})
	require.NoError(t, err)

	require.Len(t, doc.Pages, 2)
	code := doc.Pages[0].CodeSpans[0]
	assert.Equal(t, "python", code.Language)
	assert.InDelta(t, 0.6, code.Confidence, 1e-9)
	assert.True(t, code.IsValid)
	assert.NotNil(t, code.ValidationIssues)
	assert.Empty(t, code.ValidationIssues)
	assert.Greater(t, code.QualityScore, 7.0)

	prose := doc.Pages[1].CodeSpans[0]
	assert.Equal(t, "unknown", prose.Language)
	assert.False(t, prose.IsValid)
	assert.NotEmpty(t, prose.ValidationIssues)

	assert.NotNil(t, doc.Warnings)
	assert.Empty(t, doc.Warnings)
}

func TestRun_Deterministic(t *testing.T) {
	p := testPipeline()
	opts := Options{ChunkSize: 1, MinQuality: 3}

	first, err := p.Run(samplePages(), opts)
	require.NoError(t, err)

	for range 10 {
		again, err := p.Run(samplePages(), opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRun_InputPagesNotMutated(t *testing.T) {
	pages := samplePages()
	_, err := testPipeline().Run(pages, Options{})
	require.NoError(t, err)

	assert.Empty(t, pages[0].CodeSpans[0].Language)
	assert.Zero(t, pages[0].CodeSpans[0].QualityScore)
	assert.Nil(t, pages[0].CodeSpans[0].ValidationIssues)
}

func TestRun_MergesAcrossPageBoundary(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Lines: []string{"t"}, CodeSpans: []document.CodeSpan{
			{Text: "def total(items):\n    result = 0", DetectionMethod: "indentation"},
		}},
		{Number: 2, Lines: []string{"t"}, CodeSpans: []document.CodeSpan{
			{Text: "    return result", DetectionMethod: "indentation"},
		}},
	}

	doc, err := testPipeline().Run(pages, Options{})
	require.NoError(t, err)

	require.Len(t, doc.Pages[0].CodeSpans, 1)
	assert.True(t, doc.Pages[0].CodeSpans[0].MergedFromNextPage)
	assert.Contains(t, doc.Pages[0].CodeSpans[0].Text, "return result")
	assert.Empty(t, doc.Pages[1].CodeSpans)
	assert.Equal(t, 1, doc.Statistics.ValidCodeBlocks+doc.Statistics.InvalidCodeBlocks)
}

func TestRun_MinQualityFiltersSpans(t *testing.T) {
	doc, err := testPipeline().Run(samplePages(), Options{MinQuality: 10})
	require.NoError(t, err)

	// The function definition scores a perfect 10 and survives; the prose
	// span does not.
	require.Len(t, doc.Pages[0].CodeSpans, 1)
	assert.Empty(t, doc.Pages[1].CodeSpans)
	assert.Equal(t, 1, doc.Statistics.ValidCodeBlocks)
	assert.Equal(t, 0, doc.Statistics.InvalidCodeBlocks)
	assert.InDelta(t, 1.0, doc.Statistics.ValidationRate, 1e-9)
}

func TestRun_ZeroMinQualityKeepsEverything(t *testing.T) {
	doc, err := testPipeline().Run(samplePages(), Options{MinQuality: 0})
	require.NoError(t, err)
	assert.Len(t, doc.Pages[0].CodeSpans, 1)
	assert.Len(t, doc.Pages[1].CodeSpans, 1)
}

func TestRun_ChunksPartitionPages(t *testing.T) {
	pages := make([]document.Page, 12)
	for i := range 12 {
		pages[i] = document.Page{Number: i + 1, Lines: []string{"body"}}
	}
	pages[0].Headings = []document.Heading{{Text: "Chapter 1 All", Level: 1, Page: 1}}

	doc, err := testPipeline().Run(pages, Options{ChunkSize: 5})
	require.NoError(t, err)

	require.Len(t, doc.Chunks, 3)
	next := 1
	for _, c := range doc.Chunks {
		assert.Equal(t, next, c.StartPage)
		next = c.EndPage + 1
	}
	assert.Equal(t, 13, next)

	require.Len(t, doc.Chapters, 1)
	assert.Equal(t, "Chapter 1 All", doc.Chapters[0].Title)
	assert.Equal(t, 1, doc.Chapters[0].StartPage)
	assert.Equal(t, 12, doc.Chapters[0].EndPage)
}

func TestRun_ZeroChunkSizeSingleChunk(t *testing.T) {
	pages := make([]document.Page, 10)
	for i := range 10 {
		pages[i] = document.Page{Number: i + 1, Lines: []string{"body"}}
	}
	pages[0].Headings = []document.Heading{{Text: "Chapter 1 Alpha", Level: 1, Page: 1}}
	pages[5].Headings = []document.Heading{{Text: "Chapter 2 Beta", Level: 1, Page: 6}}

	doc, err := testPipeline().Run(pages, Options{ChunkSize: 0})
	require.NoError(t, err)

	// Chapter boundaries still show in the chapter list, but never split
	// the single chunk.
	require.Len(t, doc.Chunks, 1)
	assert.Equal(t, 1, doc.Chunks[0].StartPage)
	assert.Equal(t, 10, doc.Chunks[0].EndPage)
	assert.Equal(t, "Chapter 1 Alpha", doc.Chunks[0].ChapterTitle)
	require.Len(t, doc.Chapters, 2)
}

// faultyPipeline wires a detector whose pattern table blows up on any
// non-empty span, forcing the per-page recovery path.
func faultyPipeline() *Pipeline {
	detector := lang.NewDetector(lang.PatternTable{
		"python": {{Regexp: nil, Weight: 1}},
	})
	return &Pipeline{
		detector:  detector,
		validator: quality.NewValidator(),
		scorer:    quality.NewScorer(),
		chapters:  chapter.NewDetector(),
		merger:    merge.NewMerger(lang.NewDetector(nil)),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRun_FailedPagesReportedInWarnings(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Lines: []string{"a"}, CodeSpans: []document.CodeSpan{
			{Text: "def f():\n    pass", DetectionMethod: "font"},
		}},
		{Number: 2, Lines: []string{"b"}},
		{Number: 3, Lines: []string{"c"}, CodeSpans: []document.CodeSpan{
			{Text: "SELECT id FROM users;", DetectionMethod: "font"},
		}},
	}

	doc, err := faultyPipeline().Run(pages, Options{})
	require.NoError(t, err, "a page failure is recovered, not fatal")

	assert.Equal(t, []int{1, 3}, doc.Warnings, "failed page numbers, sorted")

	// Failed pages keep their spans with default derived fields.
	require.Len(t, doc.Pages[0].CodeSpans, 1)
	failed := doc.Pages[0].CodeSpans[0]
	assert.Empty(t, failed.Language)
	assert.Zero(t, failed.Confidence)
	assert.Zero(t, failed.QualityScore)
	assert.Nil(t, failed.ValidationIssues)
	assert.False(t, failed.IsValid)
}

func TestRun_FailedPageWarningsDeterministic(t *testing.T) {
	pages := make([]document.Page, 9)
	for i := range 9 {
		pages[i] = document.Page{Number: i + 1, Lines: []string{"x"}, CodeSpans: []document.CodeSpan{
			{Text: "broken = true;", DetectionMethod: "font"},
		}}
	}

	p := faultyPipeline()
	for range 5 {
		doc, err := p.Run(pages, Options{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, doc.Warnings)
	}
}

func TestRun_RejectsBadOptions(t *testing.T) {
	p := testPipeline()
	pages := samplePages()

	cases := []Options{
		{ChunkSize: -1},
		{MinQuality: -0.1},
		{MinQuality: 10.5},
	}
	for _, opts := range cases {
		doc, err := p.Run(pages, opts)
		assert.Nil(t, doc)
		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestRun_RejectsStructurallyInvalidPages(t *testing.T) {
	p := testPipeline()

	cases := map[string][]document.Page{
		"empty": {},
		"not contiguous": {
			{Number: 1, Lines: []string{"a"}},
			{Number: 3, Lines: []string{"b"}},
		},
		"zero indexed": {
			{Number: 0, Lines: []string{"a"}},
		},
		"no content fields": {
			{Number: 1},
		},
	}
	for name, pages := range cases {
		doc, err := p.Run(pages, Options{})
		assert.Nil(t, doc, name)
		var inputErr *StructuralInputError
		assert.ErrorAs(t, err, &inputErr, name)
	}
}

func TestRun_JSONContract(t *testing.T) {
	doc, err := testPipeline().Run(samplePages(), Options{})
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"pages", "chapters", "chunks", "quality_statistics", "warnings"} {
		assert.Contains(t, decoded, key)
	}

	var pages []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["pages"], &pages))
	require.NotEmpty(t, pages)
	assert.Contains(t, pages[0], "page_number")
	assert.Contains(t, pages[0], "code_samples")
}
