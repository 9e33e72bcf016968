// Package pipeline sequences code-block merging, chapter detection,
// chunking, and per-span quality scoring into one document report, and
// hosts the async job service around it.
package pipeline

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/chapter"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/chunker"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/lang"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/merge"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/quality"
)

// maxSpanWorkers bounds the concurrency of the per-span annotation step.
// The computation is order-independent; results are written back per page
// so output ordering stays deterministic.
const maxSpanWorkers = 4

// Options is the configuration surface of a single run.
type Options struct {
	// ChunkSize is pages per chunk; 0 means a single chunk.
	ChunkSize int
	// MinQuality drops spans scoring below it after scoring; 0 disables
	// filtering. Must be within [0,10].
	MinQuality float64
}

// Pipeline is the deterministic batch transformation from a page sequence
// to a Document report. One Pipeline is safe for concurrent use across
// independent documents; each run allocates its own output.
type Pipeline struct {
	detector  *lang.Detector
	validator *quality.Validator
	scorer    *quality.Scorer
	chapters  *chapter.Detector
	merger    *merge.Merger
	log       *slog.Logger
}

// New builds a Pipeline with the default pattern table.
func New(log *slog.Logger) *Pipeline {
	detector := lang.NewDetector(nil)
	return &Pipeline{
		detector:  detector,
		validator: quality.NewValidator(),
		scorer:    quality.NewScorer(),
		chapters:  chapter.NewDetector(),
		merger:    merge.NewMerger(detector),
		log:       log,
	}
}

// Run executes the full sequence: merge cross-page code, annotate every
// span, filter by MinQuality, detect chapters, build chunks, aggregate
// statistics. Given identical input and options the returned Document is
// byte-identical across runs. It fails fast on invalid options or
// structurally invalid input and otherwise always returns a Document; a
// page whose processing fails is emitted with default derived fields and
// its number recorded in Warnings.
func (p *Pipeline) Run(pages []document.Page, opts Options) (*document.Document, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := validatePages(pages); err != nil {
		return nil, err
	}

	merged := p.merger.Pages(pages)
	warnings := p.annotate(merged)

	if opts.MinQuality > 0 {
		filterByQuality(merged, opts.MinQuality)
	}

	chapters := p.chapters.Partition(merged)
	chunks := chunker.New(p.chapters, chunker.Config{ChunkSize: opts.ChunkSize}).Build(merged)
	stats := quality.Aggregate(merged)

	p.log.Info("pipeline complete",
		"pages", len(merged),
		"chapters", len(chapters),
		"chunks", len(chunks),
		"code_blocks", stats.ValidCodeBlocks+stats.InvalidCodeBlocks,
		"warnings", len(warnings),
	)

	return &document.Document{
		Pages:      merged,
		Chapters:   chapters,
		Chunks:     chunks,
		Statistics: stats,
		Warnings:   warnings,
	}, nil
}

func validateOptions(opts Options) error {
	if opts.ChunkSize < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("chunk_size must be >= 0, got %d", opts.ChunkSize)}
	}
	if opts.MinQuality < 0 || opts.MinQuality > 10 {
		return &ConfigurationError{Reason: fmt.Sprintf("min_quality must be within [0,10], got %g", opts.MinQuality)}
	}
	return nil
}

func validatePages(pages []document.Page) error {
	if len(pages) == 0 {
		return &StructuralInputError{Reason: "page list is empty"}
	}
	for i, page := range pages {
		if page.Number != i+1 {
			return &StructuralInputError{
				Reason: fmt.Sprintf("pages must be 1-indexed and contiguous: position %d has page number %d", i, page.Number),
			}
		}
		if page.Lines == nil && page.CodeSpans == nil && page.Headings == nil {
			return &StructuralInputError{Reason: fmt.Sprintf("page %d has no content fields", page.Number)}
		}
	}
	return nil
}

// annotate detects, validates, and scores every span with bounded
// concurrency. Each goroutine writes only to its own page; a page whose
// annotation panics keeps its default derived fields and is reported.
func (p *Pipeline) annotate(pages []document.Page) []int {
	sem := make(chan struct{}, maxSpanWorkers)
	failed := make(chan int, len(pages))
	var wg sync.WaitGroup

	for i := range pages {
		sem <- struct{}{}
		wg.Add(1)
		go func(page *document.Page) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := p.annotatePage(page); err != nil {
				p.log.Warn("page annotation failed", "page", page.Number, "error", err)
				failed <- page.Number
			}
		}(&pages[i])
	}
	wg.Wait()
	close(failed)

	warnings := make([]int, 0)
	for n := range failed {
		warnings = append(warnings, n)
	}
	sort.Ints(warnings)
	return warnings
}

// annotatePage computes derived span fields into a scratch slice and
// commits it only on success, so a mid-span panic leaves the page in its
// default state.
func (p *Pipeline) annotatePage(page *document.Page) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	annotated := make([]document.CodeSpan, len(page.CodeSpans))
	for i, span := range page.CodeSpans {
		language, confidence := p.detector.Detect(span.Text)
		isValid, issues := p.validator.Validate(span.Text, language)
		score := p.scorer.Score(span.Text, language, confidence, isValid, len(issues))
		if issues == nil {
			issues = []string{}
		}

		span.Language = language
		span.Confidence = clamp(confidence, 0, 1)
		span.IsValid = isValid
		span.ValidationIssues = issues
		span.QualityScore = clamp(score, 0, 10)
		annotated[i] = span
	}
	page.CodeSpans = annotated
	return nil
}

// filterByQuality drops spans below the threshold in place. It runs only
// after scoring; statistics are computed over the retained set.
func filterByQuality(pages []document.Page, minQuality float64) {
	for i := range pages {
		kept := pages[i].CodeSpans[:0]
		for _, span := range pages[i].CodeSpans {
			if span.QualityScore >= minQuality {
				kept = append(kept, span)
			}
		}
		pages[i].CodeSpans = kept
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
