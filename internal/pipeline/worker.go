package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/parser"
)

// Worker processes a single document job: extract pages from the uploaded
// file, then run the quality pipeline over them.
type Worker struct {
	pipeline    *Pipeline
	stats       *RunStats
	log         *slog.Logger
	pdfFallback bool
}

func NewWorker(p *Pipeline, stats *RunStats, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		pipeline:    p,
		stats:       stats,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full extract-and-analyze flow for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: Extract pages.
	job.SetStatus(StatusExtracting, "extracting")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = w.pdfFallback
	}

	pages, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	log.Info("extracted pages", "pages", len(pages))

	// Phase 2: Run the pipeline.
	job.SetStatus(StatusAnalyzing, "analyzing")
	start := time.Now()
	doc, err := w.pipeline.Run(pages, job.RunOptions())
	if err != nil {
		log.Error("pipeline failed", "error", err)
		job.AddError(fmt.Sprintf("analyze: %s", err))
		job.SetStatus(StatusFailed, "analyzing")
		return
	}
	w.stats.Record(time.Since(start).Milliseconds(), len(doc.Pages))

	job.SetProgress(len(doc.Pages), doc.TotalCodeSpans())
	job.SetResult(doc)
	job.SetStatus(StatusCompleted, "done")
	log.Info("analysis complete",
		"pages", len(doc.Pages),
		"chapters", len(doc.Chapters),
		"chunks", len(doc.Chunks),
		"code_blocks", doc.TotalCodeSpans(),
	)
}
