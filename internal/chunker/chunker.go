// Package chunker groups consecutive pages into bounded chunks without
// splitting a chapter.
package chunker

import (
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/chapter"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// Config controls chunking behavior.
type Config struct {
	// ChunkSize is the target page count per chunk. 0 means a single
	// chunk containing the whole document.
	ChunkSize int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{ChunkSize: 10}
}

// Chunker builds the chunk partition of a page sequence.
type Chunker struct {
	chapters *chapter.Detector
	cfg      Config
}

// New returns a Chunker using the given chapter detector.
func New(chapters *chapter.Detector, cfg Config) *Chunker {
	return &Chunker{chapters: chapters, cfg: cfg}
}

// Build walks pages in order, accumulating into a current chunk. A chapter
// start always closes the previous chunk, so a chapter boundary never falls
// inside one; the size bound additionally closes a chunk once it holds
// ChunkSize pages, unless the page that filled it starts a chapter. One
// very long chapter may span several size-bounded chunks, each tagged with
// the same chapter title. The trailing chunk closes at end of input
// regardless of size.
//
// ChunkSize 0 disables splitting entirely: the whole document comes back as
// one chunk, titled after a chapter starting on the first page (untitled
// otherwise).
func (c *Chunker) Build(pages []document.Page) []document.Chunk {
	if len(pages) == 0 {
		return nil
	}

	if c.cfg.ChunkSize == 0 {
		title := chapter.UntitledChapter
		if isStart, t := c.chapters.DetectStart(pages[0]); isStart {
			title = t
		}
		return []document.Chunk{{
			Number:       1,
			StartPage:    pages[0].Number,
			EndPage:      pages[len(pages)-1].Number,
			ChapterTitle: title,
			Pages:        pages,
		}}
	}

	var chunks []document.Chunk
	var current []document.Page
	chapterTitle := chapter.UntitledChapter
	chunkTitle := chapterTitle

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, document.Chunk{
			Number:       len(chunks) + 1,
			StartPage:    current[0].Number,
			EndPage:      current[len(current)-1].Number,
			ChapterTitle: chunkTitle,
			Pages:        current,
		})
		current = nil
	}

	for _, page := range pages {
		isStart, title := c.chapters.DetectStart(page)
		if isStart {
			flush()
			chapterTitle = title
		}
		if len(current) == 0 {
			chunkTitle = chapterTitle
		}
		current = append(current, page)

		if c.cfg.ChunkSize > 0 && len(current) >= c.cfg.ChunkSize && !isStart {
			flush()
		}
	}
	flush()
	return chunks
}
