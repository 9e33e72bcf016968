package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

// JobStatus represents the state of a document analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusAnalyzing  JobStatus = "analyzing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single document analysis.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	opts     Options
	result   *document.Document
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalPages int      `json:"total_pages"`
	CodeBlocks int      `json:"code_blocks"`
	Errors     []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetProgress records page and code-block counts.
func (j *Job) SetProgress(pages, codeBlocks int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalPages = pages
	j.Progress.CodeBlocks = codeBlocks
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetOptions sets the run options for this job.
func (j *Job) SetOptions(opts Options) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.opts = opts
}

// RunOptions returns the run options for this job.
func (j *Job) RunOptions() Options {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.opts
}

// SetResult stores the completed report.
func (j *Job) SetResult(doc *document.Document) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = doc
	j.UpdatedAt = time.Now()
}

// Result returns the completed report, or nil while the job is running.
func (j *Job) Result() *document.Document {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.Filename,
		Progress: Progress{
			TotalPages: j.Progress.TotalPages,
			CodeBlocks: j.Progress.CodeBlocks,
			Errors:     errs,
		},
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
