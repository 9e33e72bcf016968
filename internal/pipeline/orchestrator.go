package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/config"
)

// Orchestrator manages the async document analysis service: a bounded job
// queue drained by a fixed worker pool. Documents are independent, so jobs
// parallelize freely; each run owns its input and output.
type Orchestrator struct {
	jobs     *JobStore
	queue    chan *Job
	pipeline *Pipeline
	stats    *RunStats
	log      *slog.Logger
	cfg      config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the service around a shared Pipeline.
func NewOrchestrator(cfg config.Config, p *Pipeline, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:     NewJobStore(cfg.JobTTL),
		queue:    make(chan *Job, cfg.MaxQueueSize),
		pipeline: p,
		stats:    NewRunStats(time.Hour),
		log:      log,
		cfg:      cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.pipeline, o.stats, o.log, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the service.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the rolling run-latency statistics.
func (o *Orchestrator) Stats() *RunStats {
	return o.stats
}
