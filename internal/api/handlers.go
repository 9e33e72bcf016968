package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/parser"
	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/pipeline"
)

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	// Per-request overrides of the pipeline defaults.
	opts := pipeline.Options{
		ChunkSize:  s.cfg.ChunkSize,
		MinQuality: s.cfg.MinQuality,
	}
	if v := r.FormValue("chunk_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, "chunk_size must be an integer >= 0", http.StatusBadRequest)
			return
		}
		opts.ChunkSize = n
	}
	if v := r.FormValue("min_quality"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 10 {
			jsonError(w, "min_quality must be within [0,10]", http.StatusBadRequest)
			return
		}
		opts.MinQuality = f
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        pipeline.ContentHashHex([]byte(fmt.Sprintf("%s-%d", filename, now.UnixNano())))[:20],
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)
	job.SetOptions(opts)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/documents/%s/status", job.ID),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   snap.ID,
		"status":   snap.Status,
		"phase":    snap.Phase,
		"filename": snap.Filename,
		"progress": snap.Progress,
	})
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	doc := job.Result()
	if doc == nil {
		snap := job.Snapshot()
		if snap.Status == pipeline.StatusFailed {
			jsonError(w, "job failed: "+strings.Join(snap.Progress.Errors, "; "), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, "result not ready", http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func (s *Server) handlePipelineStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       s.orchestrator.Stats().Snapshot(),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
