package pipeline

import (
	"testing"
	"time"

	"github.com/yusufkaraaslan/Skill-Seekers-sub008/internal/document"
)

func TestContentHashHex(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "hello world",
			data: []byte("hello world"),
			want: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name: "empty",
			data: []byte{},
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHashHex(tt.data)
			if got != tt.want {
				t.Errorf("ContentHashHex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobStatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued, CreatedAt: time.Now(), UpdatedAt: time.Now()}

	for _, step := range []struct {
		status JobStatus
		phase  string
	}{
		{StatusExtracting, "extracting pages"},
		{StatusAnalyzing, "scoring code blocks"},
		{StatusCompleted, "done"},
	} {
		job.SetStatus(step.status, step.phase)
		if job.Status != step.status {
			t.Errorf("Status = %q, want %q", job.Status, step.status)
		}
		if job.Phase != step.phase {
			t.Errorf("Phase = %q, want %q", job.Phase, step.phase)
		}
	}
}

func TestJobAddError(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}
	job.AddError("page 3 annotation failed")
	job.AddError("page 7 annotation failed")

	if len(job.Progress.Errors) != 2 {
		t.Fatalf("len(Progress.Errors) = %d, want 2", len(job.Progress.Errors))
	}
	if job.Progress.Errors[0] != "page 3 annotation failed" {
		t.Errorf("Errors[0] = %q", job.Progress.Errors[0])
	}
}

func TestJobFileDataRoundTrip(t *testing.T) {
	job := &Job{ID: "j1"}
	data := []byte("# Title\n\nsome markdown")
	job.SetFileData(data)

	got := job.FileData()
	if string(got) != string(data) {
		t.Errorf("FileData() = %q, want %q", got, data)
	}
}

func TestJobOptionsRoundTrip(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetOptions(Options{ChunkSize: 5, MinQuality: 6.5})

	opts := job.RunOptions()
	if opts.ChunkSize != 5 || opts.MinQuality != 6.5 {
		t.Errorf("RunOptions() = %+v", opts)
	}
}

func TestJobResult(t *testing.T) {
	job := &Job{ID: "j1"}
	if job.Result() != nil {
		t.Fatal("Result() should be nil before completion")
	}

	doc := &document.Document{Pages: []document.Page{{Number: 1, Lines: []string{"x"}}}}
	job.SetResult(doc)
	if job.Result() != doc {
		t.Error("Result() did not return the stored document")
	}
}

func TestJobSnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued, Filename: "book.pdf"}
	snap := job.Snapshot()

	if snap.Progress.Errors == nil {
		t.Error("Snapshot Progress.Errors must be non-nil for JSON output")
	}
	if snap.ID != "j1" || snap.Filename != "book.pdf" {
		t.Errorf("Snapshot = %+v", snap)
	}
}

func TestJobStorePutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "abc123", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("abc123"); got != job {
		t.Error("Get() did not return the stored job")
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestJobStoreCleanup(t *testing.T) {
	store := NewJobStore(time.Minute)
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-2 * time.Minute)}
	store.Put(fresh)
	store.Put(stale)

	store.Cleanup()

	if store.Get("fresh") == nil {
		t.Error("fresh job was evicted")
	}
	if store.Get("stale") != nil {
		t.Error("stale job was not evicted")
	}
}

func TestJobStoreCleanupEmpty(t *testing.T) {
	store := NewJobStore(time.Minute)
	store.Cleanup()
}
