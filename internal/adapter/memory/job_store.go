package memory

import (
	"slices"
	"sync"
	"time"

	"creative-hub/internal/core/domain"
)

// IDSource produces job identifiers.
type IDSource func() (string, error)

// JobStore tracks generation jobs, newest first. It is safe for concurrent
// use.
type JobStore struct {
	mu    sync.RWMutex
	jobs  []domain.GenerationJob
	newID IDSource
	now   func() time.Time // injectable for deterministic tests
}

// NewJobStore creates a store that draws ids from newID.
func NewJobStore(newID IDSource) *JobStore {
	return &JobStore{newID: newID, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (s *JobStore) WithClock(now func() time.Time) *JobStore {
	s.now = now
	return s
}

// AddJob registers data as a new job. The id and start time are assigned
// here and the status is forced to processing whatever the caller passed.
func (s *JobStore) AddJob(data domain.GenerationJob) (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", err
	}
	job := data.Clone()
	job.ID = id
	job.Status = domain.JobProcessing
	job.EndTime = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	job.StartTime = s.now()
	s.jobs = slices.Insert(s.jobs, 0, job)
	return id, nil
}

// UpdateJob merges patch onto the job with id. When the merge moves the job
// from processing into completed or failed, EndTime is stamped and finished
// is true; exactly one call per job can observe that. Terminal jobs keep
// their status and EndTime. Unknown ids are ignored and ok is false.
func (s *JobStore) UpdateJob(id string, patch domain.JobPatch) (job domain.GenerationJob, finished, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return domain.GenerationJob{}, false, false
	}
	prev := s.jobs[i]
	next := patch.Apply(prev)
	if !prev.Status.Terminal() && next.Status.Terminal() {
		end := s.now()
		next.EndTime = &end
		finished = true
	}
	s.jobs[i] = next
	return next.Clone(), finished, true
}

// RemoveJob deletes the job with id. Unknown ids are ignored.
func (s *JobStore) RemoveJob(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.jobs = slices.Delete(s.jobs, i, i+1)
	return true
}

// ClearCompleted keeps only jobs still processing and returns the number
// removed.
func (s *JobStore) ClearCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.jobs)
	s.jobs = slices.DeleteFunc(s.jobs, func(j domain.GenerationJob) bool {
		return j.Status != domain.JobProcessing
	})
	return before - len(s.jobs)
}

// GetJob returns the job with id; the bool is false when absent.
func (s *JobStore) GetJob(id string) (domain.GenerationJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return domain.GenerationJob{}, false
	}
	return s.jobs[i].Clone(), true
}

// Jobs returns every job, newest first.
func (s *JobStore) Jobs() []domain.GenerationJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.GenerationJob, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = j.Clone()
	}
	return out
}

func (s *JobStore) indexLocked(id string) int {
	return slices.IndexFunc(s.jobs, func(j domain.GenerationJob) bool { return j.ID == id })
}
