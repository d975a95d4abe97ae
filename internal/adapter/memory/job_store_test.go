package memory

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-hub/internal/core/domain"
)

// fakeClock advances by one second on every reading.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func sequentialIDs() IDSource {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("job_%d", n), nil
	}
}

func newTestJobStore() (*JobStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewJobStore(sequentialIDs()).WithClock(clock.Now), clock
}

func TestJobStore_AddJobStartsProcessing(t *testing.T) {
	s, _ := newTestJobStore()
	end := time.Now()

	id, err := s.AddJob(domain.GenerationJob{Type: "x", Status: domain.JobCompleted, EndTime: &end})
	require.NoError(t, err)

	job, ok := s.GetJob(id)
	require.True(t, ok)
	assert.Equal(t, domain.JobProcessing, job.Status)
	assert.Nil(t, job.EndTime)
	assert.Equal(t, "x", job.Type)
	assert.False(t, job.StartTime.IsZero())
}

func TestJobStore_AddJobPrepends(t *testing.T) {
	s, _ := newTestJobStore()
	first, _ := s.AddJob(domain.GenerationJob{Type: "a"})
	second, _ := s.AddJob(domain.GenerationJob{Type: "b"})

	jobs := s.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, second, jobs[0].ID)
	assert.Equal(t, first, jobs[1].ID)
}

func TestJobStore_AddJobIDError(t *testing.T) {
	s := NewJobStore(func() (string, error) { return "", errors.New("entropy") })
	_, err := s.AddJob(domain.GenerationJob{})
	require.Error(t, err)
	assert.Empty(t, s.Jobs())
}

func TestJobStore_EndTimeStampedOnceOnTransition(t *testing.T) {
	s, _ := newTestJobStore()
	id, _ := s.AddJob(domain.GenerationJob{Type: "x"})

	completed := domain.JobCompleted
	job, finished, ok := s.UpdateJob(id, domain.JobPatch{Status: &completed})
	require.True(t, ok)
	assert.True(t, finished)
	assert.Equal(t, domain.JobCompleted, job.Status)
	require.NotNil(t, job.EndTime)
	stamped := *job.EndTime

	progress := 100
	job, finished, ok = s.UpdateJob(id, domain.JobPatch{Progress: &progress})
	require.True(t, ok)
	assert.False(t, finished)
	assert.Equal(t, stamped, *job.EndTime)

	// A repeated terminal status does not re-stamp either.
	job, finished, _ = s.UpdateJob(id, domain.JobPatch{Status: &completed})
	assert.False(t, finished)
	assert.Equal(t, stamped, *job.EndTime)
}

func TestJobStore_TerminalStatusIsFinal(t *testing.T) {
	s, _ := newTestJobStore()
	id, _ := s.AddJob(domain.GenerationJob{})

	failed := domain.JobFailed
	s.UpdateJob(id, domain.JobPatch{Status: &failed})

	processing := domain.JobProcessing
	job, _, _ := s.UpdateJob(id, domain.JobPatch{Status: &processing})
	assert.Equal(t, domain.JobFailed, job.Status)

	completed := domain.JobCompleted
	job, _, _ = s.UpdateJob(id, domain.JobPatch{Status: &completed})
	assert.Equal(t, domain.JobFailed, job.Status)
}

func TestJobStore_NonTerminalUpdateLeavesEndTimeUnset(t *testing.T) {
	s, _ := newTestJobStore()
	id, _ := s.AddJob(domain.GenerationJob{})

	progress := 40
	job, _, _ := s.UpdateJob(id, domain.JobPatch{Progress: &progress})
	assert.Equal(t, 40, job.Progress)
	assert.Nil(t, job.EndTime)
}

func TestJobStore_UnknownIDsAreNoOps(t *testing.T) {
	s, _ := newTestJobStore()
	_, _, ok := s.UpdateJob("nope", domain.JobPatch{})
	assert.False(t, ok)
	assert.False(t, s.RemoveJob("nope"))
	_, ok = s.GetJob("nope")
	assert.False(t, ok)
}

func TestJobStore_ClearCompleted(t *testing.T) {
	s, _ := newTestJobStore()
	a, _ := s.AddJob(domain.GenerationJob{})
	b, _ := s.AddJob(domain.GenerationJob{})
	c, _ := s.AddJob(domain.GenerationJob{})

	completed, failed := domain.JobCompleted, domain.JobFailed
	s.UpdateJob(a, domain.JobPatch{Status: &completed})
	s.UpdateJob(c, domain.JobPatch{Status: &failed})

	assert.Equal(t, 2, s.ClearCompleted())
	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, b, jobs[0].ID)
}

func TestJobStore_RemoveJob(t *testing.T) {
	s, _ := newTestJobStore()
	id, _ := s.AddJob(domain.GenerationJob{})
	assert.True(t, s.RemoveJob(id))
	assert.False(t, s.RemoveJob(id))
	assert.Empty(t, s.Jobs())
}

func TestJobStore_ConcurrentCompletionFinishesOnce(t *testing.T) {
	s, _ := newTestJobStore()
	id, _ := s.AddJob(domain.GenerationJob{})

	var (
		wg       sync.WaitGroup
		finished atomic.Int32
	)
	completed := domain.JobCompleted
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, done, _ := s.UpdateJob(id, domain.JobPatch{Status: &completed}); done {
				finished.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), finished.Load())
}
