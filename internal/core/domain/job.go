package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// JobStatus is the lifecycle state of a generation job.
type JobStatus string

const (
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// GenerationJob tracks a unit of creative-production work. EndTime is set
// once, when the job reaches a terminal status.
type GenerationJob struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	BriefID           string          `json:"briefId,omitempty"`
	CreativeID        string          `json:"creativeId,omitempty"`
	Payload           json.RawMessage `json:"payload,omitempty"`
	Progress          int             `json:"progress"`
	Error             string          `json:"error,omitempty"`
	ResultCreativeIDs []string        `json:"resultCreativeIds,omitempty"`
	Status            JobStatus       `json:"status"`
	StartTime         time.Time       `json:"startTime"`
	EndTime           *time.Time      `json:"endTime,omitempty"`
}

// Clone returns a deep copy of j.
func (j GenerationJob) Clone() GenerationJob {
	out := j
	out.Payload = slices.Clone(j.Payload)
	out.ResultCreativeIDs = slices.Clone(j.ResultCreativeIDs)
	if j.EndTime != nil {
		t := *j.EndTime
		out.EndTime = &t
	}
	return out
}

// JobPatch is a partial job update. EndTime is not patchable; it is stamped
// by the store on the transition into a terminal status.
type JobPatch struct {
	Type              *string         `json:"type,omitempty"`
	BriefID           *string         `json:"briefId,omitempty"`
	CreativeID        *string         `json:"creativeId,omitempty"`
	Payload           json.RawMessage `json:"payload,omitempty"`
	Progress          *int            `json:"progress,omitempty"`
	Error             *string         `json:"error,omitempty"`
	ResultCreativeIDs []string        `json:"resultCreativeIds,omitempty"`
	Status            *JobStatus      `json:"status,omitempty"`
}

// Apply merges p onto j. A status change is ignored once j is terminal.
func (p JobPatch) Apply(j GenerationJob) GenerationJob {
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.BriefID != nil {
		j.BriefID = *p.BriefID
	}
	if p.CreativeID != nil {
		j.CreativeID = *p.CreativeID
	}
	if p.Payload != nil {
		j.Payload = slices.Clone(p.Payload)
	}
	if p.Progress != nil {
		j.Progress = *p.Progress
	}
	if p.Error != nil {
		j.Error = *p.Error
	}
	if p.ResultCreativeIDs != nil {
		j.ResultCreativeIDs = slices.Clone(p.ResultCreativeIDs)
	}
	if p.Status != nil && !j.Status.Terminal() {
		j.Status = *p.Status
	}
	return j
}
