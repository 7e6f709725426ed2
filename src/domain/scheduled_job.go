package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	JobSucceeded = "Succeeded"
	JobFailed    = "Failed"
)

// ScheduledJob is a record of the scheduled-jobs collection, tracking
// the outcome of the last run of a recurring job.
type ScheduledJob struct {
	ID                int64
	DocumentID        string
	Name              string
	Result            string
	LastScheduledRun  string
	LastSuccessfulRun string
	ErrorDetails      []string

	// Extra holds fields not covered by the schema above.
	Extra Record
}

func (self *ScheduledJob) UnmarshalJSON(data []byte) error {
	known := struct {
		ID                int64    `json:"id"`
		DocumentID        string   `json:"documentId"`
		Name              string   `json:"name"`
		Result            string   `json:"result"`
		LastScheduledRun  string   `json:"last_scheduled_run"`
		LastSuccessfulRun string   `json:"last_successful_run"`
		ErrorDetails      []string `json:"error_details"`
	}{}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := extraFields(data, "id", "documentId", "name", "result", "last_scheduled_run", "last_successful_run", "error_details")
	if err != nil {
		return err
	}
	*self = ScheduledJob{
		ID:                known.ID,
		DocumentID:        known.DocumentID,
		Name:              known.Name,
		Result:            known.Result,
		LastScheduledRun:  known.LastScheduledRun,
		LastSuccessfulRun: known.LastSuccessfulRun,
		ErrorDetails:      known.ErrorDetails,
		Extra:             extra,
	}
	return nil
}

// JobRun carries the context of one run of a scheduled job:
// its identity and every error collected along the way.
type JobRun struct {
	Name      string
	RunID     uuid.UUID
	StartedAt time.Time
	Errors    []string
}

func NewJobRun(name string) *JobRun {
	return &JobRun{
		Name:      name,
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}
}

func (self *JobRun) Fail(msg string) {
	self.Errors = append(self.Errors, msg)
}

func (self JobRun) Failed() bool {
	return len(self.Errors) > 0
}

func (self JobRun) Status() string {
	if self.Failed() {
		return JobFailed
	}
	return JobSucceeded
}
