package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// JobStatus represents the lifecycle state of a service job
type JobStatus int

const (
	JobStatusPending    JobStatus = 0
	JobStatusAccepted   JobStatus = 1
	JobStatusInProgress JobStatus = 2
	JobStatusCompleted  JobStatus = 3
	JobStatusCancelled  JobStatus = 4
)

func (s JobStatus) String() string {
	names := [...]string{"Pending", "Accepted", "InProgress", "Completed", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

// CanTransitionTo reports whether the status change is allowed
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JobStatusPending:
		return next == JobStatusAccepted || next == JobStatusCancelled
	case JobStatusAccepted:
		return next == JobStatusInProgress || next == JobStatusCancelled
	case JobStatusInProgress:
		return next == JobStatusCompleted || next == JobStatusCancelled
	default:
		return false
	}
}

func (s JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *JobStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = JobStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = JobStatusPending
	case "Accepted":
		*s = JobStatusAccepted
	case "InProgress":
		*s = JobStatusInProgress
	case "Completed":
		*s = JobStatusCompleted
	case "Cancelled":
		*s = JobStatusCancelled
	}
	return nil
}

func (s JobStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *JobStatus) Scan(value interface{}) error {
	if value == nil {
		*s = JobStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = JobStatus(v)
	case int:
		*s = JobStatus(v)
	}
	return nil
}
