package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatusTransitions(t *testing.T) {
	cases := []struct {
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{JobStatusPending, JobStatusAccepted, true},
		{JobStatusPending, JobStatusCancelled, true},
		{JobStatusPending, JobStatusInProgress, false},
		{JobStatusPending, JobStatusCompleted, false},
		{JobStatusAccepted, JobStatusInProgress, true},
		{JobStatusAccepted, JobStatusCancelled, true},
		{JobStatusAccepted, JobStatusCompleted, false},
		{JobStatusAccepted, JobStatusPending, false},
		{JobStatusInProgress, JobStatusCompleted, true},
		{JobStatusInProgress, JobStatusCancelled, true},
		{JobStatusInProgress, JobStatusAccepted, false},
		{JobStatusCompleted, JobStatusCancelled, false},
		{JobStatusCompleted, JobStatusPending, false},
		{JobStatusCancelled, JobStatusPending, false},
		{JobStatusCancelled, JobStatusAccepted, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestJobStatusString(t *testing.T) {
	assert.Equal(t, "Pending", JobStatusPending.String())
	assert.Equal(t, "InProgress", JobStatusInProgress.String())
	assert.Equal(t, "Cancelled", JobStatusCancelled.String())

	// Out of range falls back to the zero state
	assert.Equal(t, "Pending", JobStatus(99).String())
}

func TestJobStatusJSON(t *testing.T) {
	data, err := json.Marshal(JobStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, `"Accepted"`, string(data))

	var s JobStatus
	require.NoError(t, json.Unmarshal([]byte(`"Completed"`), &s))
	assert.Equal(t, JobStatusCompleted, s)

	// Numeric form is accepted too
	require.NoError(t, json.Unmarshal([]byte(`2`), &s))
	assert.Equal(t, JobStatusInProgress, s)
}
