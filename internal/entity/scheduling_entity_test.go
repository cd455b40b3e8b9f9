package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulingStatusTransitions(t *testing.T) {
	tests := []struct {
		from SchedulingStatus
		to   SchedulingStatus
		want bool
	}{
		{SchedulingStatusScheduled, SchedulingStatusConfirmed, true},
		{SchedulingStatusScheduled, SchedulingStatusInProgress, true},
		{SchedulingStatusScheduled, SchedulingStatusCompleted, true},
		{SchedulingStatusScheduled, SchedulingStatusCancelled, true},
		{SchedulingStatusConfirmed, SchedulingStatusInProgress, true},
		{SchedulingStatusConfirmed, SchedulingStatusScheduled, false},
		{SchedulingStatusInProgress, SchedulingStatusCompleted, true},
		{SchedulingStatusInProgress, SchedulingStatusCancelled, true},
		{SchedulingStatusInProgress, SchedulingStatusScheduled, false},
		{SchedulingStatusCompleted, SchedulingStatusCancelled, false},
		{SchedulingStatusCompleted, SchedulingStatusInProgress, false},
		{SchedulingStatusCancelled, SchedulingStatusScheduled, false},
		{SchedulingStatusCancelled, SchedulingStatusCompleted, false},
		{SchedulingStatusScheduled, SchedulingStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSchedulingStatusValid(t *testing.T) {
	assert.True(t, SchedulingStatusScheduled.Valid())
	assert.True(t, SchedulingStatusCancelled.Valid())
	assert.False(t, SchedulingStatus("rescheduled").Valid())
	assert.False(t, SchedulingStatus("").Valid())
}
