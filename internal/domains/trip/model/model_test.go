package model_test

import (
	"testing"
	"time"
	tourModel "tourdesk/internal/domains/tour/model"
	"tourdesk/internal/domains/trip/model"

	"github.com/stretchr/testify/assert"
)

func TestAssignmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to model.AssignmentStatus
		want     bool
	}{
		{model.AssignmentAssigned, model.AssignmentAccepted, true},
		{model.AssignmentAssigned, model.AssignmentCancelled, true},
		{model.AssignmentAssigned, model.AssignmentCompleted, false},
		{model.AssignmentAccepted, model.AssignmentCompleted, true},
		{model.AssignmentAccepted, model.AssignmentCancelled, true},
		{model.AssignmentCompleted, model.AssignmentCancelled, false},
		{model.AssignmentCancelled, model.AssignmentAssigned, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTripAssignment_Overlaps(t *testing.T) {
	day := func(d int) *time.Time {
		v := time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)

		return &v
	}

	a := model.TripAssignment{DepartureDate: day(10), ReturnDate: day(12)}

	assert.True(t, a.Overlaps(*day(12), *day(14)))
	assert.True(t, a.Overlaps(*day(8), *day(10)))
	assert.True(t, a.Overlaps(*day(11), *day(11)))
	assert.False(t, a.Overlaps(*day(13), *day(15)))
	assert.False(t, a.Overlaps(*day(1), *day(9)))
	assert.False(t, model.TripAssignment{}.Overlaps(*day(1), *day(30)))
}

func TestTripAssignment_Scheduled(t *testing.T) {
	status := func(s tourModel.TourInstanceStatus) *tourModel.TourInstanceStatus { return &s }
	deleted := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, model.TripAssignment{}.Scheduled())
	assert.True(t, model.TripAssignment{InstanceStatus: status(tourModel.TourInstanceRunning)}.Scheduled())
	assert.False(t, model.TripAssignment{InstanceStatus: status(tourModel.TourInstanceCancelled)}.Scheduled())
	assert.False(t, model.TripAssignment{InstanceStatus: status(tourModel.TourInstanceOpen), InstanceGone: &deleted}.Scheduled())
}

func TestAttendance(t *testing.T) {
	present, total := model.Attendance([]model.CheckInDetail{{IsPresent: true}, {}, {IsPresent: true}})
	assert.Equal(t, 2, present)
	assert.Equal(t, 3, total)
}
