package model

import (
	"slices"
	"time"
	tourModel "tourdesk/internal/domains/tour/model"
	"tourdesk/shared/model"
)

const (
	TableTripAssignment = "trip_assignments"
	TableTripCheckIn    = "trip_check_ins"
	TableCheckInDetail  = "check_in_details"

	EntityTripAssignment = "trip_assignment"
	EntityTripCheckIn    = "trip_check_in"
	EntityCheckInDetail  = "check_in_detail"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldTourInstanceID   = "tour_instance_id"
	FieldStatus           = "status"
	FieldTripAssignmentID = "trip_assignment_id"
	FieldTripCheckInID    = "trip_check_in_id"
	FieldPassengerID      = "passenger_id"
	FieldIsPresent        = "is_present"
	FieldCheckinTime      = "checkin_time"
)

type AssignmentStatus int

const (
	AssignmentAssigned AssignmentStatus = iota
	AssignmentAccepted
	AssignmentCompleted
	AssignmentCancelled
)

var assignmentStatusNames = map[AssignmentStatus]string{
	AssignmentAssigned:  "assigned",
	AssignmentAccepted:  "accepted",
	AssignmentCompleted: "completed",
	AssignmentCancelled: "cancelled",
}

var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentAssigned: {AssignmentAccepted, AssignmentCancelled},
	AssignmentAccepted: {AssignmentCompleted, AssignmentCancelled},
}

func (s AssignmentStatus) Valid() bool {
	_, ok := assignmentStatusNames[s]

	return ok
}

func (s AssignmentStatus) String() string {
	return assignmentStatusNames[s]
}

func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	return slices.Contains(assignmentTransitions[s], next)
}

type TripAssignment struct {
	ID             string                        `db:"id"`
	UserID         string                        `db:"user_id"`
	UserFullname   *string                       `db:"user_fullname"       table:"users"          column:"fullname"`
	TourInstanceID string                        `db:"tour_instance_id"`
	InstanceCode   *string                       `db:"instance_code"       table:"tour_instances" column:"code"`
	DepartureDate  *time.Time                    `db:"departure_date"      table:"tour_instances" column:"departure_date"`
	ReturnDate     *time.Time                    `db:"return_date"         table:"tour_instances" column:"return_date"`
	InstanceStatus *tourModel.TourInstanceStatus `db:"instance_status"     table:"tour_instances" column:"status"`
	InstanceGone   *time.Time                    `db:"instance_deleted_at" table:"tour_instances" column:"deleted_at"`
	Status         AssignmentStatus              `db:"status"`
	Note           string                        `db:"note"`
	model.Metadata
}

func (TripAssignment) GetJoinQuery() string {
	return `LEFT JOIN users ON users.id = trip_assignments.user_id
		LEFT JOIN tour_instances ON tour_instances.id = trip_assignments.tour_instance_id`
}

// Scheduled reports whether the assignment's tour instance is still going to
// run, that is neither cancelled nor deleted.
func (a TripAssignment) Scheduled() bool {
	if a.InstanceGone != nil {
		return false
	}

	return a.InstanceStatus == nil || *a.InstanceStatus != tourModel.TourInstanceCancelled
}

// Overlaps reports whether the assignment's trip shares a day with [from, to].
func (a TripAssignment) Overlaps(from, to time.Time) bool {
	if a.DepartureDate == nil || a.ReturnDate == nil {
		return false
	}

	return !a.DepartureDate.After(to) && !from.After(*a.ReturnDate)
}

type TripCheckIn struct {
	ID               string    `db:"id"`
	TripAssignmentID string    `db:"trip_assignment_id"`
	CheckinTime      time.Time `db:"checkin_time"`
	Location         string    `db:"location"`
	Note             string    `db:"note"`
	model.Metadata
}

type CheckInDetail struct {
	ID            string  `db:"id"`
	TripCheckInID string  `db:"trip_check_in_id"`
	PassengerID   string  `db:"passenger_id"`
	PassengerName *string `db:"passenger_name" table:"passengers" column:"fullname"`
	IsPresent     bool    `db:"is_present"`
	Note          string  `db:"note"`
	model.Metadata
}

func (CheckInDetail) GetJoinQuery() string {
	return "LEFT JOIN passengers ON passengers.id = check_in_details.passenger_id"
}

// Attendance counts the present rows among details.
func Attendance(details []CheckInDetail) (present, total int) {
	for _, d := range details {
		if d.IsPresent {
			present++
		}
	}

	return present, len(details)
}
