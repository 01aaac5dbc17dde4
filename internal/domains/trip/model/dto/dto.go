package dto

import (
	"time"
	"tourdesk/internal/domains/trip/model"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateTripAssignmentRequest struct {
	UserID         string `json:"user_id"          validate:"required,uuid"`
	TourInstanceID string `json:"tour_instance_id" validate:"required,uuid"`
	Note           string `json:"note"             validate:"omitempty"`
}

func (c *CreateTripAssignmentRequest) ToModel(user string) model.TripAssignment {
	return model.TripAssignment{
		ID:             uuid.NewString(),
		UserID:         c.UserID,
		TourInstanceID: c.TourInstanceID,
		Status:         model.AssignmentAssigned,
		Note:           c.Note,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateTripAssignmentRequest struct {
	UserID         string                  `db:"user_id"          json:"user_id"          validate:"omitempty,uuid"`
	TourInstanceID string                  `db:"tour_instance_id" json:"tour_instance_id" validate:"omitempty,uuid"`
	Status         *model.AssignmentStatus `db:"status"           json:"status"           validate:"omitempty,enum"`
	Note           *string                 `db:"note"             json:"note"`
}

type TripAssignmentResponse struct {
	ID             string                 `json:"id"`
	UserID         string                 `json:"user_id"`
	UserFullname   *string                `json:"user_fullname"`
	TourInstanceID string                 `json:"tour_instance_id"`
	InstanceCode   *string                `json:"instance_code"`
	DepartureDate  *string                `json:"departure_date"`
	ReturnDate     *string                `json:"return_date"`
	Status         model.AssignmentStatus `json:"status"`
	StatusName     string                 `json:"status_name"`
	Note           string                 `json:"note"`
	gDto.Metadata
}

func (r *TripAssignmentResponse) FromModel(model model.TripAssignment) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserFullname = model.UserFullname
	r.TourInstanceID = model.TourInstanceID
	r.InstanceCode = model.InstanceCode
	r.DepartureDate = timezone.FormatDate(model.DepartureDate)
	r.ReturnDate = timezone.FormatDate(model.ReturnDate)
	r.Status = model.Status
	r.StatusName = model.Status.String()
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

func NewTripAssignmentResponse(model model.TripAssignment) (res TripAssignmentResponse) {
	res.FromModel(model)

	return res
}

type CheckInDetailRequest struct {
	PassengerID string `json:"passenger_id" validate:"required,uuid"`
	IsPresent   bool   `json:"is_present"`
	Note        string `json:"note"         validate:"omitempty"`
}

type CreateTripCheckInRequest struct {
	TripAssignmentID string                 `json:"trip_assignment_id" validate:"required,uuid"`
	CheckinTime      string                 `json:"checkin_time"       validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Location         string                 `json:"location"           validate:"omitempty,max=255"`
	Note             string                 `json:"note"               validate:"omitempty"`
	Details          []CheckInDetailRequest `json:"details"            validate:"omitempty,dive"`
}

// ToModel stamps the check-in with now when no checkin_time is given.
func (c *CreateTripCheckInRequest) ToModel(user string) model.TripCheckIn {
	now := timezone.Now()

	checkinTime := now
	if parsed, err := time.Parse(constant.DateFormat, c.CheckinTime); err == nil {
		checkinTime = parsed
	}

	return model.TripCheckIn{
		ID:               uuid.NewString(),
		TripAssignmentID: c.TripAssignmentID,
		CheckinTime:      checkinTime,
		Location:         c.Location,
		Note:             c.Note,
		Metadata:         gModel.NewMetadata(user, now),
	}
}

type UpdateTripCheckInRequest struct {
	CheckinTime string  `db:"checkin_time" json:"checkin_time" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Location    *string `db:"location"     json:"location"     validate:"omitempty,max=255"`
	Note        *string `db:"note"         json:"note"`
}

type UpdateCheckInDetailRequest struct {
	IsPresent *bool   `db:"is_present" json:"is_present"`
	Note      *string `db:"note"       json:"note"`
}

type CheckInDetailResponse struct {
	ID            string  `json:"id"`
	PassengerID   string  `json:"passenger_id"`
	PassengerName *string `json:"passenger_name"`
	IsPresent     bool    `json:"is_present"`
	Note          string  `json:"note"`
}

func (r *CheckInDetailResponse) FromModel(model model.CheckInDetail) {
	r.ID = model.ID
	r.PassengerID = model.PassengerID
	r.PassengerName = model.PassengerName
	r.IsPresent = model.IsPresent
	r.Note = model.Note
}

type TripCheckInResponse struct {
	ID               string                  `json:"id"`
	TripAssignmentID string                  `json:"trip_assignment_id"`
	CheckinTime      time.Time               `json:"checkin_time"`
	Location         string                  `json:"location"`
	Note             string                  `json:"note"`
	Present          *int                    `json:"present,omitempty"`
	Total            *int                    `json:"total,omitempty"`
	Details          []CheckInDetailResponse `json:"details,omitempty"`
	gDto.Metadata
}

func (r *TripCheckInResponse) FromModel(model model.TripCheckIn) {
	r.ID = model.ID
	r.TripAssignmentID = model.TripAssignmentID
	r.CheckinTime = model.CheckinTime
	r.Location = model.Location
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

// WithDetails attaches the rows along with the present/total summary.
func (r *TripCheckInResponse) WithDetails(details []model.CheckInDetail) {
	present, total := model.Attendance(details)
	r.Present = &present
	r.Total = &total

	r.Details = make([]CheckInDetailResponse, len(details))
	for i, d := range details {
		r.Details[i].FromModel(d)
	}
}

func NewTripCheckInResponse(model model.TripCheckIn) (res TripCheckInResponse) {
	res.FromModel(model)

	return res
}
