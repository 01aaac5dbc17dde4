package dto

import (
	"mime/multipart"
	"time"
	"tourdesk/internal/domains/tour/model"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateTourTemplateRequest struct {
	DestinationID string                `json:"destination_id" validate:"omitempty,uuid"`
	Code          string                `json:"code"           validate:"omitempty,max=32"`
	Title         string                `json:"title"          validate:"required,max=255"`
	Description   string                `json:"description"    validate:"omitempty"`
	Day           int                   `json:"day"            validate:"gte=0"`
	Night         int                   `json:"night"          validate:"gte=0"`
	PriceAdult    *float64              `json:"price_adult"    validate:"omitempty,gte=0"`
	PriceChildren *float64              `json:"price_children" validate:"omitempty,gte=0"`
	IsActive      *bool                 `json:"is_active"`
	Thumbnail     *multipart.FileHeader `json:"-"              swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ThumbnailFile multipart.File        `json:"-"`
}

func (c *CreateTourTemplateRequest) ToModel(user, thumbnail string) model.TourTemplate {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	var destinationID *string
	if c.DestinationID != constant.Empty {
		destinationID = &c.DestinationID
	}

	return model.TourTemplate{
		ID:            uuid.NewString(),
		DestinationID: destinationID,
		Code:          c.Code,
		Title:         c.Title,
		Description:   c.Description,
		Thumbnail:     thumbnail,
		Day:           c.Day,
		Night:         c.Night,
		PriceAdult:    c.PriceAdult,
		PriceChildren: c.PriceChildren,
		IsActive:      isActive,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateTourTemplateRequest carries the thumbnail outside of the updated
// columns; the service fills ThumbnailURL once the upload succeeds.
type UpdateTourTemplateRequest struct {
	DestinationID string                `db:"destination_id" json:"destination_id" validate:"omitempty,uuid"`
	Code          string                `db:"code"           json:"code"           validate:"omitempty,max=32"`
	Title         string                `db:"title"          json:"title"          validate:"omitempty,max=255"`
	Description   *string               `db:"description"    json:"description"`
	Day           *int                  `db:"day"            json:"day"            validate:"omitempty,gte=0"`
	Night         *int                  `db:"night"          json:"night"          validate:"omitempty,gte=0"`
	PriceAdult    *float64              `db:"price_adult"    json:"price_adult"    validate:"omitempty,gte=0"`
	PriceChildren *float64              `db:"price_children" json:"price_children" validate:"omitempty,gte=0"`
	IsActive      *bool                 `db:"is_active"      json:"is_active"`
	ThumbnailURL  string                `db:"thumbnail"      json:"-"`
	Thumbnail     *multipart.FileHeader `json:"-"            swaggerignore:"true"  validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ThumbnailFile multipart.File        `json:"-"`
}

type TourTemplateResponse struct {
	ID              string   `json:"id"`
	DestinationID   *string  `json:"destination_id"`
	DestinationName *string  `json:"destination_name"`
	Code            string   `json:"code"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Thumbnail       string   `json:"thumbnail"`
	Day             int      `json:"day"`
	Night           int      `json:"night"`
	PriceAdult      *float64 `json:"price_adult"`
	PriceChildren   *float64 `json:"price_children"`
	IsActive        bool     `json:"is_active"`
	gDto.Metadata
}

func (r *TourTemplateResponse) FromModel(model model.TourTemplate) {
	r.ID = model.ID
	r.DestinationID = model.DestinationID
	r.DestinationName = model.DestinationName
	r.Code = model.Code
	r.Title = model.Title
	r.Description = model.Description
	r.Thumbnail = model.Thumbnail
	r.Day = model.Day
	r.Night = model.Night
	r.PriceAdult = model.PriceAdult
	r.PriceChildren = model.PriceChildren
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

func NewTourTemplateResponse(model model.TourTemplate) (res TourTemplateResponse) {
	res.FromModel(model)

	return res
}

type CreateTourInstanceRequest struct {
	TourTemplateID string                    `json:"tour_template_id" validate:"required,uuid"`
	DepartureDate  string                    `json:"departure_date"   validate:"required,datetime=2006-01-02"`
	ReturnDate     string                    `json:"return_date"      validate:"required,datetime=2006-01-02"`
	PriceAdult     *float64                  `json:"price_adult"      validate:"omitempty,gte=0"`
	PriceChildren  *float64                  `json:"price_children"   validate:"omitempty,gte=0"`
	Limit          *int                      `json:"limit"            validate:"omitempty,gte=0"`
	Status         *model.TourInstanceStatus `json:"status"           validate:"omitempty,enum"`
	Note           string                    `json:"note"             validate:"omitempty"`
}

// ToModel expects dates already checked by Dates.
func (c *CreateTourInstanceRequest) ToModel(user, code string, departure, ret time.Time) model.TourInstance {
	status := model.TourInstanceOpen
	if c.Status != nil {
		status = *c.Status
	}

	return model.TourInstance{
		ID:             uuid.NewString(),
		TourTemplateID: c.TourTemplateID,
		Code:           code,
		DepartureDate:  departure,
		ReturnDate:     ret,
		PriceAdult:     c.PriceAdult,
		PriceChildren:  c.PriceChildren,
		Limit:          c.Limit,
		Status:         status,
		Note:           c.Note,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateTourInstanceRequest struct {
	TourTemplateID string                    `db:"tour_template_id" json:"tour_template_id" validate:"omitempty,uuid"`
	DepartureDate  string                    `db:"departure_date"   json:"departure_date"   validate:"omitempty,datetime=2006-01-02"`
	ReturnDate     string                    `db:"return_date"      json:"return_date"      validate:"omitempty,datetime=2006-01-02"`
	PriceAdult     *float64                  `db:"price_adult"      json:"price_adult"      validate:"omitempty,gte=0"`
	PriceChildren  *float64                  `db:"price_children"   json:"price_children"   validate:"omitempty,gte=0"`
	Limit          *int                      `db:"slot_limit"       json:"limit"            validate:"omitempty,gte=0"`
	Status         *model.TourInstanceStatus `db:"status"           json:"status"           validate:"omitempty,enum"`
	Note           *string                   `db:"note"             json:"note"`
}

type TourInstanceResponse struct {
	ID                     string                   `json:"id"`
	TourTemplateID         string                   `json:"tour_template_id"`
	TemplateTitle          *string                  `json:"template_title"`
	Code                   string                   `json:"code"`
	DepartureDate          string                   `json:"departure_date"`
	ReturnDate             string                   `json:"return_date"`
	PriceAdult             *float64                 `json:"price_adult"`
	PriceChildren          *float64                 `json:"price_children"`
	EffectivePriceAdult    *float64                 `json:"effective_price_adult"`
	EffectivePriceChildren *float64                 `json:"effective_price_children"`
	Limit                  *int                     `json:"limit"`
	BookedCount            int                      `json:"booked_count"`
	AvailableSlots         *int                     `json:"available_slots"`
	IsFull                 bool                     `json:"is_full"`
	Status                 model.TourInstanceStatus `json:"status"`
	StatusName             string                   `json:"status_name"`
	Note                   string                   `json:"note"`
	gDto.Metadata
}

func (r *TourInstanceResponse) FromModel(model model.TourInstance) {
	r.ID = model.ID
	r.TourTemplateID = model.TourTemplateID
	r.TemplateTitle = model.TemplateTitle
	r.Code = model.Code
	r.DepartureDate = model.DepartureDate.Format(constant.DateOnlyFormat)
	r.ReturnDate = model.ReturnDate.Format(constant.DateOnlyFormat)
	r.PriceAdult = model.PriceAdult
	r.PriceChildren = model.PriceChildren
	r.EffectivePriceAdult = model.EffectivePriceAdult()
	r.EffectivePriceChildren = model.EffectivePriceChildren()
	r.Limit = model.Limit
	r.BookedCount = model.BookedCount
	r.AvailableSlots = model.AvailableSlots()
	r.IsFull = model.IsFull()
	r.Status = model.Status
	r.StatusName = model.Status.String()
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

func NewTourInstanceResponse(model model.TourInstance) (res TourInstanceResponse) {
	res.FromModel(model)

	return res
}

// ParseDates parses a departure/return pair and requires the return not to
// precede the departure.
func ParseDates(departure, ret string) (time.Time, time.Time, error) {
	dep, err := timezone.ParseDate(departure)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	back, err := timezone.ParseDate(ret)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	if back.Before(dep) {
		return time.Time{}, time.Time{}, ErrReturnBeforeDeparture
	}

	return dep, back, nil
}
