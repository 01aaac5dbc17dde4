package model

import (
	"time"
	"tourdesk/shared/model"
)

const (
	TableTourTemplate = "tour_templates"
	TableTourInstance = "tour_instances"

	EntityTourTemplate = "tour_template"
	EntityTourInstance = "tour_instance"

	FieldID             = "id"
	FieldCode           = "code"
	FieldTitle          = "title"
	FieldDestinationID  = "destination_id"
	FieldThumbnail      = "thumbnail"
	FieldIsActive       = "is_active"
	FieldTourTemplateID = "tour_template_id"
	FieldDepartureDate  = "departure_date"
	FieldReturnDate     = "return_date"
	FieldLimit          = "slot_limit"
	FieldBookedCount    = "booked_count"
	FieldStatus         = "status"

	ThumbnailDirectory = "tour_template"
)

type TourInstanceStatus int

const (
	TourInstanceOpen TourInstanceStatus = iota
	TourInstanceRunning
	TourInstanceCompleted
	TourInstanceCancelled
)

var tourInstanceStatusNames = map[TourInstanceStatus]string{
	TourInstanceOpen:      "open",
	TourInstanceRunning:   "running",
	TourInstanceCompleted: "completed",
	TourInstanceCancelled: "cancelled",
}

func (s TourInstanceStatus) Valid() bool {
	_, ok := tourInstanceStatusNames[s]

	return ok
}

func (s TourInstanceStatus) String() string {
	return tourInstanceStatusNames[s]
}

type TourTemplate struct {
	ID              string   `db:"id"`
	DestinationID   *string  `db:"destination_id"`
	DestinationName *string  `db:"destination_name" table:"destinations" column:"name"`
	Code            string   `db:"code"`
	Title           string   `db:"title"`
	Description     string   `db:"description"`
	Thumbnail       string   `db:"thumbnail"`
	Day             int      `db:"day"`
	Night           int      `db:"night"`
	PriceAdult      *float64 `db:"price_adult"`
	PriceChildren   *float64 `db:"price_children"`
	IsActive        bool     `db:"is_active"`
	model.Metadata
}

func (TourTemplate) GetJoinQuery() string {
	return "LEFT JOIN destinations ON destinations.id = tour_templates.destination_id"
}

type TourInstance struct {
	ID                    string             `db:"id"`
	TourTemplateID        string             `db:"tour_template_id"`
	TemplateTitle         *string            `db:"template_title"          table:"tour_templates" column:"title"`
	TemplatePriceAdult    *float64           `db:"template_price_adult"    table:"tour_templates" column:"price_adult"`
	TemplatePriceChildren *float64           `db:"template_price_children" table:"tour_templates" column:"price_children"`
	Code                  string             `db:"code"`
	DepartureDate         time.Time          `db:"departure_date"`
	ReturnDate            time.Time          `db:"return_date"`
	PriceAdult            *float64           `db:"price_adult"`
	PriceChildren         *float64           `db:"price_children"`
	Limit                 *int               `db:"slot_limit"`
	BookedCount           int                `db:"booked_count"`
	Status                TourInstanceStatus `db:"status"`
	Note                  string             `db:"note"`
	model.Metadata
}

func (TourInstance) GetJoinQuery() string {
	return "LEFT JOIN tour_templates ON tour_templates.id = tour_instances.tour_template_id"
}

// AvailableSlots is nil when the instance has no seat limit.
func (t TourInstance) AvailableSlots() *int {
	if t.Limit == nil {
		return nil
	}

	available := max(*t.Limit-t.BookedCount, 0)

	return &available
}

func (t TourInstance) IsFull() bool {
	return t.Limit != nil && t.BookedCount >= *t.Limit
}

// HasCapacity reports whether seats more passengers fit under the limit.
func (t TourInstance) HasCapacity(seats int) bool {
	return t.Limit == nil || t.BookedCount+seats <= *t.Limit
}

func (t TourInstance) EffectivePriceAdult() *float64 {
	return effectivePrice(t.PriceAdult, t.TemplatePriceAdult)
}

func (t TourInstance) EffectivePriceChildren() *float64 {
	return effectivePrice(t.PriceChildren, t.TemplatePriceChildren)
}

// Quote prices a party. Children pay the adult price when no children price
// resolves. ok is false when no adult price resolves at all.
func (t TourInstance) Quote(adults, children int) (total float64, ok bool) {
	adult := t.EffectivePriceAdult()
	if adult == nil {
		return 0, false
	}

	child := t.EffectivePriceChildren()
	if child == nil {
		child = adult
	}

	return float64(adults)*(*adult) + float64(children)*(*child), true
}

// Overlaps reports whether the two inclusive date ranges share a day.
func (t TourInstance) Overlaps(other TourInstance) bool {
	return !t.DepartureDate.After(other.ReturnDate) && !other.DepartureDate.After(t.ReturnDate)
}

func effectivePrice(own, fallback *float64) *float64 {
	if own != nil {
		return own
	}

	return fallback
}
