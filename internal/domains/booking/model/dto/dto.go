package dto

import (
	"mime/multipart"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
)

type PassengerRequest struct {
	Fullname string              `json:"fullname"  validate:"omitempty,max=255"`
	Gender   model.Gender        `json:"gender"    validate:"enum"`
	Birth    string              `json:"birth"     validate:"omitempty,datetime=2006-01-02"`
	Type     model.PassengerType `json:"type"      validate:"enum"`
	IDNumber string              `json:"id_number" validate:"omitempty,max=64"`
	Phone    string              `json:"phone"     validate:"omitempty,max=32"`
	Note     string              `json:"note"      validate:"omitempty"`
}

func (p *PassengerRequest) ToModel(user, bookingID string) model.Passenger {
	return model.Passenger{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Fullname:  p.Fullname,
		Gender:    p.Gender,
		Birth:     timezone.ParseDatePtr(p.Birth),
		Type:      p.Type,
		IDNumber:  p.IDNumber,
		Phone:     p.Phone,
		Note:      p.Note,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type CreateBookingRequest struct {
	TourInstanceID string             `json:"tour_instance_id" validate:"required,uuid"`
	ClientName     string             `json:"client_name"      validate:"required,max=255"`
	ClientPhone    string             `json:"client_phone"     validate:"omitempty,max=32"`
	ClientEmail    string             `json:"client_email"     validate:"omitempty,email"`
	ClientAddress  string             `json:"client_address"   validate:"omitempty"`
	CountAdult     int                `json:"count_adult"      validate:"gte=1"`
	CountChildren  int                `json:"count_children"   validate:"gte=0"`
	FinalPrice     *float64           `json:"final_price"      validate:"omitempty,gte=0"`
	Note           string             `json:"note"             validate:"omitempty"`
	Passengers     []PassengerRequest `json:"passengers"       validate:"omitempty,dive"`
}

func (c *CreateBookingRequest) ToModel(user, code string, finalPrice float64) model.Booking {
	return model.Booking{
		ID:             uuid.NewString(),
		TourInstanceID: c.TourInstanceID,
		Code:           code,
		ClientName:     c.ClientName,
		ClientPhone:    c.ClientPhone,
		ClientEmail:    c.ClientEmail,
		ClientAddress:  c.ClientAddress,
		CountAdult:     c.CountAdult,
		CountChildren:  c.CountChildren,
		FinalPrice:     finalPrice,
		LeftPayment:    finalPrice,
		Note:           c.Note,
		Status:         model.BookingPending,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

// PassengerModels converts the submitted passengers, keeping their order.
func (c *CreateBookingRequest) PassengerModels(user, bookingID string) []model.Passenger {
	passengers := make([]model.Passenger, len(c.Passengers))
	for i, p := range c.Passengers {
		passengers[i] = p.ToModel(user, bookingID)
		passengers[i].Position = i
	}

	return passengers
}

type UpdateBookingRequest struct {
	ClientName    string   `db:"client_name"    json:"client_name"    validate:"omitempty,max=255"`
	ClientPhone   *string  `db:"client_phone"   json:"client_phone"   validate:"omitempty,max=32"`
	ClientEmail   *string  `db:"client_email"   json:"client_email"   validate:"omitempty,email"`
	ClientAddress *string  `db:"client_address" json:"client_address"`
	CountAdult    *int     `db:"count_adult"    json:"count_adult"    validate:"omitempty,gte=1"`
	CountChildren *int     `db:"count_children" json:"count_children" validate:"omitempty,gte=0"`
	FinalPrice    *float64 `db:"final_price"    json:"final_price"    validate:"omitempty,gte=0"`
	Note          *string  `db:"note"           json:"note"`
}

// Counts resolves the requested passenger counts against the current booking.
func (u *UpdateBookingRequest) Counts(current model.Booking) (adults, children int) {
	adults, children = current.CountAdult, current.CountChildren

	if u.CountAdult != nil {
		adults = *u.CountAdult
	}

	if u.CountChildren != nil {
		children = *u.CountChildren
	}

	return adults, children
}

type UpdateBookingStatusRequest struct {
	Status *model.BookingStatus `json:"status" validate:"required,enum"`
}

type BookingResponse struct {
	ID             string              `json:"id"`
	TourInstanceID string              `json:"tour_instance_id"`
	InstanceCode   *string             `json:"instance_code"`
	TourTitle      *string             `json:"tour_title"`
	DepartureDate  *string             `json:"departure_date"`
	ReturnDate     *string             `json:"return_date"`
	Code           string              `json:"code"`
	ClientName     string              `json:"client_name"`
	ClientPhone    string              `json:"client_phone"`
	ClientEmail    string              `json:"client_email"`
	ClientAddress  string              `json:"client_address"`
	CountAdult     int                 `json:"count_adult"`
	CountChildren  int                 `json:"count_children"`
	FinalPrice     float64             `json:"final_price"`
	PaidAmount     float64             `json:"paid_amount"`
	LeftPayment    float64             `json:"left_payment"`
	Note           string              `json:"note"`
	Status         model.BookingStatus `json:"status"`
	StatusName     string              `json:"status_name"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.TourInstanceID = model.TourInstanceID
	r.InstanceCode = model.InstanceCode
	r.TourTitle = model.TourTitle
	r.DepartureDate = timezone.FormatDate(model.DepartureDate)
	r.ReturnDate = timezone.FormatDate(model.ReturnDate)
	r.Code = model.Code
	r.ClientName = model.ClientName
	r.ClientPhone = model.ClientPhone
	r.ClientEmail = model.ClientEmail
	r.ClientAddress = model.ClientAddress
	r.CountAdult = model.CountAdult
	r.CountChildren = model.CountChildren
	r.FinalPrice = model.FinalPrice
	r.PaidAmount = model.FinalPrice - model.LeftPayment
	r.LeftPayment = model.LeftPayment
	r.Note = model.Note
	r.Status = model.Status
	r.StatusName = model.Status.String()
	r.Metadata.FromModel(model.Metadata)
}

func NewBookingResponse(model model.Booking) (res BookingResponse) {
	res.FromModel(model)

	return res
}

type UpdatePassengerRequest struct {
	Fullname string               `db:"fullname"  json:"fullname"  validate:"omitempty,max=255"`
	Gender   *model.Gender        `db:"gender"    json:"gender"    validate:"omitempty,enum"`
	Birth    string               `db:"birth"     json:"birth"     validate:"omitempty,datetime=2006-01-02"`
	Type     *model.PassengerType `db:"type"      json:"type"      validate:"omitempty,enum"`
	IDNumber *string              `db:"id_number" json:"id_number" validate:"omitempty,max=64"`
	Phone    *string              `db:"phone"     json:"phone"     validate:"omitempty,max=32"`
	Note     *string              `db:"note"      json:"note"`
}

type PassengerResponse struct {
	ID          string              `json:"id"`
	BookingID   string              `json:"booking_id"`
	BookingCode *string             `json:"booking_code"`
	Fullname    string              `json:"fullname"`
	Gender      model.Gender        `json:"gender"`
	Birth       *string             `json:"birth"`
	Type        model.PassengerType `json:"type"`
	TypeName    string              `json:"type_name"`
	IDNumber    string              `json:"id_number"`
	Phone       string              `json:"phone"`
	Note        string              `json:"note"`
	Position    int                 `json:"position"`
	gDto.Metadata
}

func (r *PassengerResponse) FromModel(model model.Passenger) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.BookingCode = model.BookingCode
	r.Fullname = model.Fullname
	r.Gender = model.Gender
	r.Birth = timezone.FormatDate(model.Birth)
	r.Type = model.Type
	r.TypeName = model.Type.String()
	r.IDNumber = model.IDNumber
	r.Phone = model.Phone
	r.Note = model.Note
	r.Position = model.Position
	r.Metadata.FromModel(model.Metadata)
}

func NewPassengerResponse(model model.Passenger) (res PassengerResponse) {
	res.FromModel(model)

	return res
}

type CreatePaymentRequest struct {
	Amount      float64               `json:"amount" validate:"required,gt=0"`
	Method      model.PaymentMethod   `json:"method" validate:"enum"`
	Status      model.PaymentStatus   `json:"status" validate:"enum"`
	Date        string                `json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Note        string                `json:"note"   validate:"omitempty"`
	Receipt     *multipart.FileHeader `json:"-"      swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	ReceiptFile multipart.File        `json:"-"`
}

func (c *CreatePaymentRequest) ToModel(user, bookingID, receipt string) model.Payment {
	now := timezone.Now()

	date := now
	if parsed := timezone.ParseDatePtr(c.Date); parsed != nil {
		date = *parsed
	}

	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Amount:    c.Amount,
		Method:    c.Method,
		Status:    c.Status,
		Date:      date,
		Receipt:   receipt,
		Note:      c.Note,
		Metadata:  gModel.NewMetadata(user, now),
	}
}

type UpdatePaymentRequest struct {
	Amount      *float64              `db:"amount"       json:"amount" validate:"omitempty,gt=0"`
	Method      *model.PaymentMethod  `db:"method"       json:"method" validate:"omitempty,enum"`
	Status      *model.PaymentStatus  `db:"status"       json:"status" validate:"omitempty,enum"`
	Date        string                `db:"payment_date" json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Note        *string               `db:"note"         json:"note"`
	ReceiptURL  string                `db:"receipt"      json:"-"`
	Receipt     *multipart.FileHeader `json:"-"          swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	ReceiptFile multipart.File        `json:"-"`
}

// Apply returns the payment as it will look once the update is stored.
func (u *UpdatePaymentRequest) Apply(current model.Payment) model.Payment {
	next := current

	if u.Amount != nil {
		next.Amount = *u.Amount
	}

	if u.Status != nil {
		next.Status = *u.Status
	}

	return next
}

type PaymentResponse struct {
	ID         string              `json:"id"`
	BookingID  string              `json:"booking_id"`
	Amount     float64             `json:"amount"`
	Method     model.PaymentMethod `json:"method"`
	MethodName string              `json:"method_name"`
	Status     model.PaymentStatus `json:"status"`
	StatusName string              `json:"status_name"`
	Date       string              `json:"date"`
	Receipt    string              `json:"receipt"`
	Note       string              `json:"note"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.MethodName = model.Method.String()
	r.Status = model.Status
	r.StatusName = model.Status.String()
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Receipt = model.Receipt
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

func NewPaymentResponse(model model.Payment) (res PaymentResponse) {
	res.FromModel(model)

	return res
}

type ImportPreviewRequest struct {
	File     *multipart.FileHeader `json:"-" swaggerignore:"true" validate:"required,maxfilesize=5"`
	FileData multipart.File        `json:"-"`
	Mapping  map[string]int        `json:"mapping"`
}

type ImportedPassenger struct {
	Row      int                 `json:"row"`
	Fullname string              `json:"fullname"`
	Age      *int                `json:"age"`
	Type     model.PassengerType `json:"type"`
	TypeName string              `json:"type_name"`
	IDNumber string              `json:"id_number"`
	Phone    string              `json:"phone"`
	Note     string              `json:"note"`
}

type ImportPreviewResponse struct {
	Headers       []string            `json:"headers"`
	Mapping       map[string]int      `json:"mapping"`
	Rows          []ImportedPassenger `json:"rows"`
	CountAdult    int                 `json:"count_adult"`
	CountChildren int                 `json:"count_children"`
}
