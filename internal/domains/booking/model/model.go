package model

import (
	"cmp"
	"slices"
	"time"
	"tourdesk/shared/model"
)

const (
	TableBooking   = "bookings"
	TablePassenger = "passengers"
	TablePayment   = "payments"

	EntityBooking   = "booking"
	EntityPassenger = "passenger"
	EntityPayment   = "payment"

	FieldID             = "id"
	FieldCode           = "code"
	FieldTourInstanceID = "tour_instance_id"
	FieldBookingID      = "booking_id"
	FieldClientName     = "client_name"
	FieldClientPhone    = "client_phone"
	FieldCountAdult     = "count_adult"
	FieldCountChildren  = "count_children"
	FieldFinalPrice     = "final_price"
	FieldLeftPayment    = "left_payment"
	FieldStatus         = "status"
	FieldFullname       = "fullname"
	FieldGender         = "gender"
	FieldBirth          = "birth"
	FieldIDNumber       = "id_number"
	FieldPhone          = "phone"
	FieldNote           = "note"
	FieldReceipt        = "receipt"
	FieldAmount         = "amount"
	FieldType           = "type"
	FieldPosition       = "position"
	FieldMethod         = "method"
	FieldPaymentDate    = "payment_date"

	ReceiptDirectory = "payment"
)

type BookingStatus int

const (
	BookingPending BookingStatus = iota
	BookingConfirmed
	BookingCompleted
	BookingCancelled
)

var bookingStatusNames = map[BookingStatus]string{
	BookingPending:   "pending",
	BookingConfirmed: "confirmed",
	BookingCompleted: "completed",
	BookingCancelled: "cancelled",
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingStatusNames[s]

	return ok
}

func (s BookingStatus) String() string {
	return bookingStatusNames[s]
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Completed and cancelled bookings are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return slices.Contains(bookingTransitions[s], next)
}

type PassengerType int

const (
	PassengerAdult PassengerType = iota
	PassengerChild
	PassengerInfant
)

var passengerTypeNames = map[PassengerType]string{
	PassengerAdult:  "adult",
	PassengerChild:  "child",
	PassengerInfant: "infant",
}

func (t PassengerType) Valid() bool {
	_, ok := passengerTypeNames[t]

	return ok
}

func (t PassengerType) String() string {
	return passengerTypeNames[t]
}

// IsChild is true for children and infants, who share the children seats.
func (t PassengerType) IsChild() bool {
	return t == PassengerChild || t == PassengerInfant
}

// PassengerTypeFromAge: 12 and over adult, 5 to 11 child, under 5 infant.
func PassengerTypeFromAge(age int) PassengerType {
	switch {
	case age >= 12:
		return PassengerAdult
	case age >= 5:
		return PassengerChild
	default:
		return PassengerInfant
	}
}

type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderOther
)

func (g Gender) Valid() bool {
	return g >= GenderMale && g <= GenderOther
}

type PaymentMethod int

const (
	PaymentCash PaymentMethod = iota
	PaymentBankTransfer
	PaymentCard
	PaymentEWallet
)

var paymentMethodNames = map[PaymentMethod]string{
	PaymentCash:         "cash",
	PaymentBankTransfer: "bank_transfer",
	PaymentCard:         "card",
	PaymentEWallet:      "e_wallet",
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodNames[m]

	return ok
}

func (m PaymentMethod) String() string {
	return paymentMethodNames[m]
}

type PaymentStatus int

const (
	PaymentPending PaymentStatus = iota
	PaymentCompleted
	PaymentFailed
	PaymentRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending:   "pending",
	PaymentCompleted: "completed",
	PaymentFailed:    "failed",
	PaymentRefunded:  "refunded",
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusNames[s]

	return ok
}

func (s PaymentStatus) String() string {
	return paymentStatusNames[s]
}

type Booking struct {
	ID             string        `db:"id"`
	TourInstanceID string        `db:"tour_instance_id"`
	InstanceCode   *string       `db:"instance_code"  table:"tour_instances" column:"code"`
	DepartureDate  *time.Time    `db:"departure_date" table:"tour_instances" column:"departure_date"`
	ReturnDate     *time.Time    `db:"return_date"    table:"tour_instances" column:"return_date"`
	TourTitle      *string       `db:"tour_title"     table:"tour_templates" column:"title"`
	Code           string        `db:"code"`
	ClientName     string        `db:"client_name"`
	ClientPhone    string        `db:"client_phone"`
	ClientEmail    string        `db:"client_email"`
	ClientAddress  string        `db:"client_address"`
	CountAdult     int           `db:"count_adult"`
	CountChildren  int           `db:"count_children"`
	FinalPrice     float64       `db:"final_price"`
	LeftPayment    float64       `db:"left_payment"`
	Note           string        `db:"note"`
	Status         BookingStatus `db:"status"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return `LEFT JOIN tour_instances ON tour_instances.id = bookings.tour_instance_id
		LEFT JOIN tour_templates ON tour_templates.id = tour_instances.tour_template_id`
}

// Seats is the number of places the booking takes on its tour instance.
func (b Booking) Seats() int {
	return b.CountAdult + b.CountChildren
}

// HoldsSeats is false once the booking is cancelled.
func (b Booking) HoldsSeats() bool {
	return b.Status != BookingCancelled
}

type Passenger struct {
	ID          string        `db:"id"`
	BookingID   string        `db:"booking_id"`
	BookingCode *string       `db:"booking_code" table:"bookings" column:"code"`
	Fullname    string        `db:"fullname"`
	Gender      Gender        `db:"gender"`
	Birth       *time.Time    `db:"birth"`
	Type        PassengerType `db:"type"`
	IDNumber    string        `db:"id_number"`
	Phone       string        `db:"phone"`
	Note        string        `db:"note"`
	Position    int           `db:"position"`
	model.Metadata
}

func (Passenger) GetJoinQuery() string {
	return "JOIN bookings ON bookings.id = passengers.booking_id"
}

// Named reports whether the row carries passenger data worth keeping.
func (p Passenger) Named() bool {
	return p.Fullname != ""
}

type Payment struct {
	ID        string        `db:"id"`
	BookingID string        `db:"booking_id"`
	Amount    float64       `db:"amount"`
	Method    PaymentMethod `db:"method"`
	Status    PaymentStatus `db:"status"`
	Date      time.Time     `db:"payment_date"`
	Receipt   string        `db:"receipt"`
	Note      string        `db:"note"`
	model.Metadata
}

// PaidTotal sums the completed payments, skipping the one with exceptID.
func PaidTotal(payments []Payment, exceptID string) float64 {
	total := 0.0

	for _, p := range payments {
		if p.ID == exceptID || p.Status != PaymentCompleted {
			continue
		}

		total += p.Amount
	}

	return total
}

// BalancePassengers returns exactly adults+children rows, adults first.
// Existing adult rows fill adult slots and child or infant rows fill child
// slots, named rows first. Leftover named rows are relabelled into the
// other kind, taking free slots or displacing blank rows, before blank rows
// are appended. Rows missing from the result are the ones the caller should
// drop.
func BalancePassengers(existing []Passenger, adults, children int) []Passenger {
	adults, children = max(adults, 0), max(children, 0)

	var adultRows, childRows []Passenger

	for _, p := range sortByPosition(existing) {
		if p.Type.IsChild() {
			childRows = append(childRows, p)
		} else {
			adultRows = append(adultRows, p)
		}
	}

	adultRows, childRows = namedFirst(adultRows), namedFirst(childRows)

	adultSlots, spareAdults := split(adultRows, adults)
	childSlots, spareChildren := split(childRows, children)

	adultSlots = adopt(adultSlots, spareChildren, adults, PassengerAdult)
	childSlots = adopt(childSlots, spareAdults, children, PassengerChild)

	for len(adultSlots) < adults {
		adultSlots = append(adultSlots, Passenger{Type: PassengerAdult})
	}

	for len(childSlots) < children {
		childSlots = append(childSlots, Passenger{Type: PassengerChild})
	}

	result := append(adultSlots, childSlots...)
	for i := range result {
		result[i].Position = i
	}

	return result
}

func sortByPosition(rows []Passenger) []Passenger {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b Passenger) int {
		return cmp.Compare(a.Position, b.Position)
	})

	return sorted
}

func namedFirst(rows []Passenger) []Passenger {
	slices.SortStableFunc(rows, func(a, b Passenger) int {
		switch {
		case a.Named() == b.Named():
			return 0
		case a.Named():
			return -1
		default:
			return 1
		}
	})

	return rows
}

// adopt moves named spares into slots as kind. Blank rows in slots give way
// to them once slots is full.
func adopt(slots, spares []Passenger, n int, kind PassengerType) []Passenger {
	for _, p := range spares {
		if !p.Named() {
			break
		}

		p.Type = kind

		if len(slots) < n {
			slots = append(slots, p)

			continue
		}

		blank := slices.IndexFunc(slots, func(s Passenger) bool { return !s.Named() })
		if blank < 0 {
			break
		}

		slots[blank] = p
	}

	return slots
}

func split(rows []Passenger, n int) (kept, spare []Passenger) {
	if len(rows) <= n {
		return slices.Clone(rows), nil
	}

	return slices.Clone(rows[:n]), rows[n:]
}
