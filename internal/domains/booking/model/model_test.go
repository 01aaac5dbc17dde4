package model_test

import (
	"testing"
	"tourdesk/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func passenger(id, name string, kind model.PassengerType, position int) model.Passenger {
	return model.Passenger{ID: id, Fullname: name, Type: kind, Position: position}
}

func summary(rows []model.Passenger) []string {
	out := make([]string, len(rows))
	for i, p := range rows {
		out[i] = p.Type.String() + ":" + p.Fullname
	}

	return out
}

func TestBalancePassengers(t *testing.T) {
	tests := []struct {
		name     string
		existing []model.Passenger
		adults   int
		children int
		want     []string
	}{
		{
			name:     "empty booking gets blank rows",
			adults:   2,
			children: 1,
			want:     []string{"adult:", "adult:", "child:"},
		},
		{
			name: "exact fit keeps rows and orders adults first",
			existing: []model.Passenger{
				passenger("c1", "Bé Na", model.PassengerChild, 0),
				passenger("a1", "Nguyễn Văn An", model.PassengerAdult, 1),
			},
			adults:   1,
			children: 1,
			want:     []string{"adult:Nguyễn Văn An", "child:Bé Na"},
		},
		{
			name: "infants keep their type in child slots",
			existing: []model.Passenger{
				passenger("a1", "Trần Thị Bình", model.PassengerAdult, 0),
				passenger("i1", "Bé Bông", model.PassengerInfant, 1),
			},
			adults:   1,
			children: 1,
			want:     []string{"adult:Trần Thị Bình", "infant:Bé Bông"},
		},
		{
			name: "leftover named adult fills a child slot before blanks",
			existing: []model.Passenger{
				passenger("a1", "An", model.PassengerAdult, 0),
				passenger("a2", "Bình", model.PassengerAdult, 1),
			},
			adults:   1,
			children: 2,
			want:     []string{"adult:An", "child:Bình", "child:"},
		},
		{
			name: "leftover named child becomes an adult",
			existing: []model.Passenger{
				passenger("c1", "Cúc", model.PassengerChild, 0),
				passenger("c2", "Dũng", model.PassengerChild, 1),
			},
			adults:   1,
			children: 1,
			want:     []string{"adult:Dũng", "child:Cúc"},
		},
		{
			name: "shrinking drops blank rows before named ones",
			existing: []model.Passenger{
				passenger("a1", "", model.PassengerAdult, 0),
				passenger("a2", "Hải", model.PassengerAdult, 1),
				passenger("a3", "", model.PassengerAdult, 2),
			},
			adults: 1,
			want:   []string{"adult:Hải"},
		},
		{
			name: "named child displaces a blank adult when shrinking",
			existing: []model.Passenger{
				passenger("a1", "", model.PassengerAdult, 0),
				passenger("a2", "", model.PassengerAdult, 1),
				passenger("c1", "Nguyen Van C", model.PassengerChild, 2),
			},
			adults: 1,
			want:   []string{"adult:Nguyen Van C"},
		},
		{
			name: "named adult displaces a blank child",
			existing: []model.Passenger{
				passenger("a1", "Phúc", model.PassengerAdult, 0),
				passenger("a2", "Quang", model.PassengerAdult, 1),
				passenger("c1", "", model.PassengerChild, 2),
			},
			adults:   1,
			children: 1,
			want:     []string{"adult:Phúc", "child:Quang"},
		},
		{
			name: "blank leftovers are not relabelled",
			existing: []model.Passenger{
				passenger("a1", "Lan", model.PassengerAdult, 0),
				passenger("a2", "", model.PassengerAdult, 1),
			},
			adults:   1,
			children: 1,
			want:     []string{"adult:Lan", "child:"},
		},
		{
			name:     "negative targets are treated as zero",
			existing: []model.Passenger{passenger("a1", "Minh", model.PassengerAdult, 0)},
			adults:   -1,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.BalancePassengers(tt.existing, tt.adults, tt.children)

			assert.Equal(t, tt.want, summary(got))

			for i, p := range got {
				assert.Equal(t, i, p.Position)
			}
		})
	}
}

func TestBalancePassengers_KeepsIDs(t *testing.T) {
	existing := []model.Passenger{
		passenger("a1", "An", model.PassengerAdult, 0),
		passenger("a2", "Bình", model.PassengerAdult, 1),
	}

	got := model.BalancePassengers(existing, 1, 1)

	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
	assert.Equal(t, model.PassengerChild, got[1].Type)
	assert.Equal(t, model.PassengerAdult, existing[1].Type)

	shrunk := model.BalancePassengers([]model.Passenger{
		passenger("a1", "", model.PassengerAdult, 0),
		passenger("c1", "Chi", model.PassengerChild, 1),
	}, 1, 0)

	assert.Len(t, shrunk, 1)
	assert.Equal(t, "c1", shrunk[0].ID)
	assert.Equal(t, model.PassengerAdult, shrunk[0].Type)
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, model.BookingPending.CanTransitionTo(model.BookingConfirmed))
	assert.True(t, model.BookingPending.CanTransitionTo(model.BookingCancelled))
	assert.False(t, model.BookingPending.CanTransitionTo(model.BookingCompleted))
	assert.True(t, model.BookingConfirmed.CanTransitionTo(model.BookingCompleted))
	assert.True(t, model.BookingConfirmed.CanTransitionTo(model.BookingCancelled))
	assert.False(t, model.BookingCompleted.CanTransitionTo(model.BookingCancelled))
	assert.False(t, model.BookingCancelled.CanTransitionTo(model.BookingPending))
	assert.False(t, model.BookingPending.CanTransitionTo(model.BookingPending))
}

func TestPassengerTypeFromAge(t *testing.T) {
	assert.Equal(t, model.PassengerAdult, model.PassengerTypeFromAge(12))
	assert.Equal(t, model.PassengerAdult, model.PassengerTypeFromAge(70))
	assert.Equal(t, model.PassengerChild, model.PassengerTypeFromAge(11))
	assert.Equal(t, model.PassengerChild, model.PassengerTypeFromAge(5))
	assert.Equal(t, model.PassengerInfant, model.PassengerTypeFromAge(4))
	assert.Equal(t, model.PassengerInfant, model.PassengerTypeFromAge(0))
}

func TestPaidTotal(t *testing.T) {
	payments := []model.Payment{
		{ID: "p1", Amount: 1_000_000, Status: model.PaymentCompleted},
		{ID: "p2", Amount: 500_000, Status: model.PaymentPending},
		{ID: "p3", Amount: 250_000, Status: model.PaymentCompleted},
		{ID: "p4", Amount: 300_000, Status: model.PaymentRefunded},
	}

	assert.Equal(t, 1_250_000.0, model.PaidTotal(payments, ""))
	assert.Equal(t, 250_000.0, model.PaidTotal(payments, "p1"))
}

func TestBooking_Seats(t *testing.T) {
	b := model.Booking{CountAdult: 2, CountChildren: 3}

	assert.Equal(t, 5, b.Seats())
	assert.True(t, b.HoldsSeats())

	b.Status = model.BookingCancelled
	assert.False(t, b.HoldsSeats())
}
