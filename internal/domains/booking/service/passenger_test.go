package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/service"
	"tourdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingRows() []model.Passenger {
	return []model.Passenger{
		{ID: "p1", BookingID: "bk-1", Fullname: "Lê Văn C", Type: model.PassengerAdult, Position: 0},
		{ID: "p2", BookingID: "bk-1", Type: model.PassengerAdult, Position: 1},
		{ID: "p3", BookingID: "bk-1", Type: model.PassengerChild, Position: 2},
	}
}

func TestPassengerService_Create(t *testing.T) {
	t.Run("fills the first blank slot of the same kind", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(currentBooking(), nil)
		f.passengers.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingRows(), nil)
		f.passengers.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, "Bé D", fields[model.FieldFullname])
				assert.Equal(t, model.PassengerInfant, fields[model.FieldType])

				return nil
			})

		res, err := f.passenger.Create(userContext(), "bk-1", dto.PassengerRequest{Fullname: "Bé D", Type: model.PassengerInfant})

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "p3", res.ID)
		assert.Equal(t, 2, res.Position)
	})

	t.Run("no blank slot left", func(t *testing.T) {
		f := newFixture(t)

		rows := bookingRows()
		rows[1].Fullname = "Trần E"

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(currentBooking(), nil)
		f.passengers.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)

		_, err := f.passenger.Create(userContext(), "bk-1", dto.PassengerRequest{Fullname: "F", Type: model.PassengerAdult})
		assert.ErrorIs(t, err, service.ErrPassengerSeatsFull)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		f := newFixture(t)

		cancelled := currentBooking()
		cancelled.Status = model.BookingCancelled

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := f.passenger.Create(userContext(), "bk-1", dto.PassengerRequest{Fullname: "F"})
		assert.ErrorIs(t, err, service.ErrBookingCancelled)
	})
}

func TestPassengerService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.passengers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingRows()[0], nil)
		f.passengers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.passengers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.passenger.Update(userContext(), dto.UpdatePassengerRequest{Fullname: "Lê Văn Cường"}, "bk-1", "p1")

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})

	t.Run("adult to child goes through the booking counts", func(t *testing.T) {
		f := newFixture(t)

		child := model.PassengerChild

		f.passengers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingRows()[0], nil)

		err := f.passenger.Update(userContext(), dto.UpdatePassengerRequest{Type: &child}, "bk-1", "p1")
		assert.ErrorIs(t, err, service.ErrPassengerKind)
	})

	t.Run("child to infant is allowed", func(t *testing.T) {
		f := newFixture(t)

		infant := model.PassengerInfant

		f.passengers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingRows()[2], nil)
		f.passengers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.passengers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.passenger.Update(userContext(), dto.UpdatePassengerRequest{Type: &infant}, "bk-1", "p3")

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})

	t.Run("passenger of another booking", func(t *testing.T) {
		f := newFixture(t)

		f.passengers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingRows()[0], nil)

		err := f.passenger.Update(userContext(), dto.UpdatePassengerRequest{Fullname: "x"}, "bk-2", "p1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPassengerService_Delete(t *testing.T) {
	f := newFixture(t)

	f.passengers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingRows()[0], nil)
	f.passengers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.passengers.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, "", fields[model.FieldFullname])
			assert.Contains(t, fields, model.FieldBirth)
			assert.Nil(t, fields[model.FieldBirth])

			return nil
		})

	err := f.passenger.Delete(userContext(), "bk-1", "p1")

	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, err)
}
