package service_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
	"time"
	"tourdesk/infras/otel/mocks"
	bookingModel "tourdesk/internal/domains/booking/model"
	bookingMocks "tourdesk/internal/domains/booking/repository/mocks"
	"tourdesk/internal/domains/document/service"
	tourModel "tourdesk/internal/domains/tour/model"
	tourMocks "tourdesk/internal/domains/tour/repository/mocks"
	"tourdesk/shared/constant"
	"tourdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	instances  *tourMocks.MockTourInstance
	bookings   *bookingMocks.MockBooking
	passengers *bookingMocks.MockPassenger
	payments   *bookingMocks.MockPayment
	svc        service.Document
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		instances:  tourMocks.NewMockTourInstance(ctrl),
		bookings:   bookingMocks.NewMockBooking(ctrl),
		passengers: bookingMocks.NewMockPassenger(ctrl),
		payments:   bookingMocks.NewMockPayment(ctrl),
	}
	f.svc = service.New(f.instances, f.bookings, f.passengers, f.payments, mocks.NewOtel())

	return f
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func instance() tourModel.TourInstance {
	return tourModel.TourInstance{
		ID:            "ti-1",
		Code:          "TI-260501-AB12",
		TemplateTitle: strPtr("Hạ Long - Đảo Tuần Châu"),
		DepartureDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
		PriceAdult:    floatPtr(2500000),
	}
}

func TestDocumentService_Manifest(t *testing.T) {
	t.Run("renders a pdf", func(t *testing.T) {
		f := newFixture(t)

		f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
		f.passengers.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Passenger{
			{ID: "p2", BookingCode: strPtr("BK-2"), Fullname: "Trần Thị Bình", Type: bookingModel.PassengerChild, Position: 0},
			{ID: "p1", BookingCode: strPtr("BK-1"), Fullname: "Nguyễn Văn Đức", Position: 0},
		}, nil)

		file, err := f.svc.Manifest(t.Context(), "ti-1")
		require.NoError(t, err)

		assert.Equal(t, "MANIFEST_TI-260501-AB12.pdf", file.Name)
		assert.Equal(t, constant.ContentTypePDF, file.ContentType)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
	})

	t.Run("unknown instance", func(t *testing.T) {
		f := newFixture(t)

		f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tourModel.TourInstance{}, nil)

		_, err := f.svc.Manifest(t.Context(), "nope")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)

		f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
		f.passengers.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.Manifest(t.Context(), "ti-1")
		assert.Error(t, err)
	})
}

func TestDocumentService_Invoice(t *testing.T) {
	t.Run("renders a pdf", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
			ID:             "bk-1",
			Code:           "BK-20260418-ABC123",
			TourInstanceID: "ti-1",
			ClientName:     "Phạm Minh Khôi",
			CountAdult:     2,
			CountChildren:  1,
			FinalPrice:     7000000,
			LeftPayment:    4000000,
		}, nil)
		f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
		f.payments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Payment{
			{ID: "pay-1", Amount: 3000000, Status: bookingModel.PaymentCompleted, Date: time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC)},
		}, nil)

		file, err := f.svc.Invoice(t.Context(), "bk-1")
		require.NoError(t, err)

		assert.Equal(t, "INVOICE_BK-20260418-ABC123.pdf", file.Name)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		_, err := f.svc.Invoice(t.Context(), "nope")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
