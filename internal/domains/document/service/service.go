package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"tourdesk/infras/otel"
	bookingModel "tourdesk/internal/domains/booking/model"
	bookingRepo "tourdesk/internal/domains/booking/repository"
	"tourdesk/internal/domains/document/model/dto"
	tourModel "tourdesk/internal/domains/tour/model"
	tourRepo "tourdesk/internal/domains/tour/repository"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Document interface {
	Manifest(ctx context.Context, instanceID string) (dto.File, error)
	Invoice(ctx context.Context, bookingID string) (dto.File, error)
}

type serviceImpl struct {
	instances  tourRepo.TourInstance
	bookings   bookingRepo.Booking
	passengers bookingRepo.Passenger
	payments   bookingRepo.Payment
	otel       otel.Otel
}

func New(
	instances tourRepo.TourInstance,
	bookings bookingRepo.Booking,
	passengers bookingRepo.Passenger,
	payments bookingRepo.Payment,
	otel otel.Otel,
) Document {
	return &serviceImpl{
		instances:  instances,
		bookings:   bookings,
		passengers: passengers,
		payments:   payments,
		otel:       otel,
	}
}

func (s *serviceImpl) instance(ctx context.Context, id string) (tourModel.TourInstance, error) {
	instance, err := s.instances.Get(ctx, shared.FilterByID(id, tourModel.FieldID, tourModel.TableTourInstance))
	if err != nil {
		log.Error().Err(err).Str("tour_instance_id", id).Msg("failed to get tour instance")

		return instance, err
	}

	if instance.ID == constant.Empty {
		return instance, failure.NotFound(tourModel.EntityTourInstance + " not found")
	}

	return instance, nil
}

func (s *serviceImpl) Manifest(ctx context.Context, instanceID string) (file dto.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".document.Manifest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	instance, err := s.instance(ctx, instanceID)
	if err != nil {
		return file, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldTourInstanceID, Operator: gDto.FilterOperatorEq, Value: instanceID, Table: bookingModel.TableBooking},
			gDto.Filter{Field: bookingModel.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: bookingModel.BookingCancelled, Table: bookingModel.TableBooking},
		},
	}

	passengers, err := s.passengers.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("tour_instance_id", instanceID).Msg("failed to list manifest passengers")

		return file, err
	}

	slices.SortStableFunc(passengers, func(a, b bookingModel.Passenger) int {
		return cmp.Or(cmp.Compare(deref(a.BookingCode), deref(b.BookingCode)), cmp.Compare(a.Position, b.Position))
	})

	content, err := renderManifest(instance, passengers, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("tour_instance_id", instanceID).Msg("failed to render manifest")

		return file, fmt.Errorf("failed to render manifest: %w", err)
	}

	return dto.NewPDF(fmt.Sprintf("MANIFEST_%s.pdf", safeFileName(instance.Code)), content), nil
}

func (s *serviceImpl) Invoice(ctx context.Context, bookingID string) (file dto.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".document.Invoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableBooking))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking")

		return file, err
	}

	if booking.ID == constant.Empty {
		return file, failure.NotFound(bookingModel.EntityBooking + " not found")
	}

	instance, err := s.instance(ctx, booking.TourInstanceID)
	if err != nil {
		return file, err
	}

	params := gDto.QueryParams{SortBy: bookingModel.FieldPaymentDate, SortDir: gDto.SortDirAsc}

	payments, err := s.payments.GetAll(ctx, params, shared.FilterByField(bookingModel.FieldBookingID, bookingID, bookingModel.TablePayment))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to list payments")

		return file, err
	}

	content, err := renderInvoice(booking, instance, payments, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to render invoice")

		return file, fmt.Errorf("failed to render invoice: %w", err)
	}

	return dto.NewPDF(fmt.Sprintf("INVOICE_%s.pdf", safeFileName(booking.Code)), content), nil
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}
