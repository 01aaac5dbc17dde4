package service

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"mime/multipart"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/infras/s3"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/repository"
	"tourdesk/internal/events"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// paymentTolerance absorbs float rounding when comparing against the final price.
const paymentTolerance = 0.005

type receiptUpload struct {
	file   multipart.File
	header *multipart.FileHeader
}

type Payment interface {
	Create(ctx context.Context, bookingID string, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.PaymentResponse], error)
	Get(ctx context.Context, bookingID, id string) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, bookingID, id string) error
	Delete(ctx context.Context, bookingID, id string) error
}

type paymentImpl struct {
	crud.Service[model.Payment, dto.PaymentResponse]
	repo      repository.Payment
	bookings  repository.Booking
	tx        postgres.Transactor
	publisher events.Publisher
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func NewPayment(
	repo repository.Payment,
	bookings repository.Booking,
	tx postgres.Transactor,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Payment {
	def := crud.Definition[model.Payment, dto.PaymentResponse]{
		Entity:     model.EntityPayment,
		Table:      model.TablePayment,
		FieldID:    model.FieldID,
		IDOf:       func(p model.Payment) string { return p.ID },
		ToResponse: dto.NewPaymentResponse,
	}

	return &paymentImpl{
		Service:   crud.New(def, repo, cfg, cache, otel),
		repo:      repo,
		bookings:  bookings,
		tx:        tx,
		publisher: publisher,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func (s *paymentImpl) find(ctx context.Context, bookingID, id string) (model.Payment, error) {
	payment, err := s.Find(ctx, id)
	if err != nil {
		return payment, err
	}

	if payment.BookingID != bookingID {
		return payment, failure.NotFound(model.EntityPayment + " not found")
	}

	return payment, nil
}

func (s *paymentImpl) uploadReceipt(ctx context.Context, req receiptUpload) (string, error) {
	if req.file == nil || req.header == nil {
		return constant.Empty, nil
	}

	url, err := s.s3.UploadFile(ctx, constant.Empty, model.ReceiptDirectory, req.file, req.header, shared.UploadFileName(req.header.Filename))
	if err != nil {
		log.Error().Err(err).Msg("failed to upload payment receipt")

		return constant.Empty, err
	}

	return url, nil
}

func (s *paymentImpl) removeReceipt(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		objectName := s.s3.GetObjectNameFromURL(constant.Empty, url)
		if err := s.s3.DeleteFile(c, constant.Empty, model.ReceiptDirectory, objectName); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete payment receipt")
		}
	}()
}

// settle recomputes left_payment from the stored payments, with next standing
// in for the payment being written (or nothing on delete).
func (s *paymentImpl) settle(ctx context.Context, tx *sqlx.Tx, user string, booking model.Booking, exceptID string, next *model.Payment) error {
	payments, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, shared.FilterByField(model.FieldBookingID, booking.ID, model.TablePayment))
	if err != nil {
		return err
	}

	paid := model.PaidTotal(payments, exceptID)
	if next != nil && next.Status == model.PaymentCompleted {
		paid += next.Amount

		if paid > booking.FinalPrice+paymentTolerance {
			return ErrOverpayment
		}
	}

	fields := map[string]any{
		model.FieldLeftPayment:   booking.FinalPrice - paid,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return s.bookings.UpdateTx(ctx, tx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableBooking))
}

func (s *paymentImpl) Create(ctx context.Context, bookingID string, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	receipt, err := s.uploadReceipt(ctx, receiptUpload{file: req.ReceiptFile, header: req.Receipt})
	if err != nil {
		return res, err
	}

	payment := req.ToModel(user, bookingID, receipt)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := lockBooking(ctx, s.bookings, tx, bookingID)
		if err != nil {
			return err
		}

		if !booking.HoldsSeats() {
			return ErrBookingCancelled
		}

		if err = s.settle(ctx, tx, user, booking, payment.ID, &payment); err != nil {
			return err
		}

		return s.repo.InsertTx(ctx, tx, payment)
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to record payment")
		s.removeReceipt(ctx, receipt)

		return res, err
	}

	s.afterWrite(ctx, payment)

	res.FromModel(payment)

	return res, nil
}

func (s *paymentImpl) Get(ctx context.Context, bookingID, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.Service.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if res.BookingID != bookingID {
		return dto.PaymentResponse{}, failure.NotFound(model.EntityPayment + " not found")
	}

	return res, nil
}

func (s *paymentImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, bookingID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, bookingID, id)
	if err != nil {
		return err
	}

	req.ReceiptURL, err = s.uploadReceipt(ctx, receiptUpload{file: req.ReceiptFile, header: req.Receipt})
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)
	if len(fields) < crud.MinUpdateFields {
		return crud.ErrNoFieldsToUpdate
	}

	next := req.Apply(current)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := lockBooking(ctx, s.bookings, tx, bookingID)
		if err != nil {
			return err
		}

		if !booking.HoldsSeats() {
			return ErrBookingCancelled
		}

		if err = s.settle(ctx, tx, user, booking, id, &next); err != nil {
			return err
		}

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TablePayment))
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update payment")
		s.removeReceipt(ctx, req.ReceiptURL)

		return err
	}

	if req.ReceiptURL != constant.Empty {
		s.removeReceipt(ctx, current.Receipt)
	}

	s.afterWrite(ctx, next)

	return nil
}

func (s *paymentImpl) Delete(ctx context.Context, bookingID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, bookingID, id)
	if err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := lockBooking(ctx, s.bookings, tx, bookingID)
		if err != nil {
			return err
		}

		if err = s.settle(ctx, tx, user, booking, id, nil); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TablePayment))
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete payment")

		return err
	}

	current.Amount = 0
	s.afterWrite(ctx, current)

	return nil
}

func (s *paymentImpl) afterWrite(ctx context.Context, payment model.Payment) {
	s.Invalidate(ctx, payment.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(model.EntityBooking))
	}()

	s.publisher.Publish(ctx, events.BookingEvent{
		Type:       events.TypePaymentRecorded,
		BookingID:  payment.BookingID,
		Amount:     payment.Amount,
		OccurredAt: timezone.Now(),
	})
}
