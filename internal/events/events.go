// Package events carries booking lifecycle events between API replicas over Kafka.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"
	"tourdesk/config"
	"tourdesk/infras/kafka"
	"tourdesk/infras/otel"
	"tourdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated       = "booking.created"
	TypeBookingUpdated       = "booking.updated"
	TypeBookingStatusChanged = "booking.status_changed"
	TypeBookingDeleted       = "booking.deleted"
	TypePaymentRecorded      = "payment.recorded"

	HeaderEventType = "event-type"
)

type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	TourInstanceID string    `json:"tour_instance_id"`
	Status         int       `json:"status"`
	Seats          int       `json:"seats"`
	Amount         float64   `json:"amount,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Publish sends the event in the background keyed by booking id. Failures
// are logged and never reach the caller.
func (p *publisherImpl) Publish(ctx context.Context, event BookingEvent) {
	if !p.cfg.Kafka.Enable {
		log.Debug().Str("type", event.Type).Msg("kafka disabled, event dropped")

		return
	}

	go func() {
		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()

		scope.SetAttribute("type", event.Type)

		err := p.client.SendMessages(c, p.cfg.Kafka.Topic.Booking, kafka.Message{
			Key:     event.BookingID,
			Value:   event,
			Headers: map[string]string{HeaderEventType: event.Type},
		})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("type", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}
