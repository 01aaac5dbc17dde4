package events

import (
	"context"
	"tourdesk/infras/kafka"
	"tourdesk/shared"
	"tourdesk/shared/cache"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Cache prefixes owned by the booking and tour services.
const (
	cacheTourInstance = "tour_instance"
	cacheBooking      = "booking"
	cachePassenger    = "passenger"
	cachePayment      = "payment"
)

// Invalidator drops the cached reads a booking event makes stale, so replicas
// that did not serve the write stop reporting old capacity.
type Invalidator struct {
	cache cache.RedisCache
}

func NewInvalidator(cache cache.RedisCache) *Invalidator {
	return &Invalidator{cache: cache}
}

func (i *Invalidator) Handle(ctx context.Context, message kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[BookingEvent](message)
	if err != nil {
		log.Error().Err(err).Msg("skipping malformed booking event")

		return
	}

	event, _ := decoded.Value.(BookingEvent)

	keys := []string{}
	if event.TourInstanceID != "" {
		keys = append(keys, shared.BuildCacheKey(cacheTourInstance, "get", event.TourInstanceID))
	}

	if event.BookingID != "" {
		keys = append(keys, shared.BuildCacheKey(cacheBooking, "get", event.BookingID))
	}

	for _, key := range keys {
		if err := i.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to delete cache")
		}
	}

	for _, prefix := range []string{cacheTourInstance, cacheBooking, cachePassenger, cachePayment} {
		shared.InvalidateCaches(ctx, i.cache, shared.BuildCacheKey(prefix, "get_all"))
		shared.InvalidateCaches(ctx, i.cache, shared.BuildCacheKey(prefix, "count"))
	}

	log.Debug().Str("type", event.Type).Str("booking_id", event.BookingID).Msg("booking event applied")
}
