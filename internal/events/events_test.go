package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
	"tourdesk/config"
	"tourdesk/infras/kafka"
	kafkaMocks "tourdesk/infras/kafka/mocks"
	"tourdesk/infras/otel/mocks"
	"tourdesk/internal/events"
	cacheMocks "tourdesk/shared/cache/mocks"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func kafkaConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = enable
	cfg.Kafka.Topic.Booking = "tourdesk.booking"

	return cfg
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("sends keyed by booking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		done := make(chan struct{})

		client.EXPECT().
			SendMessages(gomock.Any(), "tourdesk.booking", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				defer close(done)

				require.Len(t, messages, 1)
				assert.Equal(t, "bk-1", messages[0].Key)
				assert.Equal(t, events.TypeBookingCreated, messages[0].Headers[events.HeaderEventType])

				event, ok := messages[0].Value.(events.BookingEvent)
				require.True(t, ok)
				assert.Equal(t, events.TypeBookingCreated, event.Type)

				return nil
			})

		publisher := events.NewPublisher(client, kafkaConfig(true), mocks.NewOtel())
		publisher.Publish(context.Background(), events.BookingEvent{Type: events.TypeBookingCreated, BookingID: "bk-1", Seats: 3})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("event was not published")
		}
	})

	t.Run("send failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

		publisher := events.NewPublisher(client, kafkaConfig(true), mocks.NewOtel())
		publisher.Publish(context.Background(), events.BookingEvent{Type: events.TypeBookingDeleted, BookingID: "bk-2"})

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("disabled kafka sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		publisher := events.NewPublisher(client, kafkaConfig(false), mocks.NewOtel())
		publisher.Publish(context.Background(), events.BookingEvent{Type: events.TypeBookingCreated, BookingID: "bk-3"})

		time.Sleep(10 * time.Millisecond)
	})
}

func TestInvalidator_Handle(t *testing.T) {
	t.Run("drops instance and booking caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Delete(gomock.Any(), "tour_instance:get:ti-1").Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), "booking:get:bk-1").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "tour_instance:get_all*").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "tour_instance:count*").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "booking:get_all*").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "passenger:get_all*").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "passenger:count*").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "payment:get_all*").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "payment:count*").Return(nil)

		value, err := json.Marshal(events.BookingEvent{Type: events.TypeBookingStatusChanged, BookingID: "bk-1", TourInstanceID: "ti-1"})
		require.NoError(t, err)

		events.NewInvalidator(mockCache).Handle(context.Background(), kafkaGo.Message{Key: []byte("bk-1"), Value: value})
	})

	t.Run("malformed payload is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		events.NewInvalidator(mockCache).Handle(context.Background(), kafkaGo.Message{Value: []byte("{not json")})
	})
}

func TestWorker_Run(t *testing.T) {
	t.Run("consumes the booking topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Delete(gomock.Any(), "booking:get:bk-9").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(8)

		value, err := json.Marshal(events.BookingEvent{Type: events.TypeBookingDeleted, BookingID: "bk-9"})
		require.NoError(t, err)

		cfg := kafkaConfig(true)
		cfg.Kafka.ConsumerGroup = "tourdesk"

		client.EXPECT().
			Consume(gomock.Any(), "tourdesk", "tourdesk.booking", gomock.Any()).
			Do(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
				handler(kafkaGo.Message{Key: []byte("bk-9"), Value: value})
			})

		events.NewWorker(client, events.NewInvalidator(mockCache), cfg).Run(context.Background())
	})

	t.Run("disabled kafka returns immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		events.NewWorker(client, events.NewInvalidator(cacheMocks.NewMockRedisCache(ctrl)), kafkaConfig(false)).Run(context.Background())
	})
}
