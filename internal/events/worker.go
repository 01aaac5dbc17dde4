package events

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Worker struct {
	client      kafka.Client
	invalidator *Invalidator
	cfg         *config.Config
}

func NewWorker(client kafka.Client, invalidator *Invalidator, cfg *config.Config) *Worker {
	return &Worker{
		client:      client,
		invalidator: invalidator,
		cfg:         cfg,
	}
}

// Run consumes the booking topic until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if !w.cfg.Kafka.Enable {
		log.Warn().Msg("Kafka is disabled, booking worker has nothing to consume")

		return
	}

	topic := w.cfg.Kafka.Topic.Booking

	log.Info().Str("topic", topic).Str("group", w.cfg.Kafka.ConsumerGroup).Msg("Starting booking event worker.")

	w.client.Consume(ctx, w.cfg.Kafka.ConsumerGroup, topic, func(message kafkaGo.Message) {
		w.invalidator.Handle(ctx, message)
	})
}
