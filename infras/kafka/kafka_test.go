package kafka_test

import (
	"testing"
	"tourdesk/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	BookingID string `json:"booking_id"`
	Seats     int    `json:"seats"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: payload{BookingID: "booking-1", Seats: 3}}

	encoded, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), encoded.Key)
	assert.JSONEq(t, `{"booking_id":"booking-1","seats":3}`, string(encoded.Value))

	decoded, err := kafka.DecodeKafkaMessage[payload](encoded)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", decoded.Key)
	assert.Equal(t, payload{BookingID: "booking-1", Seats: 3}, decoded.Value)
}

func TestMessageHeaders(t *testing.T) {
	msg := kafka.Message{Key: "booking-2", Value: payload{BookingID: "booking-2"}, Headers: map[string]string{"event-type": "booking.deleted"}}

	encoded, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	require.Len(t, encoded.Headers, 1)
	assert.Equal(t, "event-type", encoded.Headers[0].Key)

	decoded, err := kafka.DecodeKafkaMessage[payload](encoded)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"event-type": "booking.deleted"}, decoded.Headers)
}

func TestDecodeKafkaMessageInvalid(t *testing.T) {
	_, err := kafka.DecodeKafkaMessage[payload](kafkaGo.Message{Value: []byte("not json")})
	assert.Error(t, err)
}

func TestToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}
