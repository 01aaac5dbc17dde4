package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"tourdesk/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("booking").Start(context.Background(), "booking.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"booking.code":   "BK-20260101-ABC123",
		"booking.seats":  3,
		"booking.offset": int64(42),
		"booking.amount": 6580000.0,
		"booking.locked": true,
		"booking.window": 90 * time.Second,
	})
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("tour instance is full"))
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "BK-20260101-ABC123", attrs["booking.code"].AsString())
	assert.Equal(t, int64(3), attrs["booking.seats"].AsInt64())
	assert.Equal(t, int64(42), attrs["booking.offset"].AsInt64())
	assert.InDelta(t, 6580000.0, attrs["booking.amount"].AsFloat64(), 0.001)
	assert.True(t, attrs["booking.locked"].AsBool())
	assert.Equal(t, "1m30s", attrs["booking.window"].AsString())

	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "tour instance is full", ended[0].Status().Description)
}
