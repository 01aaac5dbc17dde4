package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"tourdesk/config"
	otelMocks "tourdesk/infras/otel/mocks"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	"tourdesk/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limited(t *testing.T, enable bool) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	return handler, cache
}

func request() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set(constant.RequestHeaderUserAgent, "sale-desk")

	return req
}

func TestRateLimit(t *testing.T) {
	t.Run("within window", func(t *testing.T) {
		handler, cache := limited(t, true)
		cache.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.7:sale-desk", 60).Return(int64(2), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		handler, cache := limited(t, true)
		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("redis failure lets the request through", func(t *testing.T) {
		handler, cache := limited(t, true)
		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	})

	t.Run("disabled", func(t *testing.T) {
		handler, _ := limited(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
