package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"tourdesk/config"
	"tourdesk/transport/http/router"

	"github.com/stretchr/testify/assert"
)

type passthrough struct{}

func (passthrough) Tracing(next http.Handler) http.Handler { return next }

func (passthrough) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func (passthrough) Auth(next http.Handler) http.Handler { return next }

func (passthrough) APIKey(next http.Handler) http.Handler { return next }

func (passthrough) RBAC(next http.Handler) http.Handler { return next }

func newTestServer() *HTTP {
	cfg := &config.Config{}
	cfg.Server.Env = config.EnvProduction

	return New(cfg, router.New(router.DomainHandlers{}), passthrough{}, passthrough{})
}

func TestHTTP_Health(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name  string
		state ServerState
		want  int
	}{
		{name: "ready", state: ServerStateReady, want: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, want: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server.setup()
			server.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHTTP_UnknownRoute(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_SwaggerHiddenInProduction(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
