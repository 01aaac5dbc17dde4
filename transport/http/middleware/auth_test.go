package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"tourdesk/config"
	"tourdesk/infras/jwt"
	jwtMocks "tourdesk/infras/jwt/mocks"
	otelMocks "tourdesk/infras/otel/mocks"
	"tourdesk/permissions"
	"tourdesk/shared/constant"
	"tourdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "internal-key"

func newRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = testAPIKey

	auth := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), permissions.Get(), cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Use(auth.APIKey, auth.Auth, auth.RBAC)
	router.Post("/v1/auth/login", ok)
	router.Get("/v1/users/{id}", ok)
	router.Delete("/v1/users/{id}", ok)
	router.Get("/v1/trip-check-ins/{id}", ok)

	return router
}

func bearer(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

	return req
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name     string
		request  func() *http.Request
		role     string
		wantCode int
	}{
		{
			name:     "public route skips auth",
			request:  func() *http.Request { return httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil) },
			wantCode: http.StatusOK,
		},
		{
			name:     "missing header",
			request:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/v1/users/u1", nil) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "admin reads users",
			request:  func() *http.Request { return bearer(http.MethodGet, "/v1/users/u1") },
			role:     constant.RoleAdmin,
			wantCode: http.StatusOK,
		},
		{
			name:     "admin may not delete users",
			request:  func() *http.Request { return bearer(http.MethodDelete, "/v1/users/u1") },
			role:     constant.RoleAdmin,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "guide is kept out of user admin",
			request:  func() *http.Request { return bearer(http.MethodGet, "/v1/users/u1") },
			role:     constant.RoleGuide,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "guide reads check-ins",
			request:  func() *http.Request { return bearer(http.MethodGet, "/v1/trip-check-ins/c1") },
			role:     constant.RoleGuide,
			wantCode: http.StatusOK,
		},
		{
			name: "internal api key bypasses auth",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodDelete, "/v1/users/u1", nil)
				req.Header.Set(constant.RequestHeaderAPIKey, testAPIKey)

				return req
			},
			wantCode: http.StatusOK,
		},
		{
			name: "wrong api key",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/users/u1", nil)
				req.Header.Set(constant.RequestHeaderAPIKey, "nope")

				return req
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)

			if tt.role != "" {
				jwtService.EXPECT().
					ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u1", Email: "staff@tourdesk.vn", Role: tt.role}, nil)
			}

			rec := httptest.NewRecorder()
			newRouter(t, jwtService).ServeHTTP(rec, tt.request())

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK && tt.role != "" {
				assert.Equal(t, tt.role, rec.Header().Get("X-Role"))
			}
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	jwtService.EXPECT().
		ValidateToken(gomock.Any(), "token", jwt.AccessToken).
		DoAndReturn(func(context.Context, string, jwt.TokenType) (*jwt.Claims, error) {
			return nil, jwt.ErrExpiredToken
		})

	rec := httptest.NewRecorder()
	newRouter(t, jwtService).ServeHTTP(rec, bearer(http.MethodGet, "/v1/users/u1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired")
}
