package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"tourdesk/config"
	"tourdesk/infras/jwt"
	jwtMocks "tourdesk/infras/jwt/mocks"
	"tourdesk/infras/otel/mocks"
	"tourdesk/internal/domains/auth/model/dto"
	"tourdesk/internal/domains/auth/service"
	userModel "tourdesk/internal/domains/user/model"
	"tourdesk/shared/constant"
	crudMocks "tourdesk/shared/crud/mocks"
	"tourdesk/shared/failure"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// "password" hashed with bcrypt.
const hashedPassword = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Email:    "sale@tourdesk.vn",
		Password: hashedPassword,
		Fullname: "Trần Thị Bán",
		Role:     userModel.RoleSale,
		IsActive: true,
		Metadata: gModel.NewMetadata("system", timezone.Now()),
	}
}

func newService(t *testing.T) (service.Auth, *crudMocks.MockRepository[userModel.User], *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockUserRepo := crudMocks.NewMockRepository[userModel.User](ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	return service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT), mockUserRepo, mockJWT
}

func TestAuthService_Login(t *testing.T) {
	pair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer"}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *crudMocks.MockRepository[userModel.User], mockJWT *jwtMocks.MockJWT)
		wantErr   error
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "Sale@TourDesk.vn", Password: "password"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User], mockJWT *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), "user-id-123", "sale@tourdesk.vn", constant.RoleSale).
					Return(pair, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "user not found",
			req:  dto.LoginRequest{Email: "nobody@tourdesk.vn", Password: "password"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User], _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "sale@tourdesk.vn", Password: "wrongpassword"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User], _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "sale@tourdesk.vn", Password: "password"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User], _ *jwtMocks.MockJWT) {
				inactive := validUser()
				inactive.IsActive = false

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr: service.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, mockJWT := newService(t)
			tt.setupMock(repo, mockJWT)

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", result.AccessToken)
			assert.Equal(t, "refresh-token", result.RefreshToken)
			assert.Equal(t, constant.RoleSale, result.User.RoleName)
			assert.NotNil(t, result.User.LastLogin)
		})
	}

	t.Run("token generation error", func(t *testing.T) {
		svc, repo, mockJWT := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
		mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "sale@tourdesk.vn", Password: "password"})
		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("reissues with the current role", func(t *testing.T) {
		svc, repo, mockJWT := newService(t)

		promoted := validUser()
		promoted.Role = userModel.RoleAdmin

		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "valid-refresh-token", jwt.RefreshToken).
			Return(&jwt.Claims{UserID: "user-id-123", Role: constant.RoleSale}, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(promoted, nil)
		mockJWT.EXPECT().
			GenerateTokenPair(gomock.Any(), "user-id-123", "sale@tourdesk.vn", constant.RoleAdmin).
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		result, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})
		require.NoError(t, err)
		assert.Equal(t, "new-access", result.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().ValidateToken(gomock.Any(), gomock.Any(), jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, repo, mockJWT := newService(t)

		inactive := validUser()
		inactive.IsActive = false

		mockJWT.EXPECT().ValidateToken(gomock.Any(), gomock.Any(), jwt.RefreshToken).Return(&jwt.Claims{UserID: "user-id-123"}, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "token"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(repo *crudMocks.MockRepository[userModel.User])
		wantCode  int
	}{
		{
			name: "successful password change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User]) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User]) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword123"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User]) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update password error",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(repo *crudMocks.MockRepository[userModel.User]) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.ChangePassword(context.Background(), tt.req, "user-id-123")

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)

	res, err := svc.Me(context.Background(), "user-id-123")
	require.NoError(t, err)
	assert.Equal(t, "sale@tourdesk.vn", res.Email)
	assert.Equal(t, constant.RoleSale, res.RoleName)
}
