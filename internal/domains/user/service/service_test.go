package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"testing"
	"time"
	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	s3Mocks "tourdesk/infras/s3/mocks"
	"tourdesk/internal/domains/user/model"
	"tourdesk/internal/domains/user/model/dto"
	"tourdesk/internal/domains/user/service"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	crudMocks "tourdesk/shared/crud/mocks"
	"tourdesk/shared/failure"
	"tourdesk/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
}

type fixture struct {
	users   *crudMocks.MockRepository[model.User]
	details *crudMocks.MockRepository[model.UserDetail]
	s3      *s3Mocks.MockS3
	svc     service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	cacheMocks.Miss(mockCache)

	f := fixture{
		users:   crudMocks.NewMockRepository[model.User](ctrl),
		details: crudMocks.NewMockRepository[model.UserDetail](ctrl),
		s3:      s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.users, f.details, &config.Config{}, mockCache, mocks.NewOtel(), f.s3)

	return f
}

func TestUserService_Create(t *testing.T) {
	t.Run("hashes the password and lowercases the email", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.users.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) error {
				assert.Equal(t, "guide@tourdesk.vn", u.Email)
				assert.Equal(t, model.RoleGuide, u.Role)
				assert.True(t, u.IsActive)
				assert.NoError(t, password.Verify("secret123", u.Password))

				return nil
			})

		err := f.svc.Create(userContext(), dto.CreateUserRequest{
			Email:    " Guide@TourDesk.vn ",
			Password: "secret123",
			Fullname: "Nguyễn Văn Hướng",
			Role:     model.RoleGuide,
		})

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Create(userContext(), dto.CreateUserRequest{Email: "a@b.vn", Password: "secret123", Fullname: "A"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	f := newFixture(t)

	active := false

	f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.users.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, &active, fields[model.FieldIsActive])

			hashed, _ := fields[model.FieldPassword].(string)
			assert.NoError(t, password.Verify("newsecret1", hashed))

			return nil
		})

	err := f.svc.Update(userContext(), dto.UpdateUserRequest{Password: "newsecret1", IsActive: &active}, "user-1")

	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, err)
}

func TestUserService_Delete(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Delete(userContext(), "admin-id")
	assert.ErrorIs(t, err, service.ErrDeleteSelf)
}

func TestUserService_GetDetail(t *testing.T) {
	t.Run("user without detail", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
		f.details.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.UserDetail{}, nil)

		res, err := f.svc.GetDetail(userContext(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", res.UserID)
		assert.Empty(t, res.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.GetDetail(userContext(), "user-9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_UpsertDetail(t *testing.T) {
	t.Run("inserts the first detail", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
		f.details.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.UserDetail{}, nil)
		f.details.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d model.UserDetail) error {
				assert.Equal(t, "user-1", d.UserID)
				assert.Equal(t, "0912345678", d.Phone)
				require.NotNil(t, d.Birth)
				assert.Equal(t, 1990, d.Birth.Year())

				return nil
			})

		err := f.svc.UpsertDetail(userContext(), dto.UserDetailRequest{Phone: "0912345678", Birth: "1990-04-30"}, "user-1")
		assert.NoError(t, err)
	})

	t.Run("replaces the avatar", func(t *testing.T) {
		f := newFixture(t)

		oldURL := "https://cdn.example.com/user/old.png"
		newURL := "https://cdn.example.com/user/new.png"

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
		f.details.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.UserDetail{ID: "det-1", UserID: "user-1", Avatar: oldURL}, nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), constant.Empty, model.AvatarDirectory, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(newURL, nil)
		f.details.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, newURL, fields["avatar"])

				return nil
			})
		f.s3.EXPECT().GetObjectNameFromURL(constant.Empty, oldURL).Return("old.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), constant.Empty, model.AvatarDirectory, "old.png").Return(nil)

		err := f.svc.UpsertDetail(userContext(), dto.UserDetailRequest{
			Avatar:     &multipart.FileHeader{Filename: "new.png"},
			AvatarFile: memFile{bytes.NewReader([]byte("png"))},
		}, "user-1")

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})
}
