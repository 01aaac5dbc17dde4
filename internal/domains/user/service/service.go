package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/s3"
	"tourdesk/internal/domains/user/model"
	"tourdesk/internal/domains/user/model/dto"
	"tourdesk/internal/domains/user/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/password"

	"github.com/rs/zerolog/log"
)

const errHashPassword = "failed to hash password"

var (
	ErrEmailTaken = failure.Conflict("email already registered")
	ErrDeleteSelf = failure.BadRequestFromString("you cannot delete your own account")
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.UserResponse], error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Delete(ctx context.Context, id string) error
	GetDetail(ctx context.Context, userID string) (dto.UserDetailResponse, error)
	UpsertDetail(ctx context.Context, req dto.UserDetailRequest, userID string) error
}

type serviceImpl struct {
	crud.Service[model.User, dto.UserResponse]
	repo    repository.User
	details repository.UserDetail
	s3      s3.S3
	otel    otel.Otel
}

func New(repo repository.User, details repository.UserDetail, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) User {
	def := crud.Definition[model.User, dto.UserResponse]{
		Entity:     model.EntityUser,
		Table:      model.TableUser,
		FieldID:    model.FieldID,
		IDOf:       func(u model.User) string { return u.ID },
		ToResponse: dto.NewUserResponse,
	}

	return &serviceImpl{
		Service: crud.New(def, repo, cfg, cache, otel),
		repo:    repo,
		details: details,
		s3:      s3,
		otel:    otel,
	}
}

func (s *serviceImpl) emailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	filter := shared.FilterByField(model.FieldEmail, email, model.TableUser)
	if exceptID != constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableUser,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return false, fmt.Errorf("failed to check if user exists: %w", err)
	}

	return exist, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.emailTaken(ctx, req.Email, constant.Empty)
	if err != nil {
		return err
	}

	if taken {
		return ErrEmailTaken
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg(errHashPassword)

		return fmt.Errorf("%s: %w", errHashPassword, err)
	}

	return s.Service.Create(ctx, req.ToModel(user, hashedPassword))
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Email != constant.Empty {
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		taken, err := s.emailTaken(ctx, req.Email, id)
		if err != nil {
			return err
		}

		if taken {
			return ErrEmailTaken
		}
	}

	if req.Password != constant.Empty {
		req.Password, err = password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg(errHashPassword)

			return fmt.Errorf("%s: %w", errHashPassword, err)
		}
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user == id {
		return ErrDeleteSelf
	}

	return s.Service.Delete(ctx, id)
}

func (s *serviceImpl) findDetail(ctx context.Context, userID string) (model.UserDetail, error) {
	detail, err := s.details.Get(ctx, shared.FilterByField(model.FieldUserID, userID, model.TableUserDetail))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user detail")

		return detail, fmt.Errorf("failed to get user detail: %w", err)
	}

	return detail, nil
}

func (s *serviceImpl) GetDetail(ctx context.Context, userID string) (res dto.UserDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetDetail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.Find(ctx, userID); err != nil {
		return res, err
	}

	detail, err := s.findDetail(ctx, userID)
	if err != nil {
		return res, err
	}

	if detail.ID == constant.Empty {
		res.UserID = userID

		return res, nil
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) UpsertDetail(ctx context.Context, req dto.UserDetailRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpsertDetail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.Find(ctx, userID); err != nil {
		return err
	}

	current, err := s.findDetail(ctx, userID)
	if err != nil {
		return err
	}

	if req.AvatarFile != nil && req.Avatar != nil {
		req.AvatarURL, err = s.s3.UploadFile(ctx, constant.Empty, model.AvatarDirectory, req.AvatarFile, req.Avatar, shared.UploadFileName(req.Avatar.Filename))
		if err != nil {
			log.Error().Err(err).Msg("failed to upload avatar")

			return err
		}
	}

	if current.ID == constant.Empty {
		err = s.details.Insert(ctx, req.ToModel(user, userID))
	} else {
		err = s.details.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(current.ID, model.FieldID, model.TableUserDetail))
	}

	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to save user detail")
		s.removeAvatar(ctx, req.AvatarURL)

		return err
	}

	if req.AvatarURL != constant.Empty {
		s.removeAvatar(ctx, current.Avatar)
	}

	return nil
}

func (s *serviceImpl) removeAvatar(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		objectName := s.s3.GetObjectNameFromURL(constant.Empty, url)
		if err := s.s3.DeleteFile(c, constant.Empty, model.AvatarDirectory, objectName); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete avatar")
		}
	}()
}
