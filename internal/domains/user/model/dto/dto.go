package dto

import (
	"mime/multipart"
	"time"
	"tourdesk/internal/domains/user/model"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string     `json:"email"     validate:"required,email,max=255"`
	Password string     `json:"password"  validate:"required,min=8,max=72"`
	Fullname string     `json:"fullname"  validate:"required,max=255"`
	Role     model.Role `json:"role"      validate:"enum"`
	IsActive *bool      `json:"is_active"`
}

func (r *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Fullname: r.Fullname,
		Role:     r.Role,
		IsActive: active,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateUserRequest struct {
	Email    string      `db:"email"     json:"email"     validate:"omitempty,email,max=255"`
	Password string      `db:"password"  json:"password"  validate:"omitempty,min=8,max=72"`
	Fullname string      `db:"fullname"  json:"fullname"  validate:"omitempty,max=255"`
	Role     *model.Role `db:"role"      json:"role"      validate:"omitempty,enum"`
	IsActive *bool       `db:"is_active" json:"is_active"`
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Fullname  string     `json:"fullname"`
	Role      model.Role `json:"role"`
	RoleName  string     `json:"role_name"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Fullname = model.Fullname
	r.Role = model.Role
	r.RoleName = model.Role.String()
	r.IsActive = model.IsActive
	r.LastLogin = model.LastLogin
	r.Metadata.FromModel(model.Metadata)
}

func NewUserResponse(model model.User) (res UserResponse) {
	res.FromModel(model)

	return res
}

type UserDetailRequest struct {
	Phone      string                `db:"phone"   form:"phone"   json:"phone"   validate:"omitempty,max=32"`
	Address    string                `db:"address" form:"address" json:"address" validate:"omitempty"`
	Birth      string                `db:"birth"   form:"birth"   json:"birth"   validate:"omitempty,datetime=2006-01-02"`
	Gender     *model.Gender         `db:"gender"  form:"gender"  json:"gender"  validate:"omitempty,enum"`
	AvatarURL  string                `db:"avatar"  json:"-"`
	Avatar     *multipart.FileHeader `json:"-"     swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	AvatarFile multipart.File        `json:"-"`
}

func (r *UserDetailRequest) ToModel(user, userID string) model.UserDetail {
	detail := model.UserDetail{
		ID:       uuid.NewString(),
		UserID:   userID,
		Phone:    r.Phone,
		Address:  r.Address,
		Birth:    timezone.ParseDatePtr(r.Birth),
		Avatar:   r.AvatarURL,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}

	if r.Gender != nil {
		detail.Gender = *r.Gender
	}

	return detail
}

type UserDetailResponse struct {
	ID      string       `json:"id"`
	UserID  string       `json:"user_id"`
	Phone   string       `json:"phone"`
	Address string       `json:"address"`
	Birth   *string      `json:"birth"`
	Gender  model.Gender `json:"gender"`
	Avatar  string       `json:"avatar"`
	gDto.Metadata
}

func (r *UserDetailResponse) FromModel(model model.UserDetail) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Phone = model.Phone
	r.Address = model.Address
	r.Birth = timezone.FormatDate(model.Birth)
	r.Gender = model.Gender
	r.Avatar = model.Avatar
	r.Metadata.FromModel(model.Metadata)
}
