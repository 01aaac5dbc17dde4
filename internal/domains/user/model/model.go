package model

import (
	"time"
	"tourdesk/shared/constant"
	"tourdesk/shared/model"
)

const (
	TableUser       = "users"
	TableUserDetail = "user_details"

	EntityUser       = "user"
	EntityUserDetail = "user_detail"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullname  = "fullname"
	FieldRole      = "role"
	FieldIsActive  = "is_active"
	FieldLastLogin = "last_login"
	FieldUserID    = "user_id"

	AvatarDirectory = "user"
)

type Role int

const (
	RoleSuperAdmin Role = iota
	RoleAdmin
	RoleSale
	RoleGuide
)

var roleNames = map[Role]string{
	RoleSuperAdmin: constant.RoleSuperAdmin,
	RoleAdmin:      constant.RoleAdmin,
	RoleSale:       constant.RoleSale,
	RoleGuide:      constant.RoleGuide,
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]

	return ok
}

// String is the role name carried in access tokens and permissions.json.
func (r Role) String() string {
	return roleNames[r]
}

type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderOther
)

func (g Gender) Valid() bool {
	return g >= GenderMale && g <= GenderOther
}

type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Fullname  string     `db:"fullname"`
	Role      Role       `db:"role"`
	IsActive  bool       `db:"is_active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

func (u User) IsGuide() bool {
	return u.Role == RoleGuide
}

type UserDetail struct {
	ID      string     `db:"id"`
	UserID  string     `db:"user_id"`
	Phone   string     `db:"phone"`
	Address string     `db:"address"`
	Birth   *time.Time `db:"birth"`
	Gender  Gender     `db:"gender"`
	Avatar  string     `db:"avatar"`
	model.Metadata
}
