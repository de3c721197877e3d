package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Phone     string    `json:"phone" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Address   string    `json:"address"`
	BirthDate *Date     `json:"birthDate,omitempty" gorm:"type:date"`
	Role      Role      `json:"role"`
	Devices   []Device  `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type RegisterRequest struct {
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address"`
	BirthDate *Date  `json:"birthDate"`
	Password  string `json:"password" validate:"required,min=8"`

	// SerialNumber optionally claims an anonymously registered device.
	SerialNumber string `json:"serialNumber"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UserUpdateRequest struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	BirthDate *Date   `json:"birthDate"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
