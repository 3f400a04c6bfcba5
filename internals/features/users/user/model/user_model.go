package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserName string `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string `gorm:"not null" json:"-" validate:"required,min=8"`
	Phone    *string `gorm:"size:30" json:"phone,omitempty"`
	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
}
