package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type CreateUserRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Role     *string `json:"role" validate:"omitempty,oneof=user agent admin owner"`
}

func (r CreateUserRequest) ToModel(hashedPassword string) *model.UserModel {
	m := &model.UserModel{
		UserName: strings.TrimSpace(r.UserName),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
	}
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		if p != "" {
			m.Phone = &p
		}
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	m.SetDefaultValues()
	return m
}

// Update: semua optional (partial update, field absen tidak menyentuh nilai lama)
type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Role     *string `json:"role" validate:"omitempty,oneof=user agent admin owner"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		if p == "" {
			m.Phone = nil
		} else {
			m.Phone = &p
		}
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
