package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/directory/companies/model"
)

/* ===================== REQUESTS ===================== */

type CreateCompanyRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=150"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Website *string `json:"website" validate:"omitempty,url"`
	Address *string `json:"address" validate:"omitempty"`
	Status  *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r CreateCompanyRequest) ToModel() *model.CompanyModel {
	m := &model.CompanyModel{
		Name:   strings.TrimSpace(r.Name),
		Status: "Active",
	}
	if r.Email != nil {
		if e := strings.ToLower(strings.TrimSpace(*r.Email)); e != "" {
			m.Email = &e
		}
	}
	if r.Phone != nil {
		if p := strings.TrimSpace(*r.Phone); p != "" {
			m.Phone = &p
		}
	}
	if r.Website != nil {
		if w := strings.TrimSpace(*r.Website); w != "" {
			m.Website = &w
		}
	}
	if r.Address != nil {
		if a := strings.TrimSpace(*r.Address); a != "" {
			m.Address = &a
		}
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=150"`
	Email   *string `json:"email" validate:"omitempty"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Website *string `json:"website" validate:"omitempty"`
	Address *string `json:"address" validate:"omitempty"`
	Status  *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *UpdateCompanyRequest) ApplyToModel(m *model.CompanyModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		if e == "" {
			m.Email = nil
		} else {
			m.Email = &e
		}
	}
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		if p == "" {
			m.Phone = nil
		} else {
			m.Phone = &p
		}
	}
	if r.Website != nil {
		w := strings.TrimSpace(*r.Website)
		if w == "" {
			m.Website = nil
		} else {
			m.Website = &w
		}
	}
	if r.Address != nil {
		a := strings.TrimSpace(*r.Address)
		if a == "" {
			m.Address = nil
		} else {
			m.Address = &a
		}
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

/* ===================== RESPONSES ===================== */

type CompanyResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Website   *string   `json:"website,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCompanyResponse(m *model.CompanyModel) *CompanyResponse {
	if m == nil {
		return nil
	}
	return &CompanyResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Website:   m.Website,
		Address:   m.Address,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
