package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/properties/lookups/model"
)

/* ===================== REQUESTS ===================== */

type CreateLookupRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r CreateLookupRequest) ToModel() *model.LookupModel {
	m := &model.LookupModel{
		Name:   strings.TrimSpace(r.Name),
		Status: "Active",
	}
	if r.Description != nil {
		if d := strings.TrimSpace(*r.Description); d != "" {
			m.Description = &d
		}
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateLookupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *UpdateLookupRequest) ApplyToModel(m *model.LookupModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			m.Description = nil
		} else {
			m.Description = &d
		}
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

/* ===================== RESPONSES ===================== */

type LookupResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewLookupResponse(m *model.LookupModel) *LookupResponse {
	if m == nil {
		return nil
	}
	return &LookupResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
