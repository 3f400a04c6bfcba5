package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/properties/column_actions/model"
)

/* ===================== REQUESTS ===================== */

type CreateColumnActionRequest struct {
	TableName  string `json:"table_name" validate:"required,min=2,max=100"`
	ColumnName string `json:"column_name" validate:"required,min=1,max=100"`
	Label      string `json:"label" validate:"required,min=1,max=100"`
	Visible    *bool  `json:"visible" validate:"omitempty"`
	Sortable   *bool  `json:"sortable" validate:"omitempty"`
	Position   *int   `json:"position" validate:"omitempty,gte=0"`
}

func (r CreateColumnActionRequest) ToModel() *model.ColumnActionModel {
	m := &model.ColumnActionModel{
		Table:      strings.ToLower(strings.TrimSpace(r.TableName)),
		ColumnName: strings.ToLower(strings.TrimSpace(r.ColumnName)),
		Label:      strings.TrimSpace(r.Label),
		Visible:    true,
	}
	if r.Visible != nil {
		m.Visible = *r.Visible
	}
	if r.Sortable != nil {
		m.Sortable = *r.Sortable
	}
	if r.Position != nil {
		m.Position = *r.Position
	}
	return m
}

type UpdateColumnActionRequest struct {
	Label    *string `json:"label" validate:"omitempty,min=1,max=100"`
	Visible  *bool   `json:"visible" validate:"omitempty"`
	Sortable *bool   `json:"sortable" validate:"omitempty"`
	Position *int    `json:"position" validate:"omitempty,gte=0"`
}

func (r *UpdateColumnActionRequest) ApplyToModel(m *model.ColumnActionModel) {
	if r.Label != nil {
		m.Label = strings.TrimSpace(*r.Label)
	}
	if r.Visible != nil {
		m.Visible = *r.Visible
	}
	if r.Sortable != nil {
		m.Sortable = *r.Sortable
	}
	if r.Position != nil {
		m.Position = *r.Position
	}
}

/* ===================== RESPONSES ===================== */

type ColumnActionResponse struct {
	ID         uint      `json:"id"`
	TableName  string    `json:"table_name"`
	ColumnName string    `json:"column_name"`
	Label      string    `json:"label"`
	Visible    bool      `json:"visible"`
	Sortable   bool      `json:"sortable"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewColumnActionResponse(m *model.ColumnActionModel) *ColumnActionResponse {
	if m == nil {
		return nil
	}
	return &ColumnActionResponse{
		ID:         m.ID,
		TableName:  m.Table,
		ColumnName: m.ColumnName,
		Label:      m.Label,
		Visible:    m.Visible,
		Sortable:   m.Sortable,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
