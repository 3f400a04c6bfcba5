package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/content/notices/model"
)

/* ===================== REQUESTS ===================== */

type CreateNoticeRequest struct {
	Title      string  `json:"title" validate:"required,min=2,max=160"`
	Body       string  `json:"body" validate:"required,min=1"`
	NoticeDate string  `json:"notice_date" validate:"required,datetime=2006-01-02"`
	Audience   *string `json:"audience" validate:"omitempty,oneof=all agents admins"`
	Status     *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r CreateNoticeRequest) ToModel() *model.NoticeModel {
	m := &model.NoticeModel{
		Title:    strings.TrimSpace(r.Title),
		Body:     r.Body,
		Audience: "all",
		Status:   "Active",
	}
	// Sudah lolos validasi datetime di atas.
	if t, err := time.Parse("2006-01-02", r.NoticeDate); err == nil {
		m.NoticeDate = t
	}
	if r.Audience != nil {
		m.Audience = *r.Audience
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateNoticeRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=2,max=160"`
	Body       *string `json:"body" validate:"omitempty,min=1"`
	NoticeDate *string `json:"notice_date" validate:"omitempty,datetime=2006-01-02"`
	Audience   *string `json:"audience" validate:"omitempty,oneof=all agents admins"`
	Status     *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *UpdateNoticeRequest) ApplyToModel(m *model.NoticeModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Body != nil {
		m.Body = *r.Body
	}
	if r.NoticeDate != nil {
		if t, err := time.Parse("2006-01-02", *r.NoticeDate); err == nil {
			m.NoticeDate = t
		}
	}
	if r.Audience != nil {
		m.Audience = *r.Audience
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

/* ===================== RESPONSES ===================== */

type NoticeResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	NoticeDate string    `json:"notice_date"`
	Audience   string    `json:"audience"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewNoticeResponse(m *model.NoticeModel) *NoticeResponse {
	if m == nil {
		return nil
	}
	return &NoticeResponse{
		ID:         m.ID,
		Title:      m.Title,
		Body:       m.Body,
		NoticeDate: m.NoticeDate.Format("2006-01-02"),
		Audience:   m.Audience,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
