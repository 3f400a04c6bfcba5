package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/content/tasks/model"
)

/* ===================== REQUESTS ===================== */

type CreateTaskRequest struct {
	Title      string  `json:"title" validate:"required,min=2,max=160"`
	Details    *string `json:"details" validate:"omitempty"`
	AssigneeID *uint   `json:"assignee_id" validate:"omitempty,gt=0"`
	DueDate    *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Priority   *string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status     *string `json:"status" validate:"omitempty,oneof=open in_progress done"`
}

func (r CreateTaskRequest) ToModel() *model.TaskModel {
	m := &model.TaskModel{
		Title:      strings.TrimSpace(r.Title),
		AssigneeID: r.AssigneeID,
		Priority:   "normal",
		Status:     model.TaskStatusOpen,
	}
	if r.Details != nil {
		if d := strings.TrimSpace(*r.Details); d != "" {
			m.Details = &d
		}
	}
	if r.DueDate != nil {
		if t, err := time.Parse("2006-01-02", *r.DueDate); err == nil {
			m.DueDate = &t
		}
	}
	if r.Priority != nil {
		m.Priority = *r.Priority
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateTaskRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=2,max=160"`
	Details    *string `json:"details" validate:"omitempty"`
	AssigneeID *uint   `json:"assignee_id" validate:"omitempty,gt=0"`
	DueDate    *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Priority   *string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status     *string `json:"status" validate:"omitempty,oneof=open in_progress done"`
}

func (r *UpdateTaskRequest) ApplyToModel(m *model.TaskModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Details != nil {
		d := strings.TrimSpace(*r.Details)
		if d == "" {
			m.Details = nil
		} else {
			m.Details = &d
		}
	}
	if r.AssigneeID != nil {
		m.AssigneeID = r.AssigneeID
	}
	if r.DueDate != nil {
		if t, err := time.Parse("2006-01-02", *r.DueDate); err == nil {
			m.DueDate = &t
		}
	}
	if r.Priority != nil {
		m.Priority = *r.Priority
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

/* ===================== RESPONSES ===================== */

type TaskResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Details    *string   `json:"details,omitempty"`
	AssigneeID *uint     `json:"assignee_id,omitempty"`
	DueDate    *string   `json:"due_date,omitempty"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewTaskResponse(m *model.TaskModel) *TaskResponse {
	if m == nil {
		return nil
	}
	resp := &TaskResponse{
		ID:         m.ID,
		Title:      m.Title,
		Details:    m.Details,
		AssigneeID: m.AssigneeID,
		Priority:   m.Priority,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.DueDate != nil {
		d := m.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	return resp
}
