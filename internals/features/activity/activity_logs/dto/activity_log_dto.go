package dto

import (
	"time"

	"gorm.io/datatypes"

	model "realestate_backend/internals/features/activity/activity_logs/model"
)

type ActivityLogResponse struct {
	ID         uint           `json:"id"`
	UserID     *uint          `json:"user_id,omitempty"`
	UserName   string         `json:"user_name,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type,omitempty"`
	EntityID   string         `json:"entity_id,omitempty"`
	StatusCode int            `json:"status_code"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func NewActivityLogResponse(m *model.ActivityLogModel) *ActivityLogResponse {
	if m == nil {
		return nil
	}
	return &ActivityLogResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		UserName:   m.UserName,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		StatusCode: m.StatusCode,
		IPAddress:  m.IPAddress,
		UserAgent:  m.UserAgent,
		Metadata:   m.Metadata,
		CreatedAt:  m.CreatedAt,
	}
}
