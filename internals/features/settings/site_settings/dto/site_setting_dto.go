package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/settings/site_settings/model"
)

/* ===================== REQUESTS ===================== */

type UpsertSiteSettingRequest struct {
	Key      string  `json:"setting_key" validate:"required,min=2,max=100"`
	Value    string  `json:"setting_value" validate:"required"`
	Type     *string `json:"type" validate:"omitempty,oneof=string bool int json"`
	IsPublic *bool   `json:"is_public" validate:"omitempty"`
}

func (r *UpsertSiteSettingRequest) Normalize() {
	r.Key = strings.ToLower(strings.TrimSpace(r.Key))
	r.Value = strings.TrimSpace(r.Value)
}

type SetMaintenanceRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type SiteSettingResponse struct {
	ID        uint      `json:"id"`
	Key       string    `json:"setting_key"`
	Value     string    `json:"setting_value"`
	Type      string    `json:"type"`
	IsPublic  bool      `json:"is_public"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSiteSettingResponse(m *model.SiteSettingModel) *SiteSettingResponse {
	if m == nil {
		return nil
	}
	return &SiteSettingResponse{
		ID:        m.ID,
		Key:       m.Key,
		Value:     m.Value,
		Type:      m.Type,
		IsPublic:  m.IsPublic,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
