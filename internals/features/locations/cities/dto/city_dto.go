package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/locations/cities/model"
)

/* ===================== REQUESTS ===================== */

type CreateCityRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=120"`
	Slug      *string  `json:"slug" validate:"omitempty,min=2,max=140"`
	State     *string  `json:"state" validate:"omitempty,max=120"`
	CountryID *uint    `json:"country_id" validate:"omitempty,gt=0"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Status    *string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// ToModel: slug final ditentukan controller (perlu cek unik di DB).
func (r CreateCityRequest) ToModel() *model.CityModel {
	m := &model.CityModel{
		Name:      strings.TrimSpace(r.Name),
		CountryID: r.CountryID,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Status:    "Active",
	}
	if r.State != nil {
		if s := strings.TrimSpace(*r.State); s != "" {
			m.State = &s
		}
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdateCityRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Slug      *string  `json:"slug" validate:"omitempty,min=2,max=140"`
	State     *string  `json:"state" validate:"omitempty,max=120"`
	CountryID *uint    `json:"country_id" validate:"omitempty,gt=0"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Status    *string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// ApplyToModel: field nil tidak diubah; slug tetap urusan controller.
func (r *UpdateCityRequest) ApplyToModel(m *model.CityModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.State != nil {
		s := strings.TrimSpace(*r.State)
		if s == "" {
			m.State = nil
		} else {
			m.State = &s
		}
	}
	if r.CountryID != nil {
		m.CountryID = r.CountryID
	}
	if r.Latitude != nil {
		m.Latitude = r.Latitude
	}
	if r.Longitude != nil {
		m.Longitude = r.Longitude
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

/* ===================== RESPONSES ===================== */

type CityResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	State     *string   `json:"state,omitempty"`
	CountryID *uint     `json:"country_id,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCityResponse(m *model.CityModel) *CityResponse {
	if m == nil {
		return nil
	}
	return &CityResponse{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		State:     m.State,
		CountryID: m.CountryID,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
