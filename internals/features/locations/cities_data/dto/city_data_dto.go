package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	model "realestate_backend/internals/features/locations/cities_data/model"
)

/* ===================== REQUESTS ===================== */

type CreateCityDataRequest struct {
	CityID   uint           `json:"city_id" validate:"required,gt=0"`
	Heading  string         `json:"heading" validate:"required,min=2,max=160"`
	Body     string         `json:"body" validate:"required,min=1"`
	Facts    datatypes.JSON `json:"facts" validate:"omitempty"`
	Position *int           `json:"position" validate:"omitempty,gte=0"`
}

func (r CreateCityDataRequest) ToModel() *model.CityDataModel {
	m := &model.CityDataModel{
		CityID:  r.CityID,
		Heading: strings.TrimSpace(r.Heading),
		Body:    r.Body,
		Facts:   r.Facts,
	}
	if r.Position != nil {
		m.Position = *r.Position
	}
	return m
}

type UpdateCityDataRequest struct {
	Heading  *string         `json:"heading" validate:"omitempty,min=2,max=160"`
	Body     *string         `json:"body" validate:"omitempty,min=1"`
	Facts    *datatypes.JSON `json:"facts" validate:"omitempty"`
	Position *int            `json:"position" validate:"omitempty,gte=0"`
}

func (r *UpdateCityDataRequest) ApplyToModel(m *model.CityDataModel) {
	if r.Heading != nil {
		m.Heading = strings.TrimSpace(*r.Heading)
	}
	if r.Body != nil {
		m.Body = *r.Body
	}
	if r.Facts != nil {
		m.Facts = *r.Facts
	}
	if r.Position != nil {
		m.Position = *r.Position
	}
}

/* ===================== RESPONSES ===================== */

type CityDataResponse struct {
	ID        uint           `json:"id"`
	CityID    uint           `json:"city_id"`
	Heading   string         `json:"heading"`
	Body      string         `json:"body"`
	Facts     datatypes.JSON `json:"facts,omitempty"`
	Position  int            `json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewCityDataResponse(m *model.CityDataModel) *CityDataResponse {
	if m == nil {
		return nil
	}
	return &CityDataResponse{
		ID:        m.ID,
		CityID:    m.CityID,
		Heading:   m.Heading,
		Body:      m.Body,
		Facts:     m.Facts,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
