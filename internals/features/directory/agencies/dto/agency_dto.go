package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	model "realestate_backend/internals/features/directory/agencies/model"
	helper "realestate_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateAgencyRequest struct {
	CUID       *string  `json:"cuid" validate:"omitempty,min=8,max=40"`
	OwnerName  string   `json:"owner_name" validate:"required,min=2,max=100"`
	OfficeName string   `json:"office_name" validate:"required,min=2,max=150"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      *string  `json:"phone" validate:"omitempty,max=30"`
	Address    *string  `json:"address" validate:"omitempty"`
	Website    *string  `json:"website" validate:"omitempty,url"`
	CityID     *uint    `json:"city_id" validate:"omitempty,gt=0"`
	Specialties []string `json:"specialties" validate:"omitempty,dive,min=1,max=50"`
	Status        *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	DripMarketing *int    `json:"drip_marketing" validate:"omitempty,oneof=0 1"`
}

func (r CreateAgencyRequest) ToModel() *model.AgencyModel {
	m := &model.AgencyModel{
		OwnerName:  strings.TrimSpace(r.OwnerName),
		OfficeName: strings.TrimSpace(r.OfficeName),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Status:     "Active", // default sesuai DDL
		CityID:     r.CityID,
	}

	// cuid dari caller kalau ada, kalau tidak digenerate
	if r.CUID != nil && strings.TrimSpace(*r.CUID) != "" {
		m.CUID = strings.TrimSpace(*r.CUID)
	} else {
		m.CUID = helper.GenerateCUID()
	}

	if r.Phone != nil {
		if p := strings.TrimSpace(*r.Phone); p != "" {
			m.Phone = &p
		}
	}
	if r.Address != nil {
		if a := strings.TrimSpace(*r.Address); a != "" {
			m.Address = &a
		}
	}
	if r.Website != nil {
		if w := strings.TrimSpace(*r.Website); w != "" {
			m.Website = &w
		}
	}
	if len(r.Specialties) > 0 {
		m.Specialties = pq.StringArray(r.Specialties)
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.DripMarketing != nil {
		m.DripMarketing = *r.DripMarketing
	}
	return m
}

// Update: semua optional. Field absen = tidak disentuh; field kosong = dikosongkan.
type UpdateAgencyRequest struct {
	OwnerName   *string   `json:"owner_name" validate:"omitempty,min=2,max=100"`
	OfficeName  *string   `json:"office_name" validate:"omitempty,min=2,max=150"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Phone       *string   `json:"phone" validate:"omitempty,max=30"`
	Address     *string   `json:"address" validate:"omitempty"`
	Website     *string   `json:"website" validate:"omitempty"`
	CityID      *uint     `json:"city_id" validate:"omitempty,gt=0"`
	Specialties *[]string `json:"specialties" validate:"omitempty,dive,min=1,max=50"`
	Status        *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	DripMarketing *int    `json:"drip_marketing" validate:"omitempty,oneof=0 1"`
}

func (r *UpdateAgencyRequest) ApplyToModel(m *model.AgencyModel) {
	if r.OwnerName != nil {
		m.OwnerName = strings.TrimSpace(*r.OwnerName)
	}
	if r.OfficeName != nil {
		m.OfficeName = strings.TrimSpace(*r.OfficeName)
	}
	if r.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		if p == "" {
			m.Phone = nil
		} else {
			m.Phone = &p
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
	if r.Website != nil {
		w := strings.TrimSpace(*r.Website)
		if w == "" {
			m.Website = nil
		} else {
			m.Website = &w
		}
	}
	if r.CityID != nil {
		m.CityID = r.CityID
	}
	if r.Specialties != nil {
		m.Specialties = pq.StringArray(*r.Specialties)
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.DripMarketing != nil {
		m.DripMarketing = *r.DripMarketing
	}
}

/* ===================== RESPONSES ===================== */

type AgencyResponse struct {
	ID         uint     `json:"id"`
	CUID       string   `json:"cuid"`
	OwnerName  string   `json:"owner_name"`
	OfficeName string   `json:"office_name"`
	Email      string   `json:"email"`
	Phone      *string  `json:"phone,omitempty"`
	Address    *string  `json:"address,omitempty"`
	Website    *string  `json:"website,omitempty"`
	CityID     *uint    `json:"city_id,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Status        string    `json:"status"`
	DripMarketing int       `json:"drip_marketing"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewAgencyResponse(m *model.AgencyModel) *AgencyResponse {
	if m == nil {
		return nil
	}
	return &AgencyResponse{
		ID:            m.ID,
		CUID:          m.CUID,
		OwnerName:     m.OwnerName,
		OfficeName:    m.OfficeName,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		Website:       m.Website,
		CityID:        m.CityID,
		Specialties:   []string(m.Specialties),
		Status:        m.Status,
		DripMarketing: m.DripMarketing,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
