package model

import (
	"time"
)

// CityModel: kota dengan slug sebagai natural key untuk URL publik.
// country_id SET NULL saat negara dihapus.
type CityModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:120;not null" json:"name"`
	Slug string `gorm:"size:140;not null;uniqueIndex:idx_cities_slug" json:"slug"`

	State     *string `gorm:"size:120" json:"state,omitempty"`
	CountryID *uint   `gorm:"index;constraint:OnDelete:SET NULL" json:"country_id,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Status string `gorm:"size:20;not null;default:'Active'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CityModel) TableName() string {
	return "cities"
}
