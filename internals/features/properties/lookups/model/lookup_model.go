package model

import (
	"time"
)

// LookupModel: bentuk bersama semua tabel lookup properti
// (building_styles, commercial_amenities). Tabel dipilih lewat .Table(...)
// di controller/migration, jadi satu kontrak CRUD untuk semua lookup.
type LookupModel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null;unique" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Status      string  `gorm:"size:20;not null;default:'Active'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

const (
	TableBuildingStyles      = "building_styles"
	TableCommercialAmenities = "commercial_amenities"
)
