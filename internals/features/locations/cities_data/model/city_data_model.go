package model

import (
	"time"

	"gorm.io/datatypes"
)

// CityDataModel: konten per kota (profil, statistik pasar, dsb).
// facts disimpan sebagai JSONB bebas bentuk.
type CityDataModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CityID  uint   `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"city_id"`
	Heading string `gorm:"size:160;not null" json:"heading"`
	Body    string `gorm:"type:text;not null" json:"body"`

	Facts datatypes.JSON `gorm:"type:jsonb" json:"facts,omitempty"`

	Position int `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CityDataModel) TableName() string {
	return "cities_data"
}
