package model

import (
	"time"

	"github.com/lib/pq"
)

// AgencyModel merepresentasikan tabel agencies.
// cuid = natural key publik (dipakai frontend), id = PK internal.
type AgencyModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	CUID string `gorm:"column:cuid;size:40;not null;unique" json:"cuid"`

	OwnerName  string  `gorm:"size:100;not null" json:"owner_name"`
	OfficeName string  `gorm:"size:150;not null" json:"office_name"`
	Email      string  `gorm:"size:255;not null;unique" json:"email"`
	Phone      *string `gorm:"size:30" json:"phone,omitempty"`
	Address    *string `gorm:"type:text" json:"address,omitempty"`
	Website    *string `gorm:"size:255" json:"website,omitempty"`

	// Kota kantor; kalau kota dihapus, referensi di-null-kan (bukan cascade)
	CityID *uint `gorm:"index" json:"city_id,omitempty"`

	Specialties pq.StringArray `gorm:"type:text[]" json:"specialties,omitempty"`

	Status        string `gorm:"size:20;not null;default:'Active'" json:"status"`
	DripMarketing int    `gorm:"not null;default:0" json:"drip_marketing"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AgencyModel) TableName() string {
	return "agencies"
}
