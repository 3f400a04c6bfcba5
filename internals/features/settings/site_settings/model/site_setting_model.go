package model

import (
	"time"
)

// SiteSettingModel merepresentasikan tabel site_settings (key-value store versioned).
// Pengganti pola rewrite .env: semua konfigurasi runtime hidup di tabel ini.
type SiteSettingModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:100;not null;unique" json:"setting_key"`
	Value     string    `gorm:"column:setting_value;type:text;not null" json:"setting_value"`
	Type      string    `gorm:"size:20;not null;default:'string'" json:"type"` // string|bool|int|json
	IsPublic  bool      `gorm:"not null;default:false" json:"is_public"`
	Version   int       `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SiteSettingModel) TableName() string {
	return "site_settings"
}

// Kunci yang dikenal (dipakai seed + validasi ringan di controller)
const (
	KeyMaintenanceMode  = "maintenance_mode"
	KeySiteName         = "site_name"
	KeyContactEmail     = "contact_email"
	KeyMapProviderKey   = "map_provider_key"
	KeyPaymentClientKey = "payment_client_key"
)
