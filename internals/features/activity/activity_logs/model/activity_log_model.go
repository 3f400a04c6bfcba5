package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLogModel: audit trail per request mutasi. Append-only.
type ActivityLogModel struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     *uint          `gorm:"index" json:"user_id,omitempty"` // nullable: user bisa terhapus
	UserName   string         `gorm:"size:50" json:"user_name"`
	Action     string         `gorm:"size:100;not null" json:"action"` // contoh: "POST /api/a/agency"
	EntityType string         `gorm:"size:50" json:"entity_type"`
	EntityID   string         `gorm:"size:50" json:"entity_id"`
	StatusCode int            `json:"status_code"`
	IPAddress  string         `gorm:"size:45" json:"ip_address"`
	UserAgent  string         `gorm:"size:255" json:"user_agent"`
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
