package model

import (
	"time"
)

// NoticeModel: pengumuman internal back-office.
// audience: all | agents | admins.
type NoticeModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string `gorm:"size:160;not null" json:"title"`
	Body  string `gorm:"type:text;not null" json:"body"`

	NoticeDate time.Time `gorm:"type:date;not null;index" json:"notice_date"`
	Audience   string    `gorm:"size:20;not null;default:'all'" json:"audience"`
	Status     string    `gorm:"size:20;not null;default:'Active'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NoticeModel) TableName() string {
	return "notices"
}
