package model

import (
	"time"
)

type CompanyModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string  `gorm:"size:150;not null;unique" json:"name"`
	Email   *string `gorm:"size:255" json:"email,omitempty"`
	Phone   *string `gorm:"size:30" json:"phone,omitempty"`
	Website *string `gorm:"size:255" json:"website,omitempty"`
	Address *string `gorm:"type:text" json:"address,omitempty"`

	Status string `gorm:"size:20;not null;default:'Active'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
