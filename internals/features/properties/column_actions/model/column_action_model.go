package model

import (
	"time"
)

// ColumnActionModel: konfigurasi kolom grid back-office per tabel
// (visible/sortable/posisi). Unik per (table_name, column_name).
type ColumnActionModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Table      string `gorm:"column:table_name;size:100;not null;uniqueIndex:idx_column_actions_table_column" json:"table_name"`
	ColumnName string `gorm:"size:100;not null;uniqueIndex:idx_column_actions_table_column" json:"column_name"`
	Label      string `gorm:"size:100;not null" json:"label"`

	Visible  bool `gorm:"not null;default:true" json:"visible"`
	Sortable bool `gorm:"not null;default:false" json:"sortable"`
	Position int  `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ColumnActionModel) TableName() string {
	return "column_actions"
}
