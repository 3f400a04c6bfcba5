package model

import (
	"time"
)

// CommentModel: komentar polimorfik — entity_type + entity_id menunjuk
// baris target (agency, notice, task, ...).
type CommentModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EntityType string `gorm:"size:50;not null;index:idx_comments_entity" json:"entity_type"`
	EntityID   uint   `gorm:"not null;index:idx_comments_entity" json:"entity_id"`

	AuthorID   uint   `gorm:"not null;index" json:"author_id"`
	AuthorName string `gorm:"size:100" json:"author_name"`

	Body string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}
