package model

import (
	"time"
)

const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// TaskModel: tugas back-office. Assignee SET NULL saat user dihapus.
type TaskModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string  `gorm:"size:160;not null" json:"title"`
	Details *string `gorm:"type:text" json:"details,omitempty"`

	AssigneeID *uint      `gorm:"index;constraint:OnDelete:SET NULL" json:"assignee_id,omitempty"`
	DueDate    *time.Time `gorm:"type:date;index" json:"due_date,omitempty"`

	Priority string `gorm:"size:20;not null;default:'normal'" json:"priority"`
	Status   string `gorm:"size:20;not null;default:'open';index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
