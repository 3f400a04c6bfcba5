package model

import (
	"time"
)

const (
	UploadKindImage    = "image"
	UploadKindDocument = "document"
)

// UploadModel: metadata file yang tersimpan di disk (path relatif
// terhadap UPLOAD_ROOT). thumb_path hanya terisi untuk gambar.
type UploadModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OriginalName string  `gorm:"size:255;not null" json:"original_name"`
	StoredPath   string  `gorm:"size:255;not null;uniqueIndex" json:"stored_path"`
	ThumbPath    *string `gorm:"size:255" json:"thumb_path,omitempty"`

	MimeType string `gorm:"size:100" json:"mime_type"`
	SizeByte int64  `gorm:"not null" json:"size_bytes"`
	Kind     string `gorm:"size:20;not null;index" json:"kind"`

	UploaderID *uint `gorm:"index" json:"uploader_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (UploadModel) TableName() string {
	return "uploads"
}
