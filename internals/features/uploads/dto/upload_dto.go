package dto

import (
	"time"

	model "realestate_backend/internals/features/uploads/model"
)

type UploadResponse struct {
	ID           uint      `json:"id"`
	OriginalName string    `json:"original_name"`
	StoredPath   string    `json:"stored_path"`
	ThumbPath    *string   `json:"thumb_path,omitempty"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	Kind         string    `json:"kind"`
	UploaderID   *uint     `json:"uploader_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUploadResponse(m *model.UploadModel) *UploadResponse {
	if m == nil {
		return nil
	}
	return &UploadResponse{
		ID:           m.ID,
		OriginalName: m.OriginalName,
		StoredPath:   m.StoredPath,
		ThumbPath:    m.ThumbPath,
		MimeType:     m.MimeType,
		SizeBytes:    m.SizeByte,
		Kind:         m.Kind,
		UploaderID:   m.UploaderID,
		CreatedAt:    m.CreatedAt,
	}
}
