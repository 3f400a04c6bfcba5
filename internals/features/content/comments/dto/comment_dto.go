package dto

import (
	"strings"
	"time"

	model "realestate_backend/internals/features/content/comments/model"
)

/* ===================== REQUESTS ===================== */

type CreateCommentRequest struct {
	EntityType string `json:"entity_type" validate:"required,min=2,max=50"`
	EntityID   uint   `json:"entity_id" validate:"required,gt=0"`
	Body       string `json:"body" validate:"required,min=1"`
}

// ToModel: author diambil dari token, bukan payload.
func (r CreateCommentRequest) ToModel(authorID uint, authorName string) *model.CommentModel {
	return &model.CommentModel{
		EntityType: strings.ToLower(strings.TrimSpace(r.EntityType)),
		EntityID:   r.EntityID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Body:       strings.TrimSpace(r.Body),
	}
}

type UpdateCommentRequest struct {
	Body *string `json:"body" validate:"omitempty,min=1"`
}

func (r *UpdateCommentRequest) ApplyToModel(m *model.CommentModel) {
	if r.Body != nil {
		m.Body = strings.TrimSpace(*r.Body)
	}
}

/* ===================== RESPONSES ===================== */

type CommentResponse struct {
	ID         uint      `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewCommentResponse(m *model.CommentModel) *CommentResponse {
	if m == nil {
		return nil
	}
	return &CommentResponse{
		ID:         m.ID,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
