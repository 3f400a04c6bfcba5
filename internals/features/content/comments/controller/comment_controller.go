package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentDTO "realestate_backend/internals/features/content/comments/dto"
	commentModel "realestate_backend/internals/features/content/comments/model"
	helper "realestate_backend/internals/helpers"
	helperAuth "realestate_backend/internals/helpers/auth"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

var validateComment = validator.New()

// POST /
func (ctrl *CommentController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userName, _ := c.Locals("user_name").(string)

	var req commentDTO.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateComment.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel(userID, userName)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat komentar")
	}

	return helper.JsonCreated(c, "Komentar berhasil dibuat", commentDTO.NewCommentResponse(m))
}

// GET /entity/:entityType/:entityId — komentar satu entitas, terlama dulu
func (ctrl *CommentController) GetByEntity(c *fiber.Ctx) error {
	entityType := strings.ToLower(strings.TrimSpace(c.Params("entityType")))
	entityID, err := strconv.Atoi(strings.TrimSpace(c.Params("entityId")))
	if entityType == "" || err != nil || entityID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Target komentar tidak valid")
	}

	var rows []commentModel.CommentModel
	if err := ctrl.DB.
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	resp := make([]*commentDTO.CommentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, commentDTO.NewCommentResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /list — admin, filter ?entity_type=, ?author_id=
func (ctrl *CommentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&commentModel.CommentModel{})
	if et := strings.ToLower(strings.TrimSpace(c.Query("entity_type"))); et != "" {
		tx = tx.Where("entity_type = ?", et)
	}
	if aid := strings.TrimSpace(c.Query("author_id")); aid != "" {
		if n, err := strconv.Atoi(aid); err == nil && n > 0 {
			tx = tx.Where("author_id = ?", n)
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung komentar")
	}

	var rows []commentModel.CommentModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	resp := make([]*commentDTO.CommentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, commentDTO.NewCommentResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /:id
func (ctrl *CommentController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m commentModel.CommentModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}
	return helper.JsonOK(c, "OK", commentDTO.NewCommentResponse(&m))
}

// PUT /:id — hanya penulis yang boleh mengubah isi
func (ctrl *CommentController) Update(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, errID := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if errID != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing commentModel.CommentModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	if existing.AuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan komentar milik Anda")
	}

	var req commentDTO.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateComment.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui komentar")
	}

	return helper.JsonUpdated(c, "Komentar diperbarui", commentDTO.NewCommentResponse(&existing))
}

// DELETE /:id — admin atau penulis asli; selain itu 403
func (ctrl *CommentController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, errID := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if errID != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing commentModel.CommentModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	if existing.AuthorID != userID && !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak berhak menghapus komentar ini")
	}

	if err := ctrl.DB.Delete(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}

	return helper.JsonDeleted(c, "Komentar dihapus", fiber.Map{"id": id})
}
