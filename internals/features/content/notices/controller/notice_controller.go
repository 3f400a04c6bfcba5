package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeDTO "realestate_backend/internals/features/content/notices/dto"
	noticeModel "realestate_backend/internals/features/content/notices/model"
	helper "realestate_backend/internals/helpers"
)

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

var validateNotice = validator.New()

// POST /
func (ctrl *NoticeController) Create(c *fiber.Ctx) error {
	var req noticeDTO.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateNotice.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}

	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", noticeDTO.NewNoticeResponse(m))
}

// GET /list — filter ?status=, ?audience=, ?from=YYYY-MM-DD, ?to=YYYY-MM-DD.
// Urut created_at DESC (terbaru dulu).
func (ctrl *NoticeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&noticeModel.NoticeModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if aud := strings.TrimSpace(c.Query("audience")); aud != "" {
		tx = tx.Where("audience = ?", aud)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			tx = tx.Where("notice_date >= ?", t)
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'from' tidak valid (YYYY-MM-DD)")
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			tx = tx.Where("notice_date <= ?", t)
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'to' tidak valid (YYYY-MM-DD)")
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}

	var rows []noticeModel.NoticeModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	resp := make([]*noticeDTO.NoticeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, noticeDTO.NewNoticeResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /:id
func (ctrl *NoticeController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m noticeModel.NoticeModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.JsonOK(c, "OK", noticeDTO.NewNoticeResponse(&m))
}

// PUT /:id
func (ctrl *NoticeController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing noticeModel.NoticeModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	var req noticeDTO.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateNotice.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}

	return helper.JsonUpdated(c, "Pengumuman diperbarui", noticeDTO.NewNoticeResponse(&existing))
}

// DELETE /:id
func (ctrl *NoticeController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&noticeModel.NoticeModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengumuman dihapus", fiber.Map{"id": id})
}
