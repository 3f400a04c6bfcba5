package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logDTO "realestate_backend/internals/features/activity/activity_logs/dto"
	logModel "realestate_backend/internals/features/activity/activity_logs/model"
	helper "realestate_backend/internals/helpers"
)

// ActivityLogController: baca audit trail. Tidak ada endpoint tulis —
// baris dibuat middleware ActivityTracker.
type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GET /list — filter ?user_id=, ?entity_type=, ?from=/&to= (created_at).
func (ctrl *ActivityLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.Model(&logModel.ActivityLogModel{})
	if uid := strings.TrimSpace(c.Query("user_id")); uid != "" {
		if n, err := strconv.Atoi(uid); err == nil && n > 0 {
			tx = tx.Where("user_id = ?", n)
		}
	}
	if et := strings.ToLower(strings.TrimSpace(c.Query("entity_type"))); et != "" {
		tx = tx.Where("entity_type = ?", et)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			tx = tx.Where("created_at >= ?", t)
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'from' tidak valid (YYYY-MM-DD)")
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			// inklusif sampai akhir hari
			tx = tx.Where("created_at < ?", t.AddDate(0, 0, 1))
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'to' tidak valid (YYYY-MM-DD)")
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log aktivitas")
	}

	var rows []logModel.ActivityLogModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log aktivitas")
	}

	resp := make([]*logDTO.ActivityLogResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, logDTO.NewActivityLogResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /:id
func (ctrl *ActivityLogController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m logModel.ActivityLogModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Log aktivitas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log aktivitas")
	}
	return helper.JsonOK(c, "OK", logDTO.NewActivityLogResponse(&m))
}
