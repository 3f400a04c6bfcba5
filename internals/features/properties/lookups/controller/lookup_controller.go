package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupDTO "realestate_backend/internals/features/properties/lookups/dto"
	lookupModel "realestate_backend/internals/features/properties/lookups/model"
	helper "realestate_backend/internals/helpers"
)

// LookupController: satu kontrak CRUD untuk semua tabel lookup properti.
// Table menentukan tabel target, Label dipakai di pesan error.
type LookupController struct {
	DB    *gorm.DB
	Table string
	Label string
}

func NewLookupController(db *gorm.DB, table, label string) *LookupController {
	return &LookupController{DB: db, Table: table, Label: label}
}

var validateLookup = validator.New()

func (h *LookupController) tx() *gorm.DB {
	return h.DB.Table(h.Table)
}

// POST /
func (h *LookupController) Create(c *fiber.Ctx) error {
	var req lookupDTO.CreateLookupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateLookup.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.tx().Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama "+h.Label+" sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat "+h.Label)
	}

	return helper.JsonCreated(c, h.Label+" berhasil dibuat", lookupDTO.NewLookupResponse(m))
}

// GET /list — lookup table diurutkan name ASC
func (h *LookupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := h.tx()
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung "+h.Label)
	}

	var rows []lookupModel.LookupModel
	if err := tx.Order("name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil "+h.Label)
	}

	resp := make([]*lookupDTO.LookupResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, lookupDTO.NewLookupResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /:id
func (h *LookupController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m lookupModel.LookupModel
	if err := h.tx().Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, h.Label+" tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil "+h.Label)
	}
	return helper.JsonOK(c, "OK", lookupDTO.NewLookupResponse(&m))
}

// PUT /:id
func (h *LookupController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing lookupModel.LookupModel
	if err := h.tx().Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, h.Label+" tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil "+h.Label)
	}

	var req lookupDTO.UpdateLookupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateLookup.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if err := h.tx().Where("id = ?", id).Updates(&existing).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama "+h.Label+" sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui "+h.Label)
	}

	return helper.JsonUpdated(c, h.Label+" diperbarui", lookupDTO.NewLookupResponse(&existing))
}

// DELETE /:id
func (h *LookupController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.tx().Where("id = ?", id).Delete(&lookupModel.LookupModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus "+h.Label)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, h.Label+" tidak ditemukan")
	}

	return helper.JsonDeleted(c, h.Label+" dihapus", fiber.Map{"id": id})
}
