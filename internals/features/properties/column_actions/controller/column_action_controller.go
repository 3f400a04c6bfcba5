package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caDTO "realestate_backend/internals/features/properties/column_actions/dto"
	caModel "realestate_backend/internals/features/properties/column_actions/model"
	helper "realestate_backend/internals/helpers"
)

type ColumnActionController struct {
	DB *gorm.DB
}

func NewColumnActionController(db *gorm.DB) *ColumnActionController {
	return &ColumnActionController{DB: db}
}

var validateColumnAction = validator.New()

// POST /
func (ctrl *ColumnActionController) Create(c *fiber.Ctx) error {
	var req caDTO.CreateColumnActionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateColumnAction.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kolom sudah terdaftar untuk tabel tersebut")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat konfigurasi kolom")
	}

	return helper.JsonCreated(c, "Konfigurasi kolom berhasil dibuat", caDTO.NewColumnActionResponse(m))
}

// GET /list — opsional ?table_name= untuk satu tabel saja
func (ctrl *ColumnActionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.Model(&caModel.ColumnActionModel{})
	if table := strings.ToLower(strings.TrimSpace(c.Query("table_name"))); table != "" {
		tx = tx.Where("table_name = ?", table)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung konfigurasi kolom")
	}

	var rows []caModel.ColumnActionModel
	if err := tx.Order("table_name ASC, position ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi kolom")
	}

	resp := make([]*caDTO.ColumnActionResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, caDTO.NewColumnActionResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /table/:tableName — semua kolom satu tabel, urut position
func (ctrl *ColumnActionController) GetByTable(c *fiber.Ctx) error {
	table := strings.ToLower(strings.TrimSpace(c.Params("tableName")))
	if table == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama tabel tidak valid")
	}

	var rows []caModel.ColumnActionModel
	if err := ctrl.DB.
		Where("table_name = ?", table).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi kolom")
	}

	resp := make([]*caDTO.ColumnActionResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, caDTO.NewColumnActionResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /:id
func (ctrl *ColumnActionController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m caModel.ColumnActionModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konfigurasi kolom tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi kolom")
	}
	return helper.JsonOK(c, "OK", caDTO.NewColumnActionResponse(&m))
}

// PUT /:id
func (ctrl *ColumnActionController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing caModel.ColumnActionModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konfigurasi kolom tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi kolom")
	}

	var req caDTO.UpdateColumnActionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateColumnAction.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui konfigurasi kolom")
	}

	return helper.JsonUpdated(c, "Konfigurasi kolom diperbarui", caDTO.NewColumnActionResponse(&existing))
}

// DELETE /:id
func (ctrl *ColumnActionController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&caModel.ColumnActionModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konfigurasi kolom")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konfigurasi kolom tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Konfigurasi kolom dihapus", fiber.Map{"id": id})
}
