package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agencyDTO "realestate_backend/internals/features/directory/agencies/dto"
	agencyModel "realestate_backend/internals/features/directory/agencies/model"
	helper "realestate_backend/internals/helpers"
)

type AgencyController struct {
	DB *gorm.DB
}

func NewAgencyController(db *gorm.DB) *AgencyController {
	return &AgencyController{DB: db}
}

var validateAgency = validator.New()

// POST /api/a/agency
func (h *AgencyController) Create(c *fiber.Ctx) error {
	var req agencyDTO.CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAgency.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()

	// Fast path UX: cek cuid caller-supplied duplikat dulu. Constraint unik di DB
	// tetap jadi backstop resmi (race dua create bersamaan ketangkap di bawah).
	if req.CUID != nil && strings.TrimSpace(*req.CUID) != "" {
		var count int64
		if err := h.DB.Model(&agencyModel.AgencyModel{}).
			Where("cuid = ?", m.CUID).Count(&count).Error; err == nil && count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "CUID sudah dipakai")
		}
	}

	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "CUID atau email agency sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat agency")
	}

	return helper.JsonCreated(c, "Agency berhasil dibuat", agencyDTO.NewAgencyResponse(m))
}

// GET /api/public/agency/list
func (h *AgencyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&agencyModel.AgencyModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if cityID, err := strconv.Atoi(c.Query("city_id")); err == nil && cityID > 0 {
		tx = tx.Where("city_id = ?", cityID)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung agency")
	}

	var rows []agencyModel.AgencyModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}

	resp := make([]*agencyDTO.AgencyResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, agencyDTO.NewAgencyResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /api/public/agency/search?q=...
func (h *AgencyController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter q wajib diisi")
	}

	limit := 10
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	like := "%" + q + "%"
	var rows []agencyModel.AgencyModel
	if err := h.DB.
		Where("office_name ILIKE ? OR owner_name ILIKE ?", like, like).
		Order("office_name ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari agency")
	}

	resp := make([]*agencyDTO.AgencyResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, agencyDTO.NewAgencyResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /api/public/agency/:id
func (h *AgencyController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m agencyModel.AgencyModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}
	return helper.JsonOK(c, "OK", agencyDTO.NewAgencyResponse(&m))
}

// GET /api/public/agency/cuid/:cuid
func (h *AgencyController) GetByCUID(c *fiber.Ctx) error {
	cuid := strings.TrimSpace(c.Params("cuid"))
	if cuid == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "CUID tidak valid")
	}

	var m agencyModel.AgencyModel
	if err := h.DB.Where("cuid = ?", cuid).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}
	return helper.JsonOK(c, "OK", agencyDTO.NewAgencyResponse(&m))
}

// PUT /api/a/agency/:id
func (h *AgencyController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing agencyModel.AgencyModel
	if err := h.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}

	var req agencyDTO.UpdateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAgency.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if err := h.DB.Save(&existing).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email agency sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui agency")
	}

	return helper.JsonUpdated(c, "Agency diperbarui", agencyDTO.NewAgencyResponse(&existing))
}

// DELETE /api/a/agency/:id  (hard delete)
func (h *AgencyController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&agencyModel.AgencyModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus agency")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Agency dihapus", fiber.Map{"id": id})
}
