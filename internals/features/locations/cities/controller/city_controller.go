package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cityDTO "realestate_backend/internals/features/locations/cities/dto"
	cityModel "realestate_backend/internals/features/locations/cities/model"
	helper "realestate_backend/internals/helpers"
)

type CityController struct {
	DB *gorm.DB
}

func NewCityController(db *gorm.DB) *CityController {
	return &CityController{DB: db}
}

var validateCity = validator.New()

// POST /
// Slug dihitung dari name kalau tidak dikirim, lalu dijamin unik (CI).
func (ctrl *CityController) Create(c *fiber.Ctx) error {
	var req cityDTO.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateCity.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()

	base := ""
	if req.Slug != nil {
		base = helper.Slugify(*req.Slug, 140)
	} else {
		base = helper.Slugify(m.Name, 140)
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "cities", "slug", base, nil, 140)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan slug kota")
	}
	m.Slug = slug

	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kota sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kota")
	}

	return helper.JsonCreated(c, "Kota berhasil dibuat", cityDTO.NewCityResponse(m))
}

// GET /list — filter ?status= & ?country_id=, urut name ASC
func (ctrl *CityController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&cityModel.CityModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if cid := strings.TrimSpace(c.Query("country_id")); cid != "" {
		if n, err := strconv.Atoi(cid); err == nil && n > 0 {
			tx = tx.Where("country_id = ?", n)
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kota")
	}

	var rows []cityModel.CityModel
	if err := tx.Order("name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kota")
	}

	resp := make([]*cityDTO.CityResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, cityDTO.NewCityResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /:id
func (ctrl *CityController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m cityModel.CityModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kota")
	}
	return helper.JsonOK(c, "OK", cityDTO.NewCityResponse(&m))
}

// GET /slug/:slug — natural key untuk halaman publik
func (ctrl *CityController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak valid")
	}

	var m cityModel.CityModel
	if err := ctrl.DB.Where("LOWER(slug) = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kota")
	}
	return helper.JsonOK(c, "OK", cityDTO.NewCityResponse(&m))
}

// GET /country/:countryId — semua kota satu negara, urut name
func (ctrl *CityController) GetByCountry(c *fiber.Ctx) error {
	cid, err := strconv.Atoi(strings.TrimSpace(c.Params("countryId")))
	if err != nil || cid <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID negara tidak valid")
	}

	var rows []cityModel.CityModel
	if err := ctrl.DB.
		Where("country_id = ?", cid).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kota")
	}

	resp := make([]*cityDTO.CityResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, cityDTO.NewCityResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// PUT /:id
// Slug dihitung ulang hanya kalau slug/name dikirim eksplisit.
func (ctrl *CityController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing cityModel.CityModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kota")
	}

	var req cityDTO.UpdateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateCity.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if req.Slug != nil {
		base := helper.Slugify(*req.Slug, 140)
		scope := func(q *gorm.DB) *gorm.DB { return q.Where("id <> ?", existing.ID) }
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "cities", "slug", base, scope, 140)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan slug kota")
		}
		existing.Slug = slug
	}

	if err := ctrl.DB.Save(&existing).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kota sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kota")
	}

	return helper.JsonUpdated(c, "Kota diperbarui", cityDTO.NewCityResponse(&existing))
}

// DELETE /:id
func (ctrl *CityController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&cityModel.CityModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kota tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kota dihapus", fiber.Map{"id": id})
}
