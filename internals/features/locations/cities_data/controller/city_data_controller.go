package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cdDTO "realestate_backend/internals/features/locations/cities_data/dto"
	cdModel "realestate_backend/internals/features/locations/cities_data/model"
	cityModel "realestate_backend/internals/features/locations/cities/model"
	helper "realestate_backend/internals/helpers"
)

type CityDataController struct {
	DB *gorm.DB
}

func NewCityDataController(db *gorm.DB) *CityDataController {
	return &CityDataController{DB: db}
}

var validateCityData = validator.New()

// POST /
// city_id harus merujuk kota yang ada (cek dulu supaya pesan 404 jelas).
func (ctrl *CityDataController) Create(c *fiber.Ctx) error {
	var req cdDTO.CreateCityDataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateCityData.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var cityCount int64
	if err := ctrl.DB.Model(&cityModel.CityModel{}).
		Where("id = ?", req.CityID).
		Count(&cityCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kota")
	}
	if cityCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kota tidak ditemukan")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat konten kota")
	}

	return helper.JsonCreated(c, "Konten kota berhasil dibuat", cdDTO.NewCityDataResponse(m))
}

// GET /list — opsional ?city_id=
func (ctrl *CityDataController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&cdModel.CityDataModel{})
	if cid := strings.TrimSpace(c.Query("city_id")); cid != "" {
		if n, err := strconv.Atoi(cid); err == nil && n > 0 {
			tx = tx.Where("city_id = ?", n)
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung konten kota")
	}

	var rows []cdModel.CityDataModel
	if err := tx.Order("city_id ASC, position ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten kota")
	}

	resp := make([]*cdDTO.CityDataResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, cdDTO.NewCityDataResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// GET /city/:cityId — semua konten satu kota, urut position
func (ctrl *CityDataController) GetByCity(c *fiber.Ctx) error {
	cid, err := strconv.Atoi(strings.TrimSpace(c.Params("cityId")))
	if err != nil || cid <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kota tidak valid")
	}

	var rows []cdModel.CityDataModel
	if err := ctrl.DB.
		Where("city_id = ?", cid).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten kota")
	}

	resp := make([]*cdDTO.CityDataResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, cdDTO.NewCityDataResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /:id
func (ctrl *CityDataController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m cdModel.CityDataModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konten kota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten kota")
	}
	return helper.JsonOK(c, "OK", cdDTO.NewCityDataResponse(&m))
}

// PUT /:id
func (ctrl *CityDataController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing cdModel.CityDataModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konten kota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten kota")
	}

	var req cdDTO.UpdateCityDataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateCityData.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyToModel(&existing)

	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui konten kota")
	}

	return helper.JsonUpdated(c, "Konten kota diperbarui", cdDTO.NewCityDataResponse(&existing))
}

// DELETE /:id
func (ctrl *CityDataController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&cdModel.CityDataModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konten kota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten kota tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Konten kota dihapus", fiber.Map{"id": id})
}
