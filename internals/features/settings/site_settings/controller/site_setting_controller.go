package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	setDTO "realestate_backend/internals/features/settings/site_settings/dto"
	setModel "realestate_backend/internals/features/settings/site_settings/model"
	setService "realestate_backend/internals/features/settings/site_settings/service"
	helper "realestate_backend/internals/helpers"
)

type SiteSettingController struct {
	DB      *gorm.DB
	Service *setService.SettingService
}

func NewSiteSettingController(db *gorm.DB, svc *setService.SettingService) *SiteSettingController {
	return &SiteSettingController{DB: db, Service: svc}
}

var validateSiteSetting = validator.New()

// GET /api/a/settings/list
func (h *SiteSettingController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := h.DB.Model(&setModel.SiteSettingModel{})

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung settings")
	}

	var rows []setModel.SiteSettingModel
	if err := tx.Order("setting_key ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil settings")
	}

	resp := make([]*setDTO.SiteSettingResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, setDTO.NewSiteSettingResponse(&rows[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", resp, &p)
}

// PUT /api/a/settings  (upsert by key, version bump di service)
func (h *SiteSettingController) Upsert(c *fiber.Ctx) error {
	var req setDTO.UpsertSiteSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateSiteSetting.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	typ := "string"
	if req.Type != nil {
		typ = *req.Type
	}
	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	m, err := h.Service.Set(req.Key, req.Value, typ, isPublic)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setting")
	}
	return helper.JsonUpdated(c, "Setting disimpan", setDTO.NewSiteSettingResponse(m))
}

// PUT /api/a/settings/maintenance
func (h *SiteSettingController) SetMaintenance(c *fiber.Ctx) error {
	var req setDTO.SetMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSiteSetting.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.Service.Set(setModel.KeyMaintenanceMode, strconv.FormatBool(*req.Enabled), "bool", true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah maintenance mode")
	}
	return helper.JsonUpdated(c, "Maintenance mode diubah", setDTO.NewSiteSettingResponse(m))
}

// GET /api/public/settings  (probe publik, tetap hidup saat maintenance)
func (h *SiteSettingController) Public(c *fiber.Ctx) error {
	out, err := h.Service.PublicSettings()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil settings publik")
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/public/maintenance  (status probe)
func (h *SiteSettingController) MaintenanceStatus(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", fiber.Map{
		"maintenanceMode": h.Service.MaintenanceOn(),
	})
}
