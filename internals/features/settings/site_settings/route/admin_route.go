package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	setCtl "realestate_backend/internals/features/settings/site_settings/controller"
	setService "realestate_backend/internals/features/settings/site_settings/service"
)

// SiteSettingAdminRoutes: r sudah diproteksi auth + admin di level atas.
func SiteSettingAdminRoutes(r fiber.Router, db *gorm.DB, svc *setService.SettingService) {
	ctl := setCtl.NewSiteSettingController(db, svc)

	settings := r.Group("/settings")
	settings.Get("/list", ctl.List)
	settings.Put("/", ctl.Upsert)
	settings.Put("/maintenance", ctl.SetMaintenance)
}

// SiteSettingPublicRoutes: probe publik, dikecualikan dari maintenance gate.
func SiteSettingPublicRoutes(r fiber.Router, db *gorm.DB, svc *setService.SettingService) {
	ctl := setCtl.NewSiteSettingController(db, svc)

	r.Get("/settings", ctl.Public)
	r.Get("/maintenance", ctl.MaintenanceStatus)
}
