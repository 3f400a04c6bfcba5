package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agencyCtl "realestate_backend/internals/features/directory/agencies/controller"
)

// AgencyPublicRoutes: list/get bebas (tetap di belakang maintenance gate).
func AgencyPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := agencyCtl.NewAgencyController(db)

	agency := r.Group("/agency")
	agency.Get("/list", ctl.List)
	agency.Get("/search", ctl.Search)
	agency.Get("/cuid/:cuid", ctl.GetByCUID)
	agency.Get("/:id", ctl.GetByID)
}

// AgencyAdminRoutes: mutasi, r sudah diproteksi auth + admin.
func AgencyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := agencyCtl.NewAgencyController(db)

	agency := r.Group("/agency")
	agency.Post("/", ctl.Create)
	agency.Put("/:id", ctl.Update)
	agency.Delete("/:id", ctl.Delete)
}
