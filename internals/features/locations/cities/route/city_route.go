package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cityCtl "realestate_backend/internals/features/locations/cities/controller"
)

// CityPublicRoutes: list/get kota untuk halaman publik.
func CityPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cityCtl.NewCityController(db)

	g := r.Group("/cities")
	g.Get("/list", ctl.List)
	g.Get("/slug/:slug", ctl.GetBySlug)
	g.Get("/country/:countryId", ctl.GetByCountry)
	g.Get("/:id", ctl.GetByID)
}

// CityAdminRoutes: mutasi kota, khusus admin.
func CityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cityCtl.NewCityController(db)

	g := r.Group("/cities")
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
