package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cdCtl "realestate_backend/internals/features/locations/cities_data/controller"
)

// CityDataPublicRoutes: konten kota untuk halaman publik.
func CityDataPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cdCtl.NewCityDataController(db)

	g := r.Group("/cities-data")
	g.Get("/list", ctl.List)
	g.Get("/city/:cityId", ctl.GetByCity)
	g.Get("/:id", ctl.GetByID)
}

// CityDataAdminRoutes: mutasi konten kota, khusus admin.
func CityDataAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cdCtl.NewCityDataController(db)

	g := r.Group("/cities-data")
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
