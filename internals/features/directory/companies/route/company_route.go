package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	companyCtl "realestate_backend/internals/features/directory/companies/controller"
)

func CompanyPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := companyCtl.NewCompanyController(db)

	company := r.Group("/company")
	company.Get("/list", ctl.List)
	company.Get("/name/:name", ctl.GetByName)
	company.Get("/:id", ctl.GetByID)
}

func CompanyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := companyCtl.NewCompanyController(db)

	company := r.Group("/company")
	company.Post("/", ctl.Create)
	company.Put("/:id", ctl.Update)
	company.Delete("/:id", ctl.Delete)
}
