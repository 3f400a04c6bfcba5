package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caCtl "realestate_backend/internals/features/properties/column_actions/controller"
)

// ColumnActionUserRoutes: baca konfigurasi grid (semua user login).
func ColumnActionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := caCtl.NewColumnActionController(db)

	g := r.Group("/column-actions")
	g.Get("/list", ctl.List)
	g.Get("/table/:tableName", ctl.GetByTable)
	g.Get("/:id", ctl.GetByID)
}

// ColumnActionAdminRoutes: mutasi konfigurasi grid, khusus admin.
func ColumnActionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := caCtl.NewColumnActionController(db)

	g := r.Group("/column-actions")
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
