package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uploadCtl "realestate_backend/internals/features/uploads/controller"
)

// UploadUserRoutes: user login unggah file & lihat miliknya.
func UploadUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := uploadCtl.NewUploadController(db)

	g := r.Group("/uploads")
	g.Post("/image", ctl.UploadImage)
	g.Post("/document", ctl.UploadDocument)
	g.Get("/:id", ctl.GetByID)
}

// UploadAdminRoutes: list semua upload + hapus.
func UploadAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := uploadCtl.NewUploadController(db)

	g := r.Group("/uploads")
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Delete("/:id", ctl.Delete)
}
