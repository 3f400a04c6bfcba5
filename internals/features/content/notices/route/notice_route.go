package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeCtl "realestate_backend/internals/features/content/notices/controller"
)

// NoticePublicRoutes: baca pengumuman (audience all).
func NoticePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := noticeCtl.NewNoticeController(db)

	g := r.Group("/notices")
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

// NoticeAdminRoutes: mutasi pengumuman, khusus admin.
func NoticeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := noticeCtl.NewNoticeController(db)

	g := r.Group("/notices")
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
