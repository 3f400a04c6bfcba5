package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentCtl "realestate_backend/internals/features/content/comments/controller"
)

// CommentUserRoutes: user login bikin/baca/ubah/hapus komentar
// (aturan pemilik dicek di controller).
func CommentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := commentCtl.NewCommentController(db)

	g := r.Group("/comments")
	g.Post("/", ctl.Create)
	g.Get("/entity/:entityType/:entityId", ctl.GetByEntity)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// CommentAdminRoutes: list lintas entitas untuk moderasi.
func CommentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := commentCtl.NewCommentController(db)

	g := r.Group("/comments")
	g.Get("/list", ctl.List)
	g.Delete("/:id", ctl.Delete)
}
