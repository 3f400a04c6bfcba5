package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logCtl "realestate_backend/internals/features/activity/activity_logs/controller"
)

// ActivityLogAdminRoutes: audit trail hanya bisa dibaca admin.
func ActivityLogAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := logCtl.NewActivityLogController(db)

	g := r.Group("/activity-logs")
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
