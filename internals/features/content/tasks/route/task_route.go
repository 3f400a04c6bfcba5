package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskCtl "realestate_backend/internals/features/content/tasks/controller"
)

// TaskUserRoutes: user login hanya lihat tugasnya sendiri
// (detail dicek kepemilikannya di controller).
func TaskUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := taskCtl.NewTaskController(db)

	g := r.Group("/tasks")
	g.Get("/mine", ctl.Mine)
	g.Get("/:id", ctl.GetOwnByID)
}

// TaskAdminRoutes: CRUD penuh + finder per assignee, khusus admin.
func TaskAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := taskCtl.NewTaskController(db)

	g := r.Group("/tasks")
	g.Post("/", ctl.Create)
	g.Get("/list", ctl.List)
	g.Get("/assignee/:userId", ctl.GetByAssignee)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
