package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "realestate_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen user, khusus admin.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	users := r.Group("/users")
	users.Post("/", ctl.Create)
	users.Get("/list", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
