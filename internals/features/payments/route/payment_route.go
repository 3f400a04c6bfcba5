package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payCtl "realestate_backend/internals/features/payments/controller"
)

// PaymentNotificationRoutes: webhook gateway, dipasang tanpa auth
// (path masuk skip-list AuthMiddleware).
func PaymentNotificationRoutes(app fiber.Router, db *gorm.DB) {
	ctl := payCtl.NewPaymentController(db)
	app.Post("/api/payments/notification", ctl.Notification)
}

// PaymentAdminRoutes: buat & pantau invoice promosi, khusus admin.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := payCtl.NewPaymentController(db)

	g := r.Group("/payments")
	g.Post("/", ctl.Create)
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
