package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "realestate_backend/internals/features/users/auth/controller"
	middlewares "realestate_backend/internals/middlewares"
	authMw "realestate_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", authMw.AuthMiddleware(db), ctl.Logout)
	auth.Get("/me", authMw.AuthMiddleware(db), ctl.Me)
}
