package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	apiAuth := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiAuth.Get("/logout", authController.Logout)
	apiAuth.Get("/profile", authController.GetProfile)
}
