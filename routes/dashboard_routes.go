package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	dashboardController := controllers.NewDashboardController(db)

	// Dashboard terbuka untuk semua user login, tanpa binding menu.
	access.AllowRoute("dashboard")

	api := app.Group(
		config.MAIN_ROUTES+"/dashboard",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/", dashboardController.GetSummary).Name("dashboard")
}
