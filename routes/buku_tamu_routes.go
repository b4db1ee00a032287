package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBukuTamuRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	tamuController := controllers.NewBukuTamuController(db)
	access.RegisterResource("bukutamu")

	// Form pendaftaran tamu di lobi, tanpa login.
	guest := app.Group(config.GUEST_ROUTES + "/bukutamu")
	guest.Post("/", tamuController.RegisterTamu)

	api := app.Group(
		config.MAIN_ROUTES+"/bukutamu",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/export/excel", tamuController.ExportExcel).Name("bukutamu.export")
	api.Get("/", tamuController.GetAllTamu).Name("bukutamu.index")
	api.Get("/:id", tamuController.GetTamuByID).Name("bukutamu.show")
	api.Put("/:id/status", tamuController.ToggleStatus).Name("bukutamu.status")
	api.Delete("/:id", tamuController.DeleteTamu).Name("bukutamu.destroy")
}
