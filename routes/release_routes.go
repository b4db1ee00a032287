package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReleaseRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	releaseController := controllers.NewReleaseController(db)
	access.RegisterResource("releases")

	// Daftar release yang sudah terbit, untuk halaman publik.
	guest := app.Group(config.GUEST_ROUTES + "/releases")
	guest.Get("/", releaseController.GetPublicReleases)

	api := app.Group(
		config.MAIN_ROUTES+"/releases",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/", releaseController.GetAllReleases).Name("releases.index")
	api.Get("/:id", releaseController.GetReleaseByID).Name("releases.show")
	api.Post("/", releaseController.CreateRelease).Name("releases.store")
	api.Put("/:id", releaseController.UpdateRelease).Name("releases.update")
	api.Put("/:id/status", releaseController.UpdateStatus).Name("releases.status")
	api.Delete("/:id", releaseController.DeleteRelease).Name("releases.destroy")
}
