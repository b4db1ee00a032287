package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPressReleaseRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	prController := controllers.NewPressReleaseController(db)
	access.RegisterResource("press-releases")

	api := app.Group(
		config.MAIN_ROUTES+"/press-releases",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/", prController.GetAllPressReleases).Name("press-releases.index")
	api.Get("/:id", prController.GetPressReleaseByID).Name("press-releases.show")
	api.Post("/", prController.CreatePressRelease).Name("press-releases.store")
	api.Put("/:id", prController.UpdatePressRelease).Name("press-releases.update")
	api.Delete("/:id", prController.DeletePressRelease).Name("press-releases.destroy")
}
