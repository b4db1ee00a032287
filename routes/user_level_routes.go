package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserLevelRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	levelController := controllers.NewUserLevelController(db)
	access.RegisterResource("user-levels")

	api := app.Group(
		config.MAIN_ROUTES+"/user-levels",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/", levelController.GetAllLevels).Name("user-levels.index")
	api.Get("/:id", levelController.GetLevelByID).Name("user-levels.show")
	api.Post("/", levelController.CreateLevel).Name("user-levels.store")
	api.Put("/:id", levelController.UpdateLevel).Name("user-levels.update")
	api.Delete("/:id", levelController.DeleteLevel).Name("user-levels.destroy")
	api.Post("/:id/menus", levelController.UpdateLevelMenus).Name("user-levels.menus")
}
