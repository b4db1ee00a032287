package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMenuRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	menuController := controllers.NewMenuController(db)
	access.RegisterResource("menus")

	// Sidebar dibangun dari binding level user sendiri, jadi route ini
	// terbuka untuk semua user login.
	access.AllowRoute("menus.user")

	api := app.Group(
		config.MAIN_ROUTES+"/menus",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/user", menuController.GetMenuUser).Name("menus.user")
	api.Get("/options/parents", menuController.GetParentOptions).Name("menus.parents")
	api.Get("/", menuController.GetMenus).Name("menus.index")
	api.Get("/:id", menuController.GetMenuByID).Name("menus.show")
	api.Post("/", menuController.CreateMenu).Name("menus.store")
	api.Put("/:id", menuController.UpdateMenu).Name("menus.update")
	api.Delete("/:id", menuController.DeleteMenu).Name("menus.destroy")
	api.Post("/:id/levels", menuController.UpdateMenuLevels).Name("menus.levels")
}
