package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	userController := controllers.NewUserController(db)
	access.RegisterResource("users")

	api := app.Group(
		config.MAIN_ROUTES+"/users",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/options/levels", userController.GetLevelOptions).Name("users.options")
	api.Get("/", userController.GetAllUsers).Name("users.index")
	api.Get("/:id", userController.GetUserByID).Name("users.show")
	api.Post("/", userController.CreateUser).Name("users.store")
	api.Put("/:id", userController.UpdateUser).Name("users.update")
	api.Delete("/:id", userController.DeleteUser).Name("users.destroy")
}
