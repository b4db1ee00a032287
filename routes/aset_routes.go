package routes

import (
	"portal-app/config"
	"portal-app/controllers"
	"portal-app/middleware"
	"portal-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAsetRoutes(app *fiber.App, db *gorm.DB, access *services.AccessService) {
	asetController := controllers.NewAsetController(db)
	access.RegisterResource("asets")

	api := app.Group(
		config.MAIN_ROUTES+"/asets",
		middleware.AuthMiddleware,
		middleware.MenuAccess(access),
	)

	api.Get("/export/excel", asetController.ExportExcel).Name("asets.export")
	api.Get("/code/:kode", asetController.GetAsetByKode).Name("asets.code")
	api.Get("/", asetController.GetAllAsets).Name("asets.index")
	api.Get("/:id", asetController.GetAsetByID).Name("asets.show")
	api.Post("/", asetController.CreateAset).Name("asets.store")
	api.Put("/:id", asetController.UpdateAset).Name("asets.update")
	api.Delete("/:id", asetController.DeleteAset).Name("asets.destroy")
}
