package main

import (
	"portal-app/config"
	"portal-app/controllers/idgen"
	"portal-app/database"
	"portal-app/routes"
	"portal-app/services"
	"portal-app/utils"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()
	utils.InitLogger()

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // upload foto press release
	})

	db, err := database.Connect()
	if err != nil {
		utils.Log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		utils.Log.Fatal().Err(err).Msg("failed to auto migrate")
	}

	idgen.Init()
	database.RunSeeders(db)

	access := services.NewAccessService(db)

	config.SetupCORS(app)

	// File upload (foto press release / release) dilayani statis.
	app.Static("/assets/images", config.UploadDir)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db, access)
	routes.SetupUserRoutes(app, db, access)
	routes.SetupUserLevelRoutes(app, db, access)
	routes.SetupMenuRoutes(app, db, access)
	routes.SetupAsetRoutes(app, db, access)
	routes.SetupBukuTamuRoutes(app, db, access)
	routes.SetupPressReleaseRoutes(app, db, access)
	routes.SetupReleaseRoutes(app, db, access)

	port := config.APP_PORT
	utils.Log.Info().Str("port", port).Msg("server started")

	if err := app.Listen(":" + port); err != nil {
		utils.Log.Fatal().Err(err).Msg("server stopped")
	}
}
