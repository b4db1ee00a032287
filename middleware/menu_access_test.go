package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"portal-app/models"
	"portal-app/services"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *services.AccessService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserLevel{}, &models.Menu{}))

	app := fiber.New()
	access := services.NewAccessService(db)
	return app, db, access
}

// stubAuth menggantikan AuthMiddleware: langsung menaruh level di context.
func stubAuth(levelID *uint) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("levelID", levelID)
		return ctx.Next()
	}
}

func seedBinding(t *testing.T, db *gorm.DB, route string) *models.UserLevel {
	t.Helper()

	level := &models.UserLevel{Name: "Admin", Code: "admin", IsActive: true}
	require.NoError(t, db.Create(level).Error)

	url := "/" + route
	menu := &models.Menu{Name: "Aset", Route: &route, Url: &url, Urutan: 1, IsActive: true}
	require.NoError(t, db.Create(menu).Error)
	require.NoError(t, db.Model(level).Association("Menus").Append(menu))
	return level
}

func TestMenuAccessAllows(t *testing.T) {
	app, db, access := newTestApp(t)
	access.RegisterResource("asets")
	level := seedBinding(t, db, "asets.index")

	api := app.Group("/api/v1/asets", stubAuth(&level.ID), MenuAccess(access))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true})
	}).Name("asets.index")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/asets/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMenuAccessDeniesWithRedirect(t *testing.T) {
	app, db, access := newTestApp(t)
	access.RegisterResource("users")

	// Level tanpa binding users.
	level := seedBinding(t, db, "asets.index")

	api := app.Group("/api/v1/users", stubAuth(&level.ID), MenuAccess(access))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true})
	}).Name("users.index")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/users/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	var body struct {
		Success  bool   `json:"success"`
		Redirect string `json:"redirect"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.False(t, body.Success)
	require.Equal(t, "/dashboard", body.Redirect)
	require.Equal(t, "Anda tidak memiliki akses ke halaman ini.", body.Message)
}

func TestMenuAccessDeniesUnnamedRoute(t *testing.T) {
	app, db, access := newTestApp(t)
	level := seedBinding(t, db, "asets.index")

	// Route yang lupa diberi nama dan tidak terdaftar tertutup rapat.
	api := app.Group("/api/v1/misc", stubAuth(&level.ID), MenuAccess(access))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/misc/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestMenuAccessDeniesMissingLevel(t *testing.T) {
	app, _, access := newTestApp(t)
	access.RegisterResource("asets")

	api := app.Group("/api/v1/asets", stubAuth(nil), MenuAccess(access))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true})
	}).Name("asets.index")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/asets/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}
