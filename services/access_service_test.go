package services

import (
	"testing"

	"portal-app/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserLevel{}, &models.User{}, &models.Menu{}))
	return db
}

func createLevel(t *testing.T, db *gorm.DB, name, code string) *models.UserLevel {
	t.Helper()
	level := &models.UserLevel{Name: name, Code: code, IsActive: true}
	require.NoError(t, db.Create(level).Error)
	return level
}

func createMenu(t *testing.T, db *gorm.DB, name string, route, url *string, parentID *uint, urutan int, active bool) *models.Menu {
	t.Helper()
	menu := &models.Menu{
		Name:     name,
		Route:    route,
		Url:      url,
		ParentID: parentID,
		Urutan:   urutan,
		IsActive: active,
	}
	require.NoError(t, db.Create(menu).Error)
	return menu
}

func bindMenus(t *testing.T, db *gorm.DB, level *models.UserLevel, menus ...*models.Menu) {
	t.Helper()
	for _, menu := range menus {
		require.NoError(t, db.Model(level).Association("Menus").Append(menu))
	}
}

func strPtr(s string) *string { return &s }

func TestCheckAllowsActionsOnBoundResource(t *testing.T) {
	db := newTestDB(t)
	access := NewAccessService(db)
	access.RegisterResource("asets")

	level := createLevel(t, db, "Admin", "admin")
	menu := createMenu(t, db, "Aset", strPtr("asets.index"), strPtr("/asets"), nil, 1, true)
	bindMenus(t, db, level, menu)

	// Binding ke asets.index membuka seluruh aksi resource asets.
	for _, route := range []string{"asets.index", "asets.store", "asets.update", "asets.destroy"} {
		decision, err := access.Check(&level.ID, route)
		require.NoError(t, err)
		require.Equal(t, Allow, decision, route)
	}
}

func TestCheckDeniesUnboundResource(t *testing.T) {
	db := newTestDB(t)
	access := NewAccessService(db)
	access.RegisterResource("users")
	access.RegisterResource("asets")

	level := createLevel(t, db, "Staff", "staff")
	menu := createMenu(t, db, "Aset", strPtr("asets.index"), strPtr("/asets"), nil, 1, true)
	bindMenus(t, db, level, menu)

	decision, err := access.Check(&level.ID, "users.index")
	require.NoError(t, err)
	require.Equal(t, DenyNoMenu, decision)
}

func TestCheckMatchesByUrl(t *testing.T) {
	db := newTestDB(t)
	access := NewAccessService(db)
	access.RegisterResource("user-levels")

	level := createLevel(t, db, "Admin", "admin")

	// Menu tanpa route, hanya url. Varian underscore juga harus cocok.
	menu := createMenu(t, db, "Level User", nil, strPtr("/user_levels"), nil, 1, true)
	bindMenus(t, db, level, menu)

	decision, err := access.Check(&level.ID, "user-levels.index")
	require.NoError(t, err)
	require.Equal(t, Allow, decision)
}

func TestCheckDeniesWithoutLevel(t *testing.T) {
	db := newTestDB(t)
	access := NewAccessService(db)
	access.RegisterResource("asets")

	decision, err := access.Check(nil, "asets.index")
	require.NoError(t, err)
	require.Equal(t, DenyNoLevel, decision)
}

func TestCheckDeniesInactiveMenu(t *testing.T) {
	db := newTestDB(t)
	access := NewAccessService(db)
	access.RegisterResource("asets")

	level := createLevel(t, db, "Admin", "admin")
	menu := createMenu(t, db, "Aset", strPtr("asets.index"), strPtr("/asets"), nil, 1, false)
	bindMenus(t, db, level, menu)

	decision, err := access.Check(&level.ID, "asets.index")
	require.NoError(t, err)
	require.Equal(t, DenyNoMenu, decision)
}

func TestCheckDeniesUnregisteredRoute(t *testing.T) {
	db := newTestDB(t)
	access := NewAccessService(db)

	level := createLevel(t, db, "Admin", "admin")
	menu := createMenu(t, db, "Laporan", strPtr("reports.index"), strPtr("/reports"), nil, 1, true)
	bindMenus(t, db, level, menu)

	// Ada menu dan binding, tapi resource tidak pernah didaftarkan.
	decision, err := access.Check(&level.ID, "reports.index")
	require.NoError(t, err)
	require.Equal(t, DenyUnknownRoute, decision)
}

func TestCheckAllowsOpenRoute(t *testing.T) {
	db := newTestDB(t)
	access := NewAccessService(db)
	access.AllowRoute("dashboard")

	decision, err := access.Check(nil, "dashboard")
	require.NoError(t, err)
	require.Equal(t, Allow, decision)
}

func TestResourcesSorted(t *testing.T) {
	access := NewAccessService(nil)
	access.RegisterResource("users")
	access.RegisterResource("asets")
	access.RegisterResource("menus")

	require.Equal(t, []ResourceKey{"asets", "menus", "users"}, access.Resources())
}
