// database/seeder.go
package database

import (
	"errors"

	"portal-app/models"
	"portal-app/repositories"
	"portal-app/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUserLevels(db)
	SeedMenus(db)
	SeedMenuBindings(db)
	SeedUserMaster(db)
}

func SeedUserLevels(db *gorm.DB) {
	levels := []models.UserLevel{
		{Name: "IT Support", Code: repositories.ReservedLevelCode, Description: "Akses penuh ke semua fitur", IsActive: true},
		{Name: "Admin", Code: "admin", Description: "Akses administratif", IsActive: true},
		{Name: "Manager", Code: "manager", Description: "Akses level manager", IsActive: true},
		{Name: "Staff", Code: "staff", Description: "Akses dasar staff", IsActive: true},
	}

	for _, level := range levels {
		var existing models.UserLevel
		if err := db.Where("kode_level = ?", level.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&level)
			}
		}
	}
}

func SeedMenus(db *gorm.DB) {
	roots := []models.Menu{
		{Name: "Dashboard", Icon: strPtr("LayoutDashboard"), Route: strPtr("dashboard"), Url: strPtr("/dashboard"), Urutan: 1, IsActive: true},
		{Name: "Master Data", Icon: strPtr("Database"), Urutan: 2, IsActive: true},
		{Name: "Buku Tamu", Icon: strPtr("BookOpen"), Route: strPtr("bukutamu.index"), Url: strPtr("/bukutamu"), Urutan: 3, IsActive: true},
		{Name: "Press Release", Icon: strPtr("FileText"), Route: strPtr("press-releases.index"), Url: strPtr("/press-releases"), Urutan: 4, IsActive: true},
		{Name: "Release", Icon: strPtr("Newspaper"), Route: strPtr("releases.index"), Url: strPtr("/releases"), Urutan: 5, IsActive: true},
	}
	for _, menu := range roots {
		seedMenu(db, menu)
	}

	var masterData models.Menu
	if err := db.Where("nama_menu = ? AND parent_id IS NULL", "Master Data").First(&masterData).Error; err != nil {
		utils.Log.Error().Err(err).Msg("seed: menu Master Data tidak ditemukan")
		return
	}

	children := []models.Menu{
		{Name: "Pengguna", Icon: strPtr("Users"), Route: strPtr("users.index"), Url: strPtr("/users"), ParentID: &masterData.ID, Urutan: 1, IsActive: true},
		{Name: "Level User", Icon: strPtr("Shield"), Route: strPtr("user-levels.index"), Url: strPtr("/user-levels"), ParentID: &masterData.ID, Urutan: 2, IsActive: true},
		{Name: "Menu", Icon: strPtr("Menu"), Route: strPtr("menus.index"), Url: strPtr("/menus"), ParentID: &masterData.ID, Urutan: 3, IsActive: true},
		{Name: "Aset", Icon: strPtr("Package"), Route: strPtr("asets.index"), Url: strPtr("/asets"), ParentID: &masterData.ID, Urutan: 4, IsActive: true},
	}
	for _, menu := range children {
		seedMenu(db, menu)
	}
}

func seedMenu(db *gorm.DB, menu models.Menu) {
	var existing models.Menu
	if err := db.Where("nama_menu = ?", menu.Name).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&menu)
		}
	}
}

// SeedMenuBindings: level reserved melihat semua menu, admin subset
// operasional. Level lain dikosongkan untuk diatur lewat UI.
func SeedMenuBindings(db *gorm.DB) {
	var itSupport models.UserLevel
	if err := db.Where("kode_level = ?", repositories.ReservedLevelCode).First(&itSupport).Error; err == nil {
		var all []models.Menu
		if err := db.Find(&all).Error; err == nil {
			db.Model(&itSupport).Association("Menus").Replace(all)
		}
	}

	var admin models.UserLevel
	if err := db.Where("kode_level = ?", "admin").First(&admin).Error; err == nil {
		var menus []models.Menu
		if err := db.Where("nama_menu IN ?", []string{"Dashboard", "Master Data", "Aset", "Buku Tamu"}).Find(&menus).Error; err == nil {
			db.Model(&admin).Association("Menus").Replace(menus)
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	var itSupport models.UserLevel
	if err := db.Where("kode_level = ?", repositories.ReservedLevelCode).First(&itSupport).Error; err != nil {
		utils.Log.Error().Err(err).Msg("seed: level reserved tidak ditemukan")
		return
	}

	var existing models.User
	err := db.Where("email = ?", "itsupport@portal.local").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Log.Error().Err(err).Msg("seed: gagal membaca user master")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		utils.Log.Error().Err(err).Msg("seed: gagal hash password")
		return
	}

	db.Create(&models.User{
		Name:        "IT Support",
		Email:       "itsupport@portal.local",
		Password:    string(hashed),
		UserLevelID: &itSupport.ID,
	})
}

func strPtr(s string) *string { return &s }
