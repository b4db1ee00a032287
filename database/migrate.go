// database/migrate.go
package database

import (
	"portal-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserLevel{},
		&models.User{},
		&models.Menu{},
		&models.Aset{},
		&models.BukuTamu{},
		&models.PressRelease{},
		&models.FotoPressRelease{},
		&models.Release{},
		&models.FotoRelease{},
		&models.ConfigWa{},
		&models.LoginLog{},
	)
}
