package database

import (
	"fmt"

	"portal-app/config"
	"portal-app/utils"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// Connect membuka koneksi Gorm sesuai DB_DRIVER (mysql, postgres, mssql).
func Connect() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBName, config.DBPort)
		dialector = postgres.Open(dsn)
	case "mssql", "sqlserver":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)
		dialector = sqlserver.Open(dsn)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	utils.Log.Info().Str("driver", config.DBDriver).Str("database", config.DBName).Msg("connected to database")
	return db, nil
}
