package controllers

import (
	"time"

	"portal-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

// GetSummary mengembalikan angka ringkasan untuk halaman dashboard.
func (c *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	var (
		totalUsers    int64
		totalAsets    int64
		totalTamu     int64
		tamuHariIni   int64
		totalPress    int64
		totalReleases int64
	)

	if err := c.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.Aset{}).Count(&totalAsets).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.BukuTamu{}).Count(&totalTamu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	if err := c.DB.Model(&models.BukuTamu{}).Where("tanggal >= ?", startOfDay).Count(&tamuHariIni).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.PressRelease{}).Count(&totalPress).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.Release{}).Count(&totalReleases).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_users":         totalUsers,
			"total_asets":         totalAsets,
			"total_tamu":          totalTamu,
			"tamu_hari_ini":       tamuHariIni,
			"total_press_release": totalPress,
			"total_release":       totalReleases,
		},
	})
}
