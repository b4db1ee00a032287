package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"portal-app/middleware"
	"portal-app/models"
	"portal-app/providers"
	"portal-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReleaseController struct {
	DB *gorm.DB
}

func NewReleaseController(DB *gorm.DB) *ReleaseController {
	return &ReleaseController{DB: DB}
}

func (c *ReleaseController) GetAllReleases(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := 10

	q := c.DB.Model(&models.Release{})

	levelCode, _ := ctx.Locals("levelCode").(string)
	if !middleware.IsAdminLevel(levelCode) {
		userID, _ := ctx.Locals("userID").(uint)
		q = q.Where("user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var items []models.Release
	if err := q.Preload("User").Preload("PressRelease").Preload("Fotos").
		Order("created_at desc").Limit(perPage).Offset((page - 1) * perPage).
		Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"total":   total,
		"page":    page,
	})
}

// GetPublicReleases menampilkan release yang sudah disetujui, untuk halaman publik.
func (c *ReleaseController) GetPublicReleases(ctx *fiber.Ctx) error {
	var items []models.Release
	if err := c.DB.Preload("Fotos").
		Where("status = ?", true).
		Order("tanggal_publikasi desc").
		Limit(20).
		Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": items})
}

func (c *ReleaseController) GetReleaseByID(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.Release
	if err := c.DB.Preload("User").Preload("PressRelease").Preload("Fotos").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Release not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": item})
}

type releaseInput struct {
	Judul            string `json:"judul" validate:"required"`
	IsiBerita        string `json:"isi_berita" validate:"required"`
	TanggalPublikasi string `json:"tanggal_publikasi"`
	PressReleaseID   *uint  `json:"press_release_id"`
}

func (c *ReleaseController) CreateRelease(ctx *fiber.Ctx) error {
	var input releaseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID, _ := ctx.Locals("userID").(uint)

	item := models.Release{
		Judul:            input.Judul,
		IsiBerita:        input.IsiBerita,
		TanggalPublikasi: time.Now(),
		PressReleaseID:   input.PressReleaseID,
		UserID:           userID,
		Status:           false,
	}
	if input.TanggalPublikasi != "" {
		if t, err := time.Parse("2006-01-02", input.TanggalPublikasi); err == nil {
			item.TanggalPublikasi = t
		}
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if input.PressReleaseID != nil {
			var pr models.PressRelease
			if err := tx.Preload("Fotos").First(&pr, *input.PressReleaseID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("press release %d tidak ditemukan", *input.PressReleaseID)
				}
				return err
			}

			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			// Foto ikut dari press release asal.
			for _, src := range pr.Fotos {
				foto := models.FotoRelease{
					ReleaseID: item.ID,
					Foto1:     src.Foto1,
					Foto2:     src.Foto2,
					Foto3:     src.Foto3,
					Foto4:     src.Foto4,
					Foto5:     src.Foto5,
				}
				if err := tx.Create(&foto).Error; err != nil {
					return err
				}
			}

			// Tandai press release sudah diangkat jadi release.
			return tx.Model(&pr).Update("status", true).Error
		}

		return tx.Create(&item).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	go c.notifyNewsroom(item)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Release created successfully",
		"data":    item,
	})
}

func (c *ReleaseController) UpdateRelease(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.Release
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Release not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	levelCode, _ := ctx.Locals("levelCode").(string)
	userID, _ := ctx.Locals("userID").(uint)
	if !middleware.IsAdminLevel(levelCode) && item.UserID != userID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Anda tidak memiliki akses ke halaman ini.",
		})
	}

	var input releaseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item.Judul = input.Judul
	item.IsiBerita = input.IsiBerita
	if input.TanggalPublikasi != "" {
		if t, err := time.Parse("2006-01-02", input.TanggalPublikasi); err == nil {
			item.TanggalPublikasi = t
		}
	}

	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Release updated successfully",
		"data":    item,
	})
}

// UpdateStatus menyetujui atau menarik release. Hanya admin.
func (c *ReleaseController) UpdateStatus(ctx *fiber.Ctx) error {
	levelCode, _ := ctx.Locals("levelCode").(string)
	if !middleware.IsAdminLevel(levelCode) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Anda tidak memiliki akses ke halaman ini.",
		})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status bool `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var item models.Release
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Release not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	item.Status = input.Status
	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": item})
}

func (c *ReleaseController) DeleteRelease(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.Release
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Release not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	levelCode, _ := ctx.Locals("levelCode").(string)
	userID, _ := ctx.Locals("userID").(uint)
	if !middleware.IsAdminLevel(levelCode) && item.UserID != userID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Anda tidak memiliki akses ke halaman ini.",
		})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("release_id = ?", item.ID).Delete(&models.FotoRelease{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Release deleted successfully"})
}

func (c *ReleaseController) notifyNewsroom(item models.Release) {
	subject := "Release baru: " + item.Judul
	body := fmt.Sprintf("<p>Release <b>%s</b> telah dibuat dan menunggu persetujuan.</p><p>%s</p>", item.Judul, item.IsiBerita)
	if err := providers.SendNewsroomMail(subject, body); err != nil {
		utils.Log.Warn().Err(err).Uint("release_id", item.ID).Msg("failed to send newsroom mail")
	}
}
