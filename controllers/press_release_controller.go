package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"portal-app/config"
	"portal-app/middleware"
	"portal-app/models"
	"portal-app/providers"
	"portal-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PressReleaseController struct {
	DB *gorm.DB
}

func NewPressReleaseController(DB *gorm.DB) *PressReleaseController {
	return &PressReleaseController{DB: DB}
}

func (c *PressReleaseController) GetAllPressReleases(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := 10

	q := c.DB.Model(&models.PressRelease{})

	// Staf hanya melihat press release miliknya sendiri.
	levelCode, _ := ctx.Locals("levelCode").(string)
	if !middleware.IsAdminLevel(levelCode) {
		userID, _ := ctx.Locals("userID").(uint)
		q = q.Where("user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var items []models.PressRelease
	if err := q.Preload("User").Preload("Fotos").
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

func (c *PressReleaseController) GetPressReleaseByID(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.PressRelease
	if err := c.DB.Preload("User").Preload("Fotos").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Press release not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": item})
}

type pressReleaseInput struct {
	What           string `form:"what" json:"what" validate:"required"`
	Who            string `form:"who" json:"who" validate:"required"`
	When           string `form:"when" json:"when" validate:"required"`
	Where          string `form:"where" json:"where" validate:"required"`
	Why            string `form:"why" json:"why" validate:"required"`
	How            string `form:"how" json:"how" validate:"required"`
	PemberiKutipan string `form:"pemberi_kutipan" json:"pemberi_kutipan"`
	IsiKutipan     string `form:"isi_kutipan" json:"isi_kutipan"`
}

func (c *PressReleaseController) CreatePressRelease(ctx *fiber.Ctx) error {
	var input pressReleaseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID, _ := ctx.Locals("userID").(uint)

	item := models.PressRelease{
		What:           input.What,
		Who:            input.Who,
		When:           input.When,
		Where:          input.Where,
		Why:            input.Why,
		How:            input.How,
		PemberiKutipan: input.PemberiKutipan,
		IsiKutipan:     input.IsiKutipan,
		UserID:         userID,
		Status:         false,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		fotos, err := c.saveFotos(ctx)
		if err != nil {
			return err
		}
		if fotos != nil {
			fotos.PressReleaseID = item.ID
			if err := tx.Create(fotos).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	go c.notifyPressRelease(item)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Press release created successfully",
		"data":    item,
	})
}

func (c *PressReleaseController) UpdatePressRelease(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.PressRelease
	if err := c.DB.Preload("Fotos").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Press release not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !c.canModify(ctx, &item) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Anda tidak memiliki akses ke halaman ini.",
		})
	}

	var input pressReleaseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item.What = input.What
	item.Who = input.Who
	item.When = input.When
	item.Where = input.Where
	item.Why = input.Why
	item.How = input.How
	item.PemberiKutipan = input.PemberiKutipan
	item.IsiKutipan = input.IsiKutipan

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		fotos, err := c.saveFotos(ctx)
		if err != nil {
			return err
		}
		if fotos != nil {
			// Upload baru mengganti set foto lama.
			if err := tx.Where("press_release_id = ?", item.ID).Delete(&models.FotoPressRelease{}).Error; err != nil {
				return err
			}
			fotos.PressReleaseID = item.ID
			if err := tx.Create(fotos).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Press release updated successfully",
		"data":    item,
	})
}

func (c *PressReleaseController) DeletePressRelease(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.PressRelease
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Press release not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !c.canModify(ctx, &item) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Anda tidak memiliki akses ke halaman ini.",
		})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("press_release_id = ?", item.ID).Delete(&models.FotoPressRelease{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Press release deleted successfully"})
}

// canModify: pemilik atau admin.
func (c *PressReleaseController) canModify(ctx *fiber.Ctx, item *models.PressRelease) bool {
	levelCode, _ := ctx.Locals("levelCode").(string)
	if middleware.IsAdminLevel(levelCode) {
		return true
	}
	userID, _ := ctx.Locals("userID").(uint)
	return item.UserID == userID
}

// saveFotos menyimpan lampiran foto1..foto5 dari multipart form.
// Mengembalikan nil bila tidak ada satu pun file foto dikirim.
func (c *PressReleaseController) saveFotos(ctx *fiber.Ctx) (*models.FotoPressRelease, error) {
	fotos := &models.FotoPressRelease{}
	slots := []**string{&fotos.Foto1, &fotos.Foto2, &fotos.Foto3, &fotos.Foto4, &fotos.Foto5}

	found := false
	for i, slot := range slots {
		field := fmt.Sprintf("foto%d", i+1)
		file, err := ctx.FormFile(field)
		if err != nil || file == nil {
			continue
		}

		name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102150405"), uuid.NewString()[:8], filepath.Ext(file.Filename))
		if err := ctx.SaveFile(file, filepath.Join(config.UploadDir, name)); err != nil {
			return nil, err
		}
		*slot = &name
		found = true
	}

	if !found {
		return nil, nil
	}
	return fotos, nil
}

func (c *PressReleaseController) notifyPressRelease(item models.PressRelease) {
	gateway, err := providers.NewWhatsAppGateway(c.DB)
	if err != nil {
		utils.Log.Warn().Err(err).Msg("whatsapp gateway unavailable, skip notify")
		return
	}

	msg := fmt.Sprintf("Press release baru masuk:\nWhat: %s\nWho: %s\nWhen: %s\nWhere: %s", item.What, item.Who, item.When, item.Where)
	if err := gateway.SendText(gateway.NotifyNumber(), msg); err != nil {
		utils.Log.Warn().Err(err).Uint("press_release_id", item.ID).Msg("failed to send press release notification")
	}
}
