package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"portal-app/controllers/idgen"
	"portal-app/models"
	"portal-app/providers"
	"portal-app/types"
	"portal-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type BukuTamuController struct {
	DB *gorm.DB
}

func NewBukuTamuController(DB *gorm.DB) *BukuTamuController {
	return &BukuTamuController{DB: DB}
}

func (c *BukuTamuController) GetAllTamu(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := 10

	q := c.DB.Model(&models.BukuTamu{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("nama_lengkap LIKE ? OR instansi LIKE ? OR bertemu_dengan LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var tamu []models.BukuTamu
	if err := q.Order("tanggal desc").Limit(perPage).Offset((page - 1) * perPage).Find(&tamu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    tamu,
		"total":   total,
		"page":    page,
	})
}

func (c *BukuTamuController) GetTamuByID(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var tamu models.BukuTamu
	if err := c.DB.First(&tamu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tamu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": tamu})
}

type bukuTamuInput struct {
	NamaLengkap   string `json:"nama_lengkap" validate:"required"`
	Instansi      string `json:"instansi" validate:"required"`
	NomorTelepon  string `json:"nomor_telepon" validate:"required"`
	BertemuDengan string `json:"bertemu_dengan" validate:"required"`
	Keperluan     string `json:"keperluan" validate:"required"`
}

// RegisterTamu menerima isian form tamu dari halaman publik (tanpa login).
func (c *BukuTamuController) RegisterTamu(ctx *fiber.Ctx) error {
	var input bukuTamuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tamu := models.BukuTamu{
		ID:            types.SnowflakeID(idgen.GenerateID()),
		NamaLengkap:   input.NamaLengkap,
		Instansi:      input.Instansi,
		Tanggal:       time.Now(),
		NomorTelepon:  input.NomorTelepon,
		BertemuDengan: input.BertemuDengan,
		Keperluan:     input.Keperluan,
		Status:        false,
	}

	if err := c.DB.Create(&tamu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Notifikasi WA best-effort, jangan gagalkan pendaftaran tamu.
	go c.notifyTamu(tamu)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Terima kasih, data kunjungan Anda sudah tercatat",
		"data":    tamu,
	})
}

func (c *BukuTamuController) notifyTamu(tamu models.BukuTamu) {
	gateway, err := providers.NewWhatsAppGateway(c.DB)
	if err != nil {
		utils.Log.Warn().Err(err).Msg("whatsapp gateway unavailable, skip notify")
		return
	}

	msg := fmt.Sprintf(
		"Tamu baru: %s dari %s ingin bertemu %s.\nKeperluan: %s\nTelepon: %s",
		tamu.NamaLengkap, tamu.Instansi, tamu.BertemuDengan, tamu.Keperluan, tamu.NomorTelepon,
	)
	if err := gateway.SendText(gateway.NotifyNumber(), msg); err != nil {
		utils.Log.Warn().Err(err).Int64("tamu_id", int64(tamu.ID)).Msg("failed to send guest notification")
	}
}

// ToggleStatus menandai tamu sudah/belum ditemui.
func (c *BukuTamuController) ToggleStatus(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var tamu models.BukuTamu
	if err := c.DB.First(&tamu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tamu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	tamu.Status = !tamu.Status
	if err := c.DB.Save(&tamu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": tamu})
}

func (c *BukuTamuController) DeleteTamu(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	result := c.DB.Delete(&models.BukuTamu{}, "id = ?", id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tamu not found"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Tamu deleted successfully"})
}

func (c *BukuTamuController) ExportExcel(ctx *fiber.Ctx) error {
	var tamu []models.BukuTamu
	if err := c.DB.Order("tanggal desc").Find(&tamu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Tanggal")
	f.SetCellValue(sheet, "B1", "Nama Lengkap")
	f.SetCellValue(sheet, "C1", "Instansi")
	f.SetCellValue(sheet, "D1", "Nomor Telepon")
	f.SetCellValue(sheet, "E1", "Bertemu Dengan")
	f.SetCellValue(sheet, "F1", "Keperluan")
	f.SetCellValue(sheet, "G1", "Sudah Ditemui")

	for i, t := range tamu {
		row := i + 2
		status := "Belum"
		if t.Status {
			status = "Sudah"
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), t.Tanggal.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.NamaLengkap)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.Instansi)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), t.NomorTelepon)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), t.BertemuDengan)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), t.Keperluan)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), status)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="buku_tamu.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Gagal generate Excel")
	}
	return nil
}
