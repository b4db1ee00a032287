package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"portal-app/controllers/idgen"
	"portal-app/models"
	"portal-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type AsetController struct {
	DB *gorm.DB
}

func NewAsetController(DB *gorm.DB) *AsetController {
	return &AsetController{DB: DB}
}

func (c *AsetController) GetAllAsets(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := 10

	q := c.DB.Model(&models.Aset{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("kode_aset LIKE ? OR nama_aset LIKE ? OR lokasi LIKE ? OR pemilik_aset LIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var asets []models.Aset
	if err := q.Order("created_at desc").Limit(perPage).Offset((page - 1) * perPage).Find(&asets).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    asets,
		"total":   total,
		"page":    page,
	})
}

func (c *AsetController) GetAsetByID(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var aset models.Aset
	if err := c.DB.First(&aset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Aset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": aset})
}

// GetAsetByKode melayani lookup hasil scan QR di label aset.
func (c *AsetController) GetAsetByKode(ctx *fiber.Ctx) error {
	kode := ctx.Params("kode")

	var aset models.Aset
	if err := c.DB.Where("kode_aset = ?", kode).First(&aset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Aset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": aset})
}

type asetInput struct {
	Kode             string  `json:"kode_aset"`
	Nama             string  `json:"nama_aset" validate:"required"`
	Spesifikasi      string  `json:"spesifikasi"`
	Pemilik          string  `json:"pemilik_aset"`
	Kritikalitas     string  `json:"kritikalitas" validate:"omitempty,oneof=Rendah Sedang Tinggi Kritis"`
	Lokasi           string  `json:"lokasi"`
	Label            string  `json:"label"`
	TanggalPerolehan *string `json:"tanggal_perolehan"`
	UsiaAset         *int    `json:"usia_aset"`
	Status           string  `json:"status" validate:"omitempty,oneof=Aktif Maintenance Rusak Dihapus"`
	MetodePemusnahan string  `json:"metode_pemusnahan"`
	Keterangan       string  `json:"keterangan"`
	FotoAset         string  `json:"foto_aset"`
}

func (c *AsetController) CreateAset(ctx *fiber.Ctx) error {
	var input asetInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	kode := strings.TrimSpace(input.Kode)
	if kode == "" {
		next, err := c.nextKode()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		kode = next
	}

	aset := models.Aset{
		ID:               types.SnowflakeID(idgen.GenerateID()),
		Kode:             kode,
		Nama:             input.Nama,
		Spesifikasi:      input.Spesifikasi,
		Pemilik:          input.Pemilik,
		Kritikalitas:     defaultStr(input.Kritikalitas, "Sedang"),
		Lokasi:           input.Lokasi,
		Label:            input.Label,
		UsiaAset:         input.UsiaAset,
		Status:           defaultStr(input.Status, "Aktif"),
		MetodePemusnahan: input.MetodePemusnahan,
		Keterangan:       input.Keterangan,
		FotoAset:         input.FotoAset,
	}
	if input.TanggalPerolehan != nil {
		if t, err := time.Parse("2006-01-02", *input.TanggalPerolehan); err == nil {
			aset.TanggalPerolehan = &t
		}
	}

	if err := c.DB.Create(&aset).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Aset created successfully",
		"data":    aset,
	})
}

func (c *AsetController) UpdateAset(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var aset models.Aset
	if err := c.DB.First(&aset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Aset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input asetInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if kode := strings.TrimSpace(input.Kode); kode != "" {
		var count int64
		if err := c.DB.Model(&models.Aset{}).Where("kode_aset = ? AND id <> ?", kode, id).Count(&count).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if count > 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"field":   "kode_aset",
				"message": "kode aset sudah dipakai",
			})
		}
		aset.Kode = kode
	}

	aset.Nama = input.Nama
	aset.Spesifikasi = input.Spesifikasi
	aset.Pemilik = input.Pemilik
	aset.Kritikalitas = defaultStr(input.Kritikalitas, aset.Kritikalitas)
	aset.Lokasi = input.Lokasi
	aset.Label = input.Label
	aset.UsiaAset = input.UsiaAset
	aset.Status = defaultStr(input.Status, aset.Status)
	aset.MetodePemusnahan = input.MetodePemusnahan
	aset.Keterangan = input.Keterangan
	aset.FotoAset = input.FotoAset
	if input.TanggalPerolehan != nil {
		if t, err := time.Parse("2006-01-02", *input.TanggalPerolehan); err == nil {
			aset.TanggalPerolehan = &t
		}
	}

	if err := c.DB.Save(&aset).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Aset updated successfully",
		"data":    aset,
	})
}

func (c *AsetController) DeleteAset(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var aset models.Aset
	if err := c.DB.First(&aset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Aset not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&aset).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Aset deleted successfully"})
}

// ExportExcel: unduh daftar aset sebagai file Excel.
func (c *AsetController) ExportExcel(ctx *fiber.Ctx) error {
	var asets []models.Aset
	if err := c.DB.Order("kode_aset asc").Find(&asets).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Kode Aset")
	f.SetCellValue(sheet, "B1", "Nama Aset")
	f.SetCellValue(sheet, "C1", "Pemilik")
	f.SetCellValue(sheet, "D1", "Kritikalitas")
	f.SetCellValue(sheet, "E1", "Lokasi")
	f.SetCellValue(sheet, "F1", "Status")
	f.SetCellValue(sheet, "G1", "Keterangan")

	for i, aset := range asets {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), aset.Kode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), aset.Nama)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), aset.Pemilik)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), aset.Kritikalitas)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), aset.Lokasi)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), aset.Status)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), aset.Keterangan)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="asets.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Gagal generate Excel")
	}
	return nil
}

// nextKode meniru penomoran lama: AST-0001, AST-0002, dst.
func (c *AsetController) nextKode() (string, error) {
	var last models.Aset
	err := c.DB.Where("kode_aset LIKE ?", "AST-%").Order("kode_aset desc").First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "AST-0001", nil
		}
		return "", err
	}

	n, err := strconv.Atoi(strings.TrimPrefix(last.Kode, "AST-"))
	if err != nil {
		n = 0
	}
	return fmt.Sprintf("AST-%04d", n+1), nil
}

func defaultStr(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
