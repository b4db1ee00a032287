package controllers

import (
	"portal-app/models"
	"portal-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserLevelController struct {
	DB *gorm.DB
}

func NewUserLevelController(DB *gorm.DB) *UserLevelController {
	return &UserLevelController{DB: DB}
}

func (c *UserLevelController) GetAllLevels(ctx *fiber.Ctx) error {
	repo := repositories.NewUserLevelRepository(c.DB)
	levels, err := repo.List(ctx.QueryBool("active_only", false))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": levels})
}

func (c *UserLevelController) GetLevelByID(ctx *fiber.Ctx) error {
	levelID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewUserLevelRepository(c.DB)
	level, err := repo.GetByID(uint(levelID))
	if err != nil {
		return levelError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": level})
}

func (c *UserLevelController) CreateLevel(ctx *fiber.Ctx) error {
	var input struct {
		Name        string `json:"nama_level" validate:"required"`
		Code        string `json:"kode_level" validate:"required"`
		Description string `json:"keterangan"`
		IsActive    *bool  `json:"status_aktif"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	level := models.UserLevel{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		level.IsActive = *input.IsActive
	}

	repo := repositories.NewUserLevelRepository(c.DB)
	if err := repo.Create(&level); err != nil {
		return levelError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User level created successfully",
		"data":    level,
	})
}

func (c *UserLevelController) UpdateLevel(ctx *fiber.Ctx) error {
	levelID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Name        string `json:"nama_level" validate:"required"`
		Code        string `json:"kode_level" validate:"required"`
		Description string `json:"keterangan"`
		IsActive    *bool  `json:"status_aktif"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	update := models.UserLevel{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		update.IsActive = *input.IsActive
	}

	repo := repositories.NewUserLevelRepository(c.DB)
	level, err := repo.Update(uint(levelID), &update)
	if err != nil {
		return levelError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "User level updated successfully",
		"data":    level,
	})
}

func (c *UserLevelController) DeleteLevel(ctx *fiber.Ctx) error {
	levelID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewUserLevelRepository(c.DB)
	if err := repo.Delete(uint(levelID)); err != nil {
		return levelError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "User level deleted successfully"})
}

// UpdateLevelMenus mengganti seluruh daftar menu sebuah level sekaligus.
func (c *UserLevelController) UpdateLevelMenus(ctx *fiber.Ctx) error {
	levelID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		MenuIDs []uint `json:"menu_ids"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	levelRepo := repositories.NewUserLevelRepository(c.DB)
	if _, err := levelRepo.GetByID(uint(levelID)); err != nil {
		return levelError(ctx, err)
	}

	menuRepo := repositories.NewMenuRepository(c.DB)
	if err := menuRepo.ReplaceLevelMenus(uint(levelID), body.MenuIDs); err != nil {
		return menuError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Level menus updated successfully",
	})
}
