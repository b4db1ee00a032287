package controllers

import (
	"errors"

	"portal-app/middleware"
	"portal-app/models"
	"portal-app/repositories"
	"portal-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB  *gorm.DB
	Nav *services.NavigationService
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{DB: DB, Nav: services.NewNavigationService(DB)}
}

// GetMenus: pohon menu lengkap untuk halaman administrasi menu.
func (mc *MenuController) GetMenus(ctx *fiber.Ctx) error {
	repo := repositories.NewMenuRepository(mc.DB)
	menus, err := repo.ListRoots()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": menus})
}

// GetMenuUser: sidebar untuk user yang sedang login.
func (mc *MenuController) GetMenuUser(ctx *fiber.Ctx) error {
	items, err := mc.Nav.Build(middleware.LevelIDFromCtx(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": items})
}

// GetParentOptions: kandidat parent untuk form menu.
func (mc *MenuController) GetParentOptions(ctx *fiber.Ctx) error {
	excludeID := ctx.QueryInt("exclude", 0)
	repo := repositories.NewMenuRepository(mc.DB)
	menus, err := repo.ParentOptions(uint(excludeID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": menus})
}

func (mc *MenuController) GetMenuByID(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewMenuRepository(mc.DB)
	menu, err := repo.GetByID(uint(menuID))
	if err != nil {
		return menuError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": menu})
}

type menuInput struct {
	Name       string  `json:"nama_menu" validate:"required"`
	Icon       *string `json:"ikon"`
	Route      *string `json:"route"`
	Url        *string `json:"url"`
	ParentID   *uint   `json:"parent_id"`
	Urutan     int     `json:"urutan" validate:"required"`
	IsActive   *bool   `json:"status_aktif"`
	UserLevels []uint  `json:"user_levels"`
}

func (in *menuInput) toModel() models.Menu {
	menu := models.Menu{
		Name:     in.Name,
		Icon:     in.Icon,
		Route:    in.Route,
		Url:      in.Url,
		ParentID: in.ParentID,
		Urutan:   in.Urutan,
		IsActive: true,
	}
	if in.IsActive != nil {
		menu.IsActive = *in.IsActive
	}
	return menu
}

func (mc *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	var input menuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	menu := input.toModel()
	repo := repositories.NewMenuRepository(mc.DB)
	if err := repo.Create(&menu, input.UserLevels); err != nil {
		return menuError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Menu created successfully",
		"data":    menu,
	})
}

func (mc *MenuController) UpdateMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input menuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	update := input.toModel()
	repo := repositories.NewMenuRepository(mc.DB)
	menu, err := repo.Update(uint(menuID), &update, input.UserLevels)
	if err != nil {
		return menuError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Menu updated successfully",
		"data":    menu,
	})
}

func (mc *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewMenuRepository(mc.DB)
	if err := repo.Delete(uint(menuID)); err != nil {
		return menuError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Menu deleted successfully"})
}

// UpdateMenuLevels mengganti seluruh daftar level sebuah menu sekaligus.
func (mc *MenuController) UpdateMenuLevels(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var body struct {
		UserLevelIDs []uint `json:"user_level_ids"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	repo := repositories.NewMenuRepository(mc.DB)
	if err := repo.ReplaceMenuLevels(uint(menuID), body.UserLevelIDs); err != nil {
		return menuError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Menu levels updated successfully",
	})
}

func menuError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrMenuNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
	case errors.Is(err, repositories.ErrMenuCycle), errors.Is(err, repositories.ErrMenuTooDeep):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"field":   "parent_id",
			"message": err.Error(),
		})
	case errors.Is(err, repositories.ErrLevelNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User level not found"})
	default:
		var vErr *repositories.ValidationError
		if errors.As(err, &vErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"field":   vErr.Field,
				"message": vErr.Message,
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Operation failed"})
	}
}
