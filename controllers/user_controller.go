package controllers

import (
	"errors"

	"portal-app/models"
	"portal-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := 10

	q := c.DB.Model(&models.User{}).Preload("UserLevel")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"name LIKE ? OR email LIKE ? OR user_level_id IN (?)",
			like, like,
			c.DB.Model(&models.UserLevel{}).Select("id").Where("nama_level LIKE ?", like),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var users []models.User
	if err := q.Order("created_at desc").Limit(perPage).Offset((page - 1) * perPage).Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    users,
		"total":   total,
		"page":    page,
	})
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var user models.User
	if err := c.DB.Preload("UserLevel").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": user})
}

// GetLevelOptions mengembalikan level aktif yang boleh dipasang ke user.
// Level reserved tidak pernah ada di daftar ini.
func (c *UserController) GetLevelOptions(ctx *fiber.Ctx) error {
	repo := repositories.NewUserLevelRepository(c.DB)
	levels, err := repo.List(true)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": levels})
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name" validate:"required,min=3"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		UserLevelID uint   `json:"user_level_id" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	levelRepo := repositories.NewUserLevelRepository(c.DB)
	if _, err := levelRepo.GetByID(input.UserLevelID); err != nil {
		return levelError(ctx, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    string(hashed),
		UserLevelID: &input.UserLevelID,
	}

	if err := c.DB.Create(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var user models.User
	if err := c.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name        string `json:"name" validate:"required,min=3"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"omitempty,min=8"`
		UserLevelID uint   `json:"user_level_id" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	levelRepo := repositories.NewUserLevelRepository(c.DB)
	if _, err := levelRepo.GetByID(input.UserLevelID); err != nil {
		return levelError(ctx, err)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.UserLevelID = &input.UserLevelID
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
		}
		user.Password = string(hashed)
	}

	if err := c.DB.Save(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var user models.User
	if err := c.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}

// levelError menerjemahkan error repository level ke respons HTTP.
func levelError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrLevelProtected):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Level ini dilindungi dan tidak bisa dikelola.",
		})
	case errors.Is(err, repositories.ErrLevelNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User level not found"})
	case errors.Is(err, repositories.ErrLevelInUse):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Level masih dipakai user dan tidak bisa dihapus.",
		})
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
