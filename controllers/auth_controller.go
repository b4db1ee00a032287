package controllers

import (
	"errors"
	"time"

	"portal-app/config"
	"portal-app/models"
	"portal-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}
	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	sessionID := uuid.NewString()
	now := time.Now()

	// default log FAILED, diubah kalau login sukses
	logRow := models.LoginLog{
		SessionID:   sessionID,
		Username:    input.Email,
		LoginAt:     &now,
		IPAddress:   ctx.IP(),
		UserAgent:   string(ctx.Request().Header.UserAgent()),
		LoginStatus: "FAILED",
		CreatedAt:   now,
	}

	var user models.User
	result := c.DB.Preload("UserLevel").Where("email = ?", input.Email).First(&user)
	if result.Error != nil {
		reason := "USER_NOT_FOUND"
		logRow.FailureReason = &reason
		c.DB.Create(&logRow)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid email or password",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Operation failed",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		reason := "WRONG_PASSWORD"
		userID := user.ID
		logRow.UserID = &userID
		logRow.FailureReason = &reason
		c.DB.Create(&logRow)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid email or password",
		})
	}

	userID := user.ID
	logRow.UserID = &userID
	logRow.LoginStatus = "SUCCESS"
	c.DB.Create(&logRow)

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": sessionID,
		"exp":        now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
		"jti":        uuid.NewString(),
	}
	if user.UserLevelID != nil {
		claims["level_id"] = *user.UserLevelID
	}
	if user.UserLevel != nil {
		claims["level_code"] = user.UserLevel.Code
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))
	utils.Log.Info().Uint("user_id", user.ID).Str("session_id", sessionID).Msg("login success")

	return ctx.JSON(fiber.Map{
		"success": true,
		"token":   tokenString,
		"user":    user,
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	now := time.Now()
	result := c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)
	if result.RowsAffected == 0 {
		utils.Log.Warn().Str("session_id", sessionID).Msg("no login log to close on logout")
	}

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (c *AuthController) GetProfile(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	var user models.User
	if err := c.DB.Preload("UserLevel").First(&user, userID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": user})
}
