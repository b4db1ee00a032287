package middleware

import (
	"strings"

	"portal-app/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware memvalidasi bearer token dan menaruh identitas user di
// context: userID, levelID (bisa nil untuk user tanpa level), levelCode,
// dan sessionID.
func AuthMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing Authorization header",
		})
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid Authorization header format",
		})
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
			"error":   err.Error(),
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
		})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid user ID",
		})
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid sessionID",
		})
	}

	// level_id boleh kosong: user tanpa level tetap boleh login, hanya
	// tidak punya akses menu apa pun.
	var levelID *uint
	if raw, ok := claims["level_id"].(float64); ok {
		id := uint(raw)
		levelID = &id
	}
	levelCode, _ := claims["level_code"].(string)

	ctx.Locals("userID", uint(userID))
	ctx.Locals("sessionID", sessionID)
	ctx.Locals("levelID", levelID)
	ctx.Locals("levelCode", levelCode)

	return ctx.Next()
}

// LevelIDFromCtx membaca level user dari context auth.
func LevelIDFromCtx(ctx *fiber.Ctx) *uint {
	if levelID, ok := ctx.Locals("levelID").(*uint); ok {
		return levelID
	}
	return nil
}

// IsAdminLevel: admin dan level reserved diperlakukan sebagai admin pada
// workflow approval.
func IsAdminLevel(code string) bool {
	return code == "admin" || code == "it_support"
}
