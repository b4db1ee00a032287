package middleware

import (
	"portal-app/services"
	"portal-app/utils"

	"github.com/gofiber/fiber/v2"
)

// MenuAccess menjalankan AccessService untuk setiap request pada route
// group resource. Ditolak bukan berarti error keamanan: user hanya
// diarahkan kembali ke dashboard dengan pesan, seperti salah klik menu.
// Frontend menindaklanjuti field redirect.
func MenuAccess(access *services.AccessService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		routeName := ctx.Route().Name
		levelID := LevelIDFromCtx(ctx)

		decision, err := access.Check(levelID, routeName)
		if err != nil {
			utils.Log.Error().Err(err).Str("route", routeName).Msg("access check failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Operation failed",
			})
		}

		if !decision.Allowed() {
			return ctx.Status(fiber.StatusSeeOther).JSON(fiber.Map{
				"success":  false,
				"redirect": "/dashboard",
				"message":  "Anda tidak memiliki akses ke halaman ini.",
			})
		}

		return ctx.Next()
	}
}
