package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/config"
	"studyhub/backend/session"
	"studyhub/backend/utils"
)

// AuthMiddleware verifies the token, rejects revoked ones and stores the
// caller's id on the context.
func AuthMiddleware(cfg *config.Config, denylist session.Denylist, logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		revoked, err := denylist.IsRevoked(c.UserContext(), claims.TokenID)
		if err != nil {
			logger.Printf("denylist lookup failed: %v", err)
			return utils.InternalServerError(c, "Could not verify session")
		}
		if revoked {
			return utils.Unauthorized(c, "Session has ended")
		}

		utils.SetCurrentUser(c, claims)
		return c.Next()
	}
}
