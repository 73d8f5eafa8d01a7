package middleware

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	config "github.com/mvduarte/agencyhub/configs"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

type AuthMiddleware struct {
	cfg *config.Config
}

func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireSession validates the login cookie and checks that the session was
// created on the tenant serving this request. A session from another agency's
// domain is rejected even when the signature is valid; superusers are exempt.
func (m *AuthMiddleware) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not logged in",
			})
		}

		claims, err := utils.ValidateSessionToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired session",
			})
		}

		agency, ok := c.Locals("agency").(*models.Agency)
		if !ok {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "tenant not resolved",
			})
		}

		sessionAgency, err := strconv.ParseInt(claims.AgencyID, 10, 64)
		if err != nil || (sessionAgency != agency.ID && !claims.Superuser) {
			slog.Info("session agency does not match request tenant",
				"session_agency", claims.AgencyID, "tenant", agency.ID)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "session does not belong to this agency",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("superuser", claims.Superuser)
		return c.Next()
	}
}
