package middleware

import (
	"log/slog"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/repository"
)

type TenantMiddleware struct {
	agencies repository.AgencyRepository
}

func NewTenantMiddleware(agencies repository.AgencyRepository) *TenantMiddleware {
	return &TenantMiddleware{agencies: agencies}
}

// Resolve maps the request host to an agency and stores it in locals. Every
// route except the public approval pages runs behind this; an unknown host is
// a 404, not a fallback tenant.
func (m *TenantMiddleware) Resolve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		host := c.Hostname()
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		host = strings.ToLower(host)

		agency, err := m.agencies.GetByHost(c.Context(), host)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unable to resolve tenant",
			})
		}
		if agency == nil {
			slog.Info("request for unknown host", "host", host)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown domain",
			})
		}

		c.Locals("agency", agency)
		return c.Next()
	}
}
