package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
)

type DashboardHandler struct {
	s service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{s: service}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.s.Summary(c.Context(), GetAgencyID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
