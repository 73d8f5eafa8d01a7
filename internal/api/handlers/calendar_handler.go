package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(service service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: service}
}

// Month lists a month's events; defaults to the current month.
func (h *CalendarHandler) Month(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "month must be 1-12",
		})
	}

	events, err := h.s.Month(c.Context(), GetAgencyID(c), year, time.Month(month))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"year":   year,
		"month":  month,
		"events": events,
	})
}

func (h *CalendarHandler) Create(c *fiber.Ctx) error {
	var req transfer.CalendarEventCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	eventID, err := h.s.Create(c.Context(), GetAgencyID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "event created",
		"event_id": eventID,
	})
}

func (h *CalendarHandler) Update(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid event id",
		})
	}

	var req transfer.CalendarEventCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	if err := h.s.Update(c.Context(), GetAgencyID(c), int64(eventID), &req); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "event updated"})
}

func (h *CalendarHandler) SetStatus(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid event id",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	if err := h.s.SetStatus(c.Context(), GetAgencyID(c), int64(eventID), req.Status); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "event updated"})
}

func (h *CalendarHandler) Remove(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid event id",
		})
	}

	if err := h.s.Remove(c.Context(), GetAgencyID(c), int64(eventID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "event removed"})
}
