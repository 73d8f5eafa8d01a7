package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type UserHandler struct {
	s    service.UserService
	auth service.AuthService
}

func NewUserHandler(users service.UserService, auth service.AuthService) *UserHandler {
	return &UserHandler{s: users, auth: auth}
}

func (h *UserHandler) Team(c *fiber.Ctx) error {
	team, err := h.s.Team(c.Context(), GetAgencyID(c), IsSuperuser(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"team": team})
}

func (h *UserHandler) Save(c *fiber.Ctx) error {
	var req transfer.UserUpsert
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	actor, err := h.auth.UserByID(c.Context(), GetUserID(c))
	if err != nil {
		return err
	}

	userID, err := h.s.Save(c.Context(), GetAgencyID(c), actor, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "user saved",
		"user_id": userID,
	})
}

func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	if err := h.s.Deactivate(c.Context(), GetAgencyID(c), int64(userID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "user deactivated"})
}
