package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type ClientHandler struct {
	s service.ClientService
}

func NewClientHandler(service service.ClientService) *ClientHandler {
	return &ClientHandler{s: service}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.s.List(c.Context(), GetAgencyID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"clients": clients})
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req transfer.ClientCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	clientID, err := h.s.Create(c.Context(), GetAgencyID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "client created",
		"client_id": clientID,
	})
}

func (h *ClientHandler) Info(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid client id",
		})
	}

	client, err := h.s.Info(c.Context(), GetAgencyID(c), int64(clientID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"client": client})
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid client id",
		})
	}

	var req transfer.ClientCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	if err := h.s.Update(c.Context(), GetAgencyID(c), int64(clientID), &req); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "client updated"})
}

// UploadAsset stores a logo, contract or brand manual for the client.
func (h *ClientHandler) UploadAsset(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid client id",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file provided",
		})
	}

	url, err := h.s.UploadAsset(c.Context(), GetAgencyID(c), int64(clientID), c.FormValue("kind"), file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "file uploaded",
		"url":     url,
	})
}

func (h *ClientHandler) Remove(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid client id",
		})
	}

	if err := h.s.Remove(c.Context(), GetAgencyID(c), int64(clientID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "client removed"})
}
