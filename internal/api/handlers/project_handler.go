package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type ProjectHandler struct {
	s service.ProjectService
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{s: service}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	agencyID := GetAgencyID(c)
	clientID := c.QueryInt("client", 0)

	if clientID > 0 {
		projects, err := h.s.ListByClient(c.Context(), agencyID, int64(clientID))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"projects": projects})
	}

	projects, err := h.s.List(c.Context(), agencyID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"projects": projects})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req transfer.ProjectCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	projectID, err := h.s.Create(c.Context(), GetAgencyID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "project created",
		"project_id": projectID,
	})
}

func (h *ProjectHandler) Info(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project id",
		})
	}

	project, err := h.s.Info(c.Context(), GetAgencyID(c), int64(projectID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"project": project})
}

func (h *ProjectHandler) SetStatus(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project id",
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

	if err := h.s.SetStatus(c.Context(), GetAgencyID(c), int64(projectID), req.Status); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "project updated"})
}

func (h *ProjectHandler) Remove(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid project id",
		})
	}

	if err := h.s.Remove(c.Context(), GetAgencyID(c), int64(projectID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "project removed"})
}
