package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
)

type MediaHandler struct {
	s service.MediaService
}

func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{s: service}
}

// Browse lists one level of a client's media library. folder=0 is the root.
func (h *MediaHandler) Browse(c *fiber.Ctx) error {
	clientID := c.QueryInt("client", 0)
	if clientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client is required",
		})
	}
	folderID := c.QueryInt("folder", 0)

	folders, files, err := h.s.Browse(c.Context(), GetAgencyID(c), int64(clientID), int64(folderID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"folders": folders,
		"files":   files,
	})
}

func (h *MediaHandler) CreateFolder(c *fiber.Ctx) error {
	var req struct {
		ClientID int64  `json:"client"`
		ParentID int64  `json:"parent"`
		Name     string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	folderID, err := h.s.CreateFolder(c.Context(), GetAgencyID(c), req.ClientID, req.ParentID, req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "folder created",
		"folder_id": folderID,
	})
}

func (h *MediaHandler) RenameFolder(c *fiber.Ctx) error {
	folderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid folder id",
		})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	if err := h.s.RenameFolder(c.Context(), GetAgencyID(c), int64(folderID), req.Name); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "folder renamed"})
}

func (h *MediaHandler) RemoveFolder(c *fiber.Ctx) error {
	folderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid folder id",
		})
	}

	if err := h.s.RemoveFolder(c.Context(), GetAgencyID(c), int64(folderID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "folder removed"})
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	clientID := c.QueryInt("client", 0)
	if clientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client is required",
		})
	}
	folderID := c.QueryInt("folder", 0)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file provided",
		})
	}

	mf, err := h.s.Upload(c.Context(), GetAgencyID(c), int64(clientID), int64(folderID), file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "file uploaded",
		"file":    mf,
	})
}

func (h *MediaHandler) RemoveFile(c *fiber.Ctx) error {
	fileID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid file id",
		})
	}

	if err := h.s.RemoveFile(c.Context(), GetAgencyID(c), int64(fileID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "file removed"})
}
