package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type PostHandler struct {
	s service.SocialPostService
}

func NewPostHandler(service service.SocialPostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req transfer.PostCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	postID, err := h.s.Create(c.Context(), GetAgencyID(c), GetUserID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "post created",
		"post_id": postID,
	})
}

func (h *PostHandler) Info(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid post id",
		})
	}

	post, destinations, err := h.s.Info(c.Context(), GetAgencyID(c), int64(postID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":         post,
		"destinations": destinations,
	})
}

func (h *PostHandler) ListByClient(c *fiber.Ctx) error {
	clientID := c.QueryInt("client", 0)
	if clientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client is required",
		})
	}

	posts, err := h.s.ListByClient(c.Context(), GetAgencyID(c), int64(clientID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"posts": posts})
}

func (h *PostHandler) Remove(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid post id",
		})
	}

	if err := h.s.Remove(c.Context(), GetAgencyID(c), int64(postID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "post removed"})
}
