package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type ApprovalHandler struct {
	s service.ApprovalService
}

func NewApprovalHandler(service service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{s: service}
}

// GenerateLink mints (or re-reads) the shareable review link for a post.
func (h *ApprovalHandler) GenerateLink(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid post id",
		})
	}

	link, err := h.s.GenerateLink(c.Context(), GetAgencyID(c), int64(postID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"approval_link": link,
	})
}

// Review serves the public review page data. No session, no tenant: the
// token is the whole credential.
func (h *ApprovalHandler) Review(c *fiber.Ctx) error {
	review, err := h.s.ResolveToken(c.Context(), c.Params("token"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(review)
}

// Decide accepts the client's verdict from the public page.
func (h *ApprovalHandler) Decide(c *fiber.Ctx) error {
	var req transfer.ApprovalDecision
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}
	req.Token = c.Params("token")

	if err := h.s.Decide(c.Context(), &req); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "decision recorded",
	})
}
