package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	config "github.com/mvduarte/agencyhub/configs"
	"github.com/mvduarte/agencyhub/internal/service"
)

type PlatformHandler struct {
	s   service.PlatformService
	cfg *config.Config
}

func NewPlatformHandler(service service.PlatformService, cfg *config.Config) *PlatformHandler {
	return &PlatformHandler{s: service, cfg: cfg}
}

// Connect starts a provider consent flow for one client.
func (h *PlatformHandler) Connect(c *fiber.Ctx) error {
	clientID := c.QueryInt("client", 0)
	if clientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client is required",
		})
	}

	authURL, err := h.s.AuthURL(c.Context(), GetAgencyID(c), GetUserID(c), int64(clientID), c.Params("platform"))
	if err != nil {
		return err
	}
	return c.Redirect(authURL)
}

// Callback receives the provider redirect. The signed state carries the
// tenant, so this route does not sit behind the session middleware.
func (h *PlatformHandler) Callback(c *fiber.Ctx) error {
	clientID, err := h.s.HandleCallback(c.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		return err
	}
	return c.Redirect(fmt.Sprintf("%s/clients/%d/accounts", h.cfg.BaseURL, clientID), fiber.StatusTemporaryRedirect)
}

func (h *PlatformHandler) List(c *fiber.Ctx) error {
	clientID := c.QueryInt("client", 0)
	if clientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client is required",
		})
	}

	accounts, err := h.s.List(c.Context(), GetAgencyID(c), int64(clientID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"accounts": accounts})
}

func (h *PlatformHandler) Disconnect(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid account id",
		})
	}

	if err := h.s.Disconnect(c.Context(), GetAgencyID(c), int64(accountID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "account disconnected"})
}
