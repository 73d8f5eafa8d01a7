package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/models"
)

func GetUserID(c *fiber.Ctx) int64 {
	userID, _ := strconv.Atoi(c.Locals("user_id").(string))
	return int64(userID)
}

func GetAgency(c *fiber.Ctx) *models.Agency {
	agency, _ := c.Locals("agency").(*models.Agency)
	return agency
}

func GetAgencyID(c *fiber.Ctx) int64 {
	if agency := GetAgency(c); agency != nil {
		return agency.ID
	}
	return 0
}

func IsSuperuser(c *fiber.Ctx) bool {
	su, _ := c.Locals("superuser").(bool)
	return su
}
