package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/divisapp/divisa/models"
)

// GetCurrentUser returns the member bound by the Authenticate middleware.
func GetCurrentUser(c *fiber.Ctx) *models.Member {
	member, ok := c.Locals("CurrentUser").(*models.Member)
	if !ok {
		return nil
	}

	return member
}
