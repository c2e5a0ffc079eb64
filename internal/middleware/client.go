package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// EnsureClientID requires every request to identify its client, through the
// X-Client-ID header or the clientId query parameter.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}

		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Client ID is required. Please ensure client is properly initialized.",
			})
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
