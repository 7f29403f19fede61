package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const defaultAPIVersion = "1.0.0"

// Version parses the X-Api-Version header, stores it in locals and echoes
// it on the response so clients can detect a mismatch.
func Version() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", defaultAPIVersion)
		if version == "1.0" {
			version = defaultAPIVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
