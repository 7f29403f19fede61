package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/salonsuite/salon-api/internal/services"
	"github.com/salonsuite/salon-api/internal/types"
)

// UserIDKey is the locals key under which RequireUser stores the
// authenticated user id.
const UserIDKey = "userID"

// RequireUser gates a route on a valid Bearer token. A missing token is
// 401; a malformed, tampered or expired one is 400. Only the "get own
// info" route is gated; everything else in this API is deliberately open.
// Failures surface as CustomError and are translated to the response
// envelope by the app error handler.
func RequireUser(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Access denied. No token provided.",
				Type:    "auth.token.missing",
			}
		}

		parts := strings.Fields(auth)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: "Invalid token.",
				Type:    "auth.token.invalid",
			}
		}

		claims, err := services.ParseToken(parts[1], secret)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: "Invalid token.",
				Type:    "auth.token.invalid",
			}
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}
