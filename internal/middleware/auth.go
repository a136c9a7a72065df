package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// TokenLocal is the fiber.Ctx locals key holding the caller's bearer token.
const TokenLocal = "auth_token"

// BearerToken picks up an optional "Authorization: Bearer <token>" header so it
// can be forwarded to the movie API. Requests without the header pass through;
// malformed headers are rejected.
func BearerToken() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid Authorization header format, expected 'Bearer <token>'",
			})
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "empty bearer token",
			})
		}

		c.Locals(TokenLocal, token)
		return c.Next()
	}
}

// RequireAuth rejects requests that did not carry a bearer token. It must run
// after BearerToken.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		if Token(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}
		return c.Next()
	}
}

// Token returns the bearer token stored by BearerToken, if any.
func Token(c fiber.Ctx) string {
	t, _ := c.Locals(TokenLocal).(string)
	return t
}
