package middleware

import (
	"strings"

	"go-medisales-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the Bearer token and puts the session principal in
// the request locals for downstream handlers.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("subject_id", claims.SubjectID.String())
		c.Locals("subject_kind", claims.SubjectKind)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequireRole gates a route on the principal's role (set by RequireAuth).
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}
		if role != requiredRole {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + requiredRole + "' role",
			})
		}
		return c.Next()
	}
}
