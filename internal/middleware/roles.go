package middleware

// roles.go — role-based access control. The platform has three roles
// (admin, manager, user); routes that require specific permissions apply
// RequireRole after Auth, since Auth is what populates "userRole" in the
// request context.

import "github.com/gofiber/fiber/v2"

// RequireRole returns a middleware allowing only users whose role matches
// one of the given roles; anyone else gets 403 Forbidden. Variadic so a
// route can allow several roles in one call:
//
//	app.Post("/courses", middleware.RequireRole("admin", "manager"), handlers.CreateCourse(db))
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("userRole").(string)
		if !ok || userRole == "" {
			// No role in context: Auth wasn't applied or failed silently.
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}
		for _, role := range roles {
			if userRole == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}
