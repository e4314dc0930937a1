// Package middleware contains the HTTP middleware for the Golf Scorecard API:
// authentication and role-based access control. Middleware runs on every
// request before the route handlers, which makes it the place for
// cross-cutting concerns.
package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/trentd187/golf-scorecard/internal/config"
	"github.com/trentd187/golf-scorecard/internal/models"
)

// Claims is the data we expect inside a Clerk JWT payload: the standard
// registered fields (Subject carries the Clerk user ID) plus the custom
// claims configured in the Clerk JWT template:
//
//	"role":  "{{user.public_metadata.role}}"
//	"email": "{{user.primary_email_address}}"
//	"name":  "{{user.full_name}}"
//
// When the template lacks the custom claims, role defaults to "user" and
// email/name fall back to placeholders.
type Claims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Auth returns a Fiber middleware that validates the bearer token, lazily
// syncs the user into our database (first authenticated request creates the
// row), and stores the user's internal UUID and role in the request context
// for downstream handlers.
func Auth(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		// TODO: replace ParseUnverified with full JWKS signature
		// verification before production; unverified parsing is a
		// development convenience only.
		token, _, err := jwt.NewParser().ParseUnverified(tokenStr, &Claims{})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token claims",
			})
		}

		clerkUserID := claims.Subject
		if clerkUserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing subject",
			})
		}

		role := roleFromClaim(claims.Role)

		// Deterministic placeholders when the JWT template doesn't carry
		// the email/name claims yet.
		email := claims.Email
		if email == "" {
			email = fmt.Sprintf("%s@clerk.local", clerkUserID)
		}
		name := claims.Name
		if name == "" {
			name = "User"
		}

		var user models.User
		result := db.Where("clerk_id = ?", clerkUserID).First(&user)
		if result.Error != nil {
			if result.Error != gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "database error",
				})
			}
			user = models.User{
				ClerkID:     &clerkUserID,
				DisplayName: name,
				Email:       email,
				Role:        role,
			}
			if err := db.Create(&user).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to create user record",
				})
			}
		} else if user.Role != role && claims.Role != "" {
			// Role changed in Clerk since the last request: sync it down.
			db.Model(&user).Update("role", role)
			user.Role = role
		}

		c.Locals("userID", user.ID.String())
		c.Locals("userRole", string(user.Role))
		return c.Next()
	}
}

// roleFromClaim converts the raw role claim into our typed enum, defaulting
// to the least privileged role when the claim is missing or unrecognised.
func roleFromClaim(s string) models.UserRole {
	switch s {
	case "admin":
		return models.UserRoleAdmin
	case "manager":
		return models.UserRoleManager
	default:
		return models.UserRoleUser
	}
}
