package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
)

// ResolveRole computes the caller's role once per request from profile-row
// existence and stores it in locals. Having no profile is a valid state: the
// request proceeds with role unresolved and downstream handlers treat it as
// "no authorization", not as an error. Must run after Protected().
func ResolveRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)

		role, profileID, err := models.ResolveRole(db.DB, userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve role",
			})
		}

		c.Locals("role", role)
		c.Locals("profileID", profileID)

		return c.Next()
	}
}

// RequireClient rejects callers that do not resolve to the client role.
func RequireClient() fiber.Handler {
	return requireRole(models.RoleClient)
}

// RequireLawyer rejects callers that do not resolve to the lawyer role.
func RequireLawyer() fiber.Handler {
	return requireRole(models.RoleLawyer)
}

func requireRole(want models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok || role != want {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to perform this action",
			})
		}
		return c.Next()
	}
}
