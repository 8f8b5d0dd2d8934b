package middleware

import (
	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/deboeng/careers-backend/internal/principal"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResolvePrincipal turns the verified JWT subject into a Principal, reading
// the role from the store so role changes take effect without re-issuing
// tokens. Runs after JWTProtected.
func ResolvePrincipal(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := principal.SubjectFromToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		}

		var user models.User
		if err := db.Select("id", "role").First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		}

		principal.Store(c, principal.Principal{ID: user.ID, Role: policy.Role(user.Role)})
		return c.Next()
	}
}

// RequireOperation rejects requests whose principal lacks the capability.
// Services re-check on every call; this keeps unauthorized traffic out of the
// admin surface early.
func RequireOperation(op policy.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := principal.FromLocals(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		}
		if !policy.Permits(p.Role, op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Admin access required"))
		}
		return c.Next()
	}
}
