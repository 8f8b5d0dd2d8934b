// Package principal carries the authenticated actor through a request. The
// HTTP layer resolves a Principal once per request; every core operation takes
// it explicitly instead of reading ambient session state.
package principal

import (
	"errors"

	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const localsKey = "principal"

// Principal is the authenticated actor performing an operation.
type Principal struct {
	ID   uuid.UUID
	Role policy.Role
}

// SubjectFromToken extracts the user id from the verified JWT in Fiber locals.
func SubjectFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// Store saves the resolved principal in Fiber locals.
func Store(c *fiber.Ctx, p Principal) {
	c.Locals(localsKey, p)
}

// FromLocals returns the principal resolved by the middleware, if any.
func FromLocals(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(localsKey).(Principal)
	return p, ok
}
