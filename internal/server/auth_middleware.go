package server

import (
	"strings"

	"adboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired returns a middleware that resolves the caller's identity from
// the Authorization header before a protected route runs.
//
// The header must be literally "Bearer <token>". A missing or malformed
// header, an invalid or expired token, and a token whose subject no longer
// exists all fail with the same Unauthenticated status.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Authorization header required"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid authorization header format"))
		}

		userID, err := s.tokens.DecodeAccessToken(parts[1])
		if err != nil {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		// The token may outlive the account it was issued for.
		user, err := s.userRepo.GetByID(c.Context(), userID)
		if err != nil {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		c.Locals("userID", user.ID)
		c.Locals("currentUser", user)

		return c.Next()
	}
}
