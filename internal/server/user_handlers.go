package server

import (
	"adboard/internal/models"
	"adboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /user
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string       `json:"username"`
		Password string       `json:"password"`
		Group    models.Group `json:"group"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Group:    req.Group,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"id": user.ID})
}

// Login handles POST /login
//
// The response for an unknown username and for a wrong password is identical,
// so the endpoint cannot be used to enumerate accounts.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	token, err := s.userService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// GetUser handles GET /user/:id and returns public fields only.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(user.Public())
}

// UpdateUser handles PATCH /user/:id (bearer token required)
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	current, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Username *string       `json:"username"`
		Password *string       `json:"password"`
		Group    *models.Group `json:"group"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.userService.UpdateUser(c.Context(), current, id, service.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Group:    req.Group,
	}); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(successResponse)
}
