package server

import (
	"strconv"

	"adboard/internal/models"
	"adboard/internal/repository"
	"adboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateAd handles POST /advertisement
func (s *Server) CreateAd(c *fiber.Ctx) error {
	var req struct {
		Title       string   `json:"title"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		OwnerID     uint     `json:"owner_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	ad, err := s.adService.CreateAd(c.Context(), service.CreateAdInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"id": ad.ID})
}

// GetAd handles GET /advertisement/:id
func (s *Server) GetAd(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ad, err := s.adService.GetAd(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(ad)
}

// SearchAds handles GET /advertisement
//
// Optional query filters: title, description, author (case-insensitive
// substring) and price (exact). Supplied filters combine with AND.
func (s *Server) SearchAds(c *fiber.Ctx) error {
	filter := repository.AdFilter{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Author:      c.Query("author"),
		Limit:       c.QueryInt("limit", repository.DefaultSearchLimit),
		Offset:      c.QueryInt("offset", 0),
	}

	if raw := c.Query("price"); raw != "" {
		price, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return models.RespondWithError(c,
				models.NewValidationError("Invalid price filter"))
		}
		filter.Price = &price
	}

	ads, err := s.adService.SearchAds(c.Context(), filter)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if ads == nil {
		ads = []models.Ad{}
	}

	return c.JSON(fiber.Map{"results": ads})
}

// UpdateAd handles PATCH /advertisement/:id
//
// Only fields present in the body are applied; absent fields keep their
// stored values.
func (s *Server) UpdateAd(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.adService.UpdateAd(c.Context(), id, service.UpdateAdInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(successResponse)
}

// DeleteAd handles DELETE /advertisement/:id
func (s *Server) DeleteAd(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adService.DeleteAd(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(successResponse)
}
