// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"adboard/internal/models"
	"adboard/internal/repository"
)

// AdService implements advertisement lifecycle operations.
type AdService struct {
	adRepo repository.AdRepository
}

// CreateAdInput carries the fields for a new advertisement. ID and CreatedAt
// are left for the store to assign.
type CreateAdInput struct {
	Title       string
	Description *string
	Price       *float64
	OwnerID     uint
}

// UpdateAdInput carries a partial patch; nil fields are left untouched.
type UpdateAdInput struct {
	Title       *string
	Description *string
	Price       *float64
}

// NewAdService returns a new AdService.
func NewAdService(adRepo repository.AdRepository) *AdService {
	return &AdService{adRepo: adRepo}
}

// CreateAd validates required fields and persists a new advertisement.
func (s *AdService) CreateAd(ctx context.Context, in CreateAdInput) (*models.Ad, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Price == nil {
		return nil, models.NewValidationError("Price is required")
	}
	if *in.Price < 0 {
		return nil, models.NewValidationError("Price must not be negative")
	}
	if in.OwnerID == 0 {
		return nil, models.NewValidationError("Owner ID is required")
	}

	ad := &models.Ad{
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		OwnerID:     in.OwnerID,
	}
	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// GetAd fetches an advertisement by id.
func (s *AdService) GetAd(ctx context.Context, id uint) (*models.Ad, error) {
	return s.adRepo.GetByID(ctx, id)
}

// SearchAds returns advertisements matching the filter.
func (s *AdService) SearchAds(ctx context.Context, filter repository.AdFilter) ([]models.Ad, error) {
	return s.adRepo.Search(ctx, filter)
}

// UpdateAd applies a partial patch to an existing advertisement. Only fields
// present in the patch are mutated; everything else keeps its stored value.
func (s *AdService) UpdateAd(ctx context.Context, id uint, in UpdateAdInput) (*models.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title must not be empty")
		}
		ad.Title = *in.Title
	}
	if in.Description != nil {
		ad.Description = in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, models.NewValidationError("Price must not be negative")
		}
		ad.Price = *in.Price
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// DeleteAd removes an advertisement, failing with NotFound when it is absent.
func (s *AdService) DeleteAd(ctx context.Context, id uint) error {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.adRepo.Delete(ctx, ad)
}
