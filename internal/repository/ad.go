package repository

import (
	"context"
	"errors"
	"strings"

	"adboard/internal/models"

	"gorm.io/gorm"
)

// AdFilter holds the optional search filters for advertisements.
// Text filters match case-insensitive substrings; Price matches exactly.
// All supplied filters are combined with logical AND.
type AdFilter struct {
	Title       string
	Description string
	Author      string
	Price       *float64
	Limit       int
	Offset      int
}

// DefaultSearchLimit caps result sets when no limit is supplied.
const DefaultSearchLimit = 100

// AdRepository defines persistence operations for advertisements.
type AdRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Ad, error)
	Create(ctx context.Context, ad *models.Ad) error
	Update(ctx context.Context, ad *models.Ad) error
	Delete(ctx context.Context, ad *models.Ad) error
	Search(ctx context.Context, filter AdFilter) ([]models.Ad, error)
}

type adRepository struct {
	db *gorm.DB
}

// NewAdRepository returns a new AdRepository implementation.
func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) GetByID(ctx context.Context, id uint) (*models.Ad, error) {
	var ad models.Ad
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Advertisement", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ad, nil
}

func (r *adRepository) Create(ctx context.Context, ad *models.Ad) error {
	if err := r.db.WithContext(ctx).Create(ad).Error; err != nil {
		if isConstraintViolation(err) {
			return models.NewConflictError("Advertisement violates a constraint")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *adRepository) Update(ctx context.Context, ad *models.Ad) error {
	if err := r.db.WithContext(ctx).Save(ad).Error; err != nil {
		if isConstraintViolation(err) {
			return models.NewConflictError("Advertisement violates a constraint")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *adRepository) Delete(ctx context.Context, ad *models.Ad) error {
	if err := r.db.WithContext(ctx).Delete(ad).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Search applies the supplied filters with AND semantics and returns matches
// in store-default order. The author filter matches the owner's username.
func (r *adRepository) Search(ctx context.Context, filter AdFilter) ([]models.Ad, error) {
	query := r.db.WithContext(ctx).Model(&models.Ad{})

	if filter.Title != "" {
		query = query.Where("LOWER(advertisements.title) LIKE ?", containsPattern(filter.Title))
	}
	if filter.Description != "" {
		query = query.Where("LOWER(advertisements.description) LIKE ?", containsPattern(filter.Description))
	}
	if filter.Author != "" {
		query = query.
			Joins("JOIN users ON users.id = advertisements.owner_id").
			Where("LOWER(users.username) LIKE ?", containsPattern(filter.Author))
	}
	if filter.Price != nil {
		query = query.Where("advertisements.price = ?", *filter.Price)
	}

	limit := filter.Limit
	if limit <= 0 || limit > DefaultSearchLimit {
		limit = DefaultSearchLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var ads []models.Ad
	if err := query.Limit(limit).Offset(offset).Find(&ads).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ads, nil
}

// containsPattern builds a case-insensitive substring LIKE pattern.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
