package repository

import (
	"context"
	"testing"

	"adboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestAdRepositoryCreateAssignsStoreFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdRepository(db)
	owner := createTestUser(t, db, "seller")

	ad := &models.Ad{Title: "bike", Price: 50, OwnerID: owner.ID}
	require.NoError(t, repo.Create(context.Background(), ad))

	assert.NotZero(t, ad.ID)
	assert.False(t, ad.CreatedAt.IsZero())
}

func TestAdRepositoryGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
}

func TestAdRepositoryDeleteThenGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "seller")

	ad := &models.Ad{Title: "bike", Price: 50, OwnerID: owner.ID}
	require.NoError(t, repo.Create(ctx, ad))
	require.NoError(t, repo.Delete(ctx, ad))

	_, err := repo.GetByID(ctx, ad.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
}

func TestAdRepositorySearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice")
	bob := createTestUser(t, db, "bob")

	seedAds := []*models.Ad{
		{Title: "Mountain Bike", Description: strPtr("red frame"), Price: 10, OwnerID: alice.ID},
		{Title: "road bike", Description: strPtr("carbon"), Price: 10, OwnerID: bob.ID},
		{Title: "Helmet", Description: strPtr("fits most bikes"), Price: 10, OwnerID: alice.ID},
		{Title: "Sofa", Description: strPtr("three seats"), Price: 200, OwnerID: bob.ID},
	}
	for _, ad := range seedAds {
		require.NoError(t, repo.Create(ctx, ad))
	}

	t.Run("title substring is case-insensitive", func(t *testing.T) {
		ads, err := repo.Search(ctx, AdFilter{Title: "BIKE"})
		require.NoError(t, err)
		assert.Len(t, ads, 2)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		ads, err := repo.Search(ctx, AdFilter{Title: "bike", Price: floatPtr(10)})
		require.NoError(t, err)
		assert.Len(t, ads, 2)

		ads, err = repo.Search(ctx, AdFilter{Title: "bike", Price: floatPtr(200)})
		require.NoError(t, err)
		assert.Empty(t, ads)
	})

	t.Run("price matches exactly", func(t *testing.T) {
		ads, err := repo.Search(ctx, AdFilter{Price: floatPtr(200)})
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, "Sofa", ads[0].Title)
	})

	t.Run("description substring", func(t *testing.T) {
		ads, err := repo.Search(ctx, AdFilter{Description: "carbon"})
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, "road bike", ads[0].Title)
	})

	t.Run("author matches owner username case-insensitively", func(t *testing.T) {
		ads, err := repo.Search(ctx, AdFilter{Author: "alice"})
		require.NoError(t, err)
		assert.Len(t, ads, 2)
	})

	t.Run("no filters returns everything up to the limit", func(t *testing.T) {
		ads, err := repo.Search(ctx, AdFilter{})
		require.NoError(t, err)
		assert.Len(t, ads, 4)
	})

	t.Run("limit and offset paginate", func(t *testing.T) {
		first, err := repo.Search(ctx, AdFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, first, 2)

		rest, err := repo.Search(ctx, AdFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
		assert.NotEqual(t, first[0].ID, rest[0].ID)
	})
}

func TestAdRepositoryInternalErrorTranslation(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdRepository(db)

	// Force a driver failure to exercise the Internal translation path.
	require.NoError(t, db.Migrator().DropTable(&models.Ad{}))

	err := repo.Create(context.Background(), &models.Ad{Title: "x", Price: 1, OwnerID: 1})
	require.Error(t, err)
	assert.Equal(t, models.CodeInternal, err.(*models.AppError).Code)
}
