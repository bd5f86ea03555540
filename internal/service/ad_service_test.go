package service

import (
	"context"
	"testing"

	"adboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestCreateAdValidation(t *testing.T) {
	svc, _ := newTestAdService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateAdInput
	}{
		{"missing title", CreateAdInput{Price: floatPtr(10), OwnerID: 1}},
		{"missing price", CreateAdInput{Title: "bike", OwnerID: 1}},
		{"negative price", CreateAdInput{Title: "bike", Price: floatPtr(-1), OwnerID: 1}},
		{"missing owner", CreateAdInput{Title: "bike", Price: floatPtr(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAd(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, models.CodeValidation, err.(*models.AppError).Code)
		})
	}
}

func TestCreateAdThenGet(t *testing.T) {
	svc, db := newTestAdService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller", models.GroupUser)

	ad, err := svc.CreateAd(ctx, CreateAdInput{
		Title:   "bike",
		Price:   floatPtr(50),
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	assert.Positive(t, ad.ID)

	got, err := svc.GetAd(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "bike", got.Title)
	assert.Equal(t, 50.0, got.Price)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.Nil(t, got.Description)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUpdateAdPartialPatch(t *testing.T) {
	svc, db := newTestAdService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller", models.GroupUser)

	ad, err := svc.CreateAd(ctx, CreateAdInput{
		Title:       "bike",
		Description: strPtr("red frame"),
		Price:       floatPtr(50),
		OwnerID:     owner.ID,
	})
	require.NoError(t, err)
	createdAt := ad.CreatedAt

	// Patch only the price; every other field must keep its stored value.
	_, err = svc.UpdateAd(ctx, ad.ID, UpdateAdInput{Price: floatPtr(45)})
	require.NoError(t, err)

	got, err := svc.GetAd(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "bike", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "red frame", *got.Description)
	assert.Equal(t, 45.0, got.Price)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.Equal(t, createdAt.Unix(), got.CreatedAt.Unix())
}

func TestUpdateAdNotFound(t *testing.T) {
	svc, _ := newTestAdService(t)

	_, err := svc.UpdateAd(context.Background(), 999, UpdateAdInput{Title: strPtr("x")})
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
}

func TestDeleteAdTwice(t *testing.T) {
	svc, db := newTestAdService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "seller", models.GroupUser)

	ad, err := svc.CreateAd(ctx, CreateAdInput{Title: "bike", Price: floatPtr(50), OwnerID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAd(ctx, ad.ID))

	_, err = svc.GetAd(ctx, ad.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)

	// Deleting an already-deleted ad reports NotFound, not a crash.
	err = svc.DeleteAd(ctx, ad.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
}
