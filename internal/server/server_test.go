package server

import (
	"context"
	"time"

	"adboard/internal/auth"
	"adboard/internal/config"
	"adboard/internal/models"
	"adboard/internal/repository"
	"adboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockAdRepository is a mock of the AdRepository interface
type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) GetByID(ctx context.Context, id uint) (*models.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdRepository) Create(ctx context.Context, ad *models.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) Update(ctx context.Context, ad *models.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) Delete(ctx context.Context, ad *models.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) Search(ctx context.Context, filter repository.AdFilter) ([]models.Ad, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

// newTestServer builds a Server over mock repositories, skipping DB/Redis.
func newTestServer(userRepo *MockUserRepository, adRepo *MockAdRepository) *Server {
	cfg := &config.Config{JWTSecret: "test_secret", TokenTTL: 60}
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Minute)
	return &Server{
		config:      cfg,
		tokens:      tokens,
		userRepo:    userRepo,
		adRepo:      adRepo,
		userService: service.NewUserService(userRepo, tokens),
		adService:   service.NewAdService(adRepo),
	}
}

// newTestApp registers the API routes without the middleware stack.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
