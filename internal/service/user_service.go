package service

import (
	"context"

	"adboard/internal/auth"
	"adboard/internal/models"
	"adboard/internal/repository"
)

// UserService implements account lifecycle and login operations.
type UserService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// CreateUserInput carries the fields for a new account.
type CreateUserInput struct {
	Username string
	Password string
	Group    models.Group
}

// UpdateUserInput carries a partial patch; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Password *string
	Group    *models.Group
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// CreateUser hashes the password and persists a new account. The plaintext
// password is never stored.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, models.NewValidationError("Username and password are required")
	}
	group := in.Group
	if group == "" {
		group = models.GroupUser
	}
	if group != models.GroupUser && group != models.GroupAdmin {
		return nil, models.NewValidationError("Group must be 'user' or 'admin'")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:     in.Username,
		PasswordHash: hash,
		Group:        group,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues an access token bound to the
// user's id. An unknown username and a wrong password produce the identical
// error so usernames cannot be enumerated.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return "", models.NewUnauthorizedError("Incorrect username or password")
	}

	token, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies a partial patch to the target account on behalf of the
// authenticated caller. The caller must own the account or be an admin, and
// only admins may change an account's group. A new password is re-hashed
// before persisting.
func (s *UserService) UpdateUser(ctx context.Context, current *models.User, targetID uint, in UpdateUserInput) (*models.User, error) {
	if err := auth.CheckPermissions(current, auth.Permission{OwnerID: targetID}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		if *in.Username == "" {
			return nil, models.NewValidationError("Username must not be empty")
		}
		user.Username = *in.Username
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, models.NewValidationError("Password must not be empty")
		}
		hash, hashErr := auth.HashPassword(*in.Password)
		if hashErr != nil {
			return nil, models.NewInternalError(hashErr)
		}
		user.PasswordHash = hash
	}
	if in.Group != nil && *in.Group != user.Group {
		if permErr := auth.CheckPermissions(current, auth.Permission{Group: models.GroupAdmin}); permErr != nil {
			return nil, permErr
		}
		if *in.Group != models.GroupUser && *in.Group != models.GroupAdmin {
			return nil, models.NewValidationError("Group must be 'user' or 'admin'")
		}
		user.Group = *in.Group
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
