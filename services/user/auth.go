package user

import (
	"context"
	"time"

	"stayhub/models"
	"stayhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// SignUp registers a new account and returns a signed session token.
func (s *DefaultUserService) SignUp(in models.SignUpInput) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	return s.issueToken(usr)
}

// SignIn authenticates an existing account and returns a signed session token.
func (s *DefaultUserService) SignIn(in models.LoginInput) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(usr)
}

// GetByID returns an account by id.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// issueToken signs a JWT for the user and caches its hash so the auth
// middleware can verify tokens without a database round-trip.
func (s *DefaultUserService) issueToken(usr *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), tokenDuration).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token hash",
			zap.String("userID", usr.ID), zap.Error(err))
	}

	return &models.AuthResponse{Token: token, User: usr}, nil
}
