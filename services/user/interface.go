package user

import (
	userRepo "stayhub/database/repository/user"
	"stayhub/models"
)

// UserService manages account registration and authentication.
type UserService interface {
	SignUp(in models.SignUpInput) (*models.AuthResponse, error)
	SignIn(in models.LoginInput) (*models.AuthResponse, error)
	GetByID(id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
