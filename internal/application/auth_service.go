package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
	repo "github.com/mithaighar/sweetshop/internal/domain/repository"
	"github.com/mithaighar/sweetshop/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")

// AuthService implements registration and password-based login.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register hashes the password and persists a new non-admin user. Duplicate
// username or email surfaces as the repository sentinel error without any
// state change.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.WithField("username", username).Info("user registered")
	return u, nil
}

// Login verifies the credentials and issues a bearer token for the username.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.Username)
	if err != nil {
		s.Logger.WithError(err).WithField("username", username).Error("token generation failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
