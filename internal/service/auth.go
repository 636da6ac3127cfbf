package service

import (
	"context"
	"database/sql"
	"errors"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/logger"
	"retreivo-backend/internal/repository"
	"retreivo-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", &domain.ValidationError{Field: "email/password", Reason: "are required"}
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", &domain.OperationFailedError{Op: "login", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("failed login attempt", "email", email)
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", &domain.OperationFailedError{Op: "login", Err: err}
	}
	return user, token, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "user", ID: userID}
	}
	if err != nil {
		return nil, &domain.OperationFailedError{Op: "get profile", Err: err}
	}
	return user, nil
}
