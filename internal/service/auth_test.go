package service

import (
	"context"
	"database/sql"
	"testing"

	"retreivo-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "ana@example.com").Return(&domain.User{
			ID: 7, Email: "ana@example.com", PasswordHash: string(hash), Role: domain.UserRoleCitizen,
		}, nil)
		tokens.On("GenerateAccessToken", int32(7), "ana@example.com", "citizen").Return("signed-token", nil)

		user, token, err := svc.Login(ctx, "ana@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager))

		userRepo.On("GetByEmail", ctx, "ana@example.com").Return(&domain.User{
			ID: 7, Email: "ana@example.com", PasswordHash: string(hash),
		}, nil)

		_, _, err := svc.Login(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager))

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockTokenManager))

		_, _, err := svc.Login(ctx, "", "")
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager))

		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Name: "Ana"}, nil)

		user, err := svc.GetProfile(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager))

		userRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		_, err := svc.GetProfile(ctx, 99)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}
