package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/syntriq/cart-service/internal/domain/model"
	"github.com/syntriq/cart-service/internal/mocks"
)

func newTestTokenService(tokenRepo *mocks.MockTokenRepositoryInterface) TokenService {
	return NewTokenService(tokenRepo, TokenConfig{
		SecretKey:        "test-secret",
		RefreshSecretKey: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	})
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "user@example.com",
		Username: "user",
		Password: string(hash),
		Name:     "Test User",
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login returns tokens and user", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		user := activeUser(t, "password123")

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
		tokenRepo.On("DeleteByUserID", ctx, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", ctx, mock.AnythingOfType("*model.Token")).Return(nil)

		svc := NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		pair, got, err := svc.Login(ctx, user.Email, "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		user := activeUser(t, "password123")

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

		svc := NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		_, _, err := svc.Login(ctx, user.Email, "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		tokenRepo := new(mocks.MockTokenRepositoryInterface)

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		svc := NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		_, _, err := svc.Login(ctx, "ghost@example.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		user := activeUser(t, "password123")
		user.Active = false

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

		svc := NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		_, _, err := svc.Login(ctx, user.Email, "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		existing := activeUser(t, "password123")

		userRepo.On("FindByEmail", ctx, existing.Email).Return(existing, nil)

		svc := NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		_, _, err := svc.Register(ctx, existing.Email, "newuser", "password123", "New User")

		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("new user gets a token pair", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		tokenRepo := new(mocks.MockTokenRepositoryInterface)

		userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", ctx, "newuser").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = primitive.NewObjectID()
		}).Return(nil)
		tokenRepo.On("Create", ctx, mock.AnythingOfType("*model.Token")).Return(nil)

		svc := NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		pair, user, err := svc.Register(ctx, "new@example.com", "newuser", "password123", "New User")

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.True(t, user.Active)
		assert.NotEqual(t, "password123", user.Password, "password must be hashed")
	})
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		tokenRepo.On("Create", ctx, mock.AnythingOfType("*model.Token")).Return(nil)
		tokenRepo.On("IsBlacklisted", ctx, mock.AnythingOfType("string")).Return(false, nil)

		svc := newTestTokenService(tokenRepo)
		user := activeUser(t, "password123")

		pair, err := svc.GenerateTokenPair(ctx, user)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("blacklisted token", func(t *testing.T) {
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		tokenRepo.On("IsBlacklisted", ctx, "some-token").Return(true, nil)

		svc := newTestTokenService(tokenRepo)
		_, err := svc.ValidateAccessToken(ctx, "some-token")

		assert.ErrorIs(t, err, ErrTokenBlacklisted)
	})

	t.Run("garbage token", func(t *testing.T) {
		tokenRepo := new(mocks.MockTokenRepositoryInterface)
		tokenRepo.On("IsBlacklisted", ctx, "not-a-jwt").Return(false, nil)

		svc := newTestTokenService(tokenRepo)
		_, err := svc.ValidateAccessToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
