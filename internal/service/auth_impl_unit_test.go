package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docgen-server/internal/config"
	"docgen-server/internal/models"
	"docgen-server/internal/repository/mocks"
)

func TestHashAndCheckPassword(t *testing.T) {
	password := "mysecretpassword"
	pepper := "test-pepper"

	hashed, err := hashPassword(password, pepper)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, password, hashed)

	assert.True(t, checkPasswordHash(password, hashed, pepper))
	assert.False(t, checkPasswordHash("wrongpassword", hashed, pepper))
	assert.False(t, checkPasswordHash(password, hashed, "another-pepper"))
	assert.False(t, checkPasswordHash(password, "not-a-bcrypt-hash", pepper))
}

func testClaims(userID uuid.UUID, jti string, expiresAt time.Time) *models.Claims {
	return &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "unit-test-secret",
		PasswordPepper: "unit-test-pepper",
		AccessTokenTTL: time.Hour,
	}
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tokenRepo := new(mocks.TokenRepository)
	tokenRepo.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(false, nil)

	svc := NewAuthService(new(mocks.UserRepository), tokenRepo, testAuthConfig(), zap.NewNop()).(*authServiceImpl)

	token, err := svc.createAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyAccessTokenRejectsRevoked(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tokenRepo := new(mocks.TokenRepository)
	tokenRepo.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(true, nil)

	svc := NewAuthService(new(mocks.UserRepository), tokenRepo, testAuthConfig(), zap.NewNop()).(*authServiceImpl)

	token, err := svc.createAccessToken(userID)
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, models.ErrTokenRevoked)
}

func TestVerifyAccessTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(new(mocks.UserRepository), new(mocks.TokenRepository), testAuthConfig(), zap.NewNop())

	claims, err := svc.VerifyAccessToken(context.Background(), "not.a.jwt")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email and name, stores a peppered hash", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "user@example.com" &&
				u.Name == "Ada Lovelace" &&
				u.PasswordHash != "" &&
				u.PasswordHash != "secret123"
		})).Return(nil).Once()

		svc := NewAuthService(userRepo, new(mocks.TokenRepository), testAuthConfig(), zap.NewNop())
		user, err := svc.Register(ctx, "  User@Example.COM ", "secret123", "  Ada Lovelace ")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, "Ada Lovelace", user.Name)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		svc := NewAuthService(new(mocks.UserRepository), new(mocks.TokenRepository), testAuthConfig(), zap.NewNop())
		user, err := svc.Register(ctx, "not-an-email", "secret123", "Ada")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := NewAuthService(new(mocks.UserRepository), new(mocks.TokenRepository), testAuthConfig(), zap.NewNop())
		user, err := svc.Register(ctx, "user@example.com", "abc", "Ada")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc := NewAuthService(new(mocks.UserRepository), new(mocks.TokenRepository), testAuthConfig(), zap.NewNop())
		user, err := svc.Register(ctx, "user@example.com", "secret123", "   ")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("CreateUser", ctx, mock.Anything).Return(models.ErrEmailAlreadyExists).Once()

		svc := NewAuthService(userRepo, new(mocks.TokenRepository), testAuthConfig(), zap.NewNop())
		user, err := svc.Register(ctx, "user@example.com", "secret123", "Ada")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrEmailAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	cfg := testAuthConfig()

	t.Run("valid credentials return a token", func(t *testing.T) {
		hash, err := hashPassword("secret123", cfg.PasswordPepper)
		require.NoError(t, err)
		stored := &models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: hash}

		userRepo := new(mocks.UserRepository)
		userRepo.On("GetUserByEmail", ctx, "user@example.com").Return(stored, nil).Once()

		svc := NewAuthService(userRepo, new(mocks.TokenRepository), cfg, zap.NewNop())
		token, user, err := svc.Login(ctx, "User@Example.com", "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		hash, err := hashPassword("secret123", cfg.PasswordPepper)
		require.NoError(t, err)
		stored := &models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: hash}

		userRepo := new(mocks.UserRepository)
		userRepo.On("GetUserByEmail", ctx, "user@example.com").Return(stored, nil).Once()

		svc := NewAuthService(userRepo, new(mocks.TokenRepository), cfg, zap.NewNop())
		token, user, err := svc.Login(ctx, "user@example.com", "wrong")

		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown email is invalid credentials, not a 404", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetUserByEmail", ctx, "ghost@example.com").Return(nil, models.ErrUserNotFound).Once()

		svc := NewAuthService(userRepo, new(mocks.TokenRepository), cfg, zap.NewNop())
		token, user, err := svc.Login(ctx, "ghost@example.com", "whatever")

		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the token for its remaining lifetime", func(t *testing.T) {
		tokenRepo := new(mocks.TokenRepository)
		tokenRepo.On("Revoke", ctx, "some-jti", mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 50*time.Minute && ttl <= time.Hour
		})).Return(nil).Once()

		svc := NewAuthService(new(mocks.UserRepository), tokenRepo, testAuthConfig(), zap.NewNop()).(*authServiceImpl)
		claims := testClaims(uuid.New(), "some-jti", time.Now().Add(time.Hour))

		assert.NoError(t, svc.Logout(ctx, claims))
		tokenRepo.AssertExpectations(t)
	})

	t.Run("expired token needs no revocation", func(t *testing.T) {
		tokenRepo := new(mocks.TokenRepository)

		svc := NewAuthService(new(mocks.UserRepository), tokenRepo, testAuthConfig(), zap.NewNop()).(*authServiceImpl)
		claims := testClaims(uuid.New(), "some-jti", time.Now().Add(-time.Minute))

		assert.NoError(t, svc.Logout(ctx, claims))
		tokenRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
	})
}
