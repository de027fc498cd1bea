package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"docgen-server/internal/config"
	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

const minPasswordLength = 6

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

// authServiceImpl implements the AuthService interface.
type authServiceImpl struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cfg       *config.Config
	logger    *zap.Logger
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
		logger:    logger.Named("AuthService"),
	}
}

// Register creates a new user account.
func (s *authServiceImpl) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	log := s.logger.With(zap.String("email", email))

	if _, err := mail.ParseAddress(email); err != nil {
		log.Warn("Registration attempt with invalid email format", zap.Error(err))
		return nil, fmt.Errorf("invalid email format: %w", models.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		log.Warn("Registration attempt with too short password")
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, models.ErrInvalidInput)
	}
	if name == "" {
		log.Warn("Registration attempt with empty name")
		return nil, fmt.Errorf("name cannot be empty: %w", models.ErrInvalidInput)
	}

	hash, err := hashPassword(password, s.cfg.PasswordPepper)
	if err != nil {
		log.Error("Failed to hash password during registration", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: email, Name: name, PasswordHash: hash}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrEmailAlreadyExists) {
			log.Warn("Registration attempt with already registered email")
			return nil, models.ErrEmailAlreadyExists
		}
		log.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("User registered successfully", zap.String("userID", user.ID.String()))
	return user, nil
}

// Login authenticates a user and returns a signed access token.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	log := s.logger.With(zap.String("email", email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("Login failed: user not found")
			return "", nil, models.ErrInvalidCredentials
		}
		log.Error("Login failed: error getting user from repository", zap.Error(err))
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPasswordHash(password, user.PasswordHash, s.cfg.PasswordPepper) {
		log.Warn("Login failed: invalid password", zap.String("userID", user.ID.String()))
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.createAccessToken(user.ID)
	if err != nil {
		log.Error("Failed to create access token during login", zap.Error(err), zap.String("userID", user.ID.String()))
		return "", nil, fmt.Errorf("failed to create access token: %w", err)
	}

	log.Info("User logged in successfully", zap.String("userID", user.ID.String()))
	return token, user, nil
}

// Logout revokes the token identified by the given claims. The revocation
// entry lives only as long as the token itself would have.
func (s *authServiceImpl) Logout(ctx context.Context, claims *models.Claims) error {
	log := s.logger.With(zap.String("jti", claims.ID), zap.String("userID", claims.UserID.String()))

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		log.Debug("Logout with already expired token, nothing to revoke")
		return nil
	}

	if err := s.tokenRepo.Revoke(ctx, claims.ID, ttl); err != nil {
		log.Error("Failed to revoke token during logout", zap.Error(err))
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	log.Info("Token revoked successfully during logout")
	return nil
}

// VerifyAccessToken parses and validates an access token, rejecting revoked tokens.
func (s *authServiceImpl) VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Debug("Access token verification failed: token expired")
			return nil, models.ErrTokenExpired
		}
		s.logger.Warn("Access token verification failed", zap.Error(err))
		return nil, models.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		s.logger.Warn("Access token verification failed: invalid claims")
		return nil, models.ErrTokenInvalid
	}

	revoked, err := s.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Failed to check token revocation status", zap.Error(err), zap.String("jti", claims.ID))
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		s.logger.Warn("Access token verification failed: token revoked", zap.String("jti", claims.ID))
		return nil, models.ErrTokenRevoked
	}

	return claims, nil
}

// GetUser returns the user profile for the given user ID.
func (s *authServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrUserNotFound
		}
		s.logger.Error("Failed to get user by ID", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// createAccessToken issues a signed HS256 token with a unique jti claim.
func (s *authServiceImpl) createAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// applyPepper mixes the server-side pepper into the password before bcrypt.
func applyPepper(password, pepper string) []byte {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

func hashPassword(password, pepper string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(applyPepper(password, pepper), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash, pepper string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), applyPepper(password, pepper))
	return err == nil
}
