// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/curioshop/curios-backend/internal/config"
	"github.com/curioshop/curios-backend/internal/models"
	"github.com/curioshop/curios-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is the login/refresh response body.
type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

// Register creates an ordinary user account. Merchant accounts go through
// RegisterMerchant; the two differ only in the merchant flag.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	return s.register(req, false)
}

func (s *AuthService) RegisterMerchant(req *RegisterRequest) (*models.User, error) {
	return s.register(req, true)
}

func (s *AuthService) register(req *RegisterRequest, isMerchant bool) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, newValidationError(err)
	}

	// Check if user already exists
	var existingUser models.User
	if err := s.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existingUser).Error; err == nil {
		if existingUser.Email == req.Email {
			return nil, fmt.Errorf("%w: user with this email already exists", ErrConflict)
		}
		return nil, fmt.Errorf("%w: username already taken", ErrConflict)
	}

	user := &models.User{
		Username:   req.Username,
		Email:      req.Email,
		IsMerchant: isMerchant,
		IsActive:   true,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		// Concurrent registration can slip past the existence check; the
		// unique index is authoritative.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user with this email or username already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a refresh/access token pair.
func (s *AuthService) Login(req *LoginRequest) (*TokenPair, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, newValidationError(err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unable to log in with provided credentials", ErrAuthenticationFailed)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is deactivated", ErrAuthenticationFailed)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: unable to log in with provided credentials", ErrAuthenticationFailed)
	}

	// Update last login time; a failure here should not block the login
	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Save(&user).Error; err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to update last login time")
	}

	return s.issueTokenPair(&user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: token is invalid or expired", ErrAuthenticationFailed)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrAuthenticationFailed)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is deactivated", ErrAuthenticationFailed)
	}

	return s.issueTokenPair(&user)
}

func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) issueTokenPair(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(
		user.ID,
		user.Username,
		user.IsStaff,
		user.IsMerchant,
		s.cfg.JWT.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		Refresh: refresh,
		Access:  access,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
