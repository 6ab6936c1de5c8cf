// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vintagecottage/storefront/internal/config"
	"github.com/vintagecottage/storefront/internal/models"
	"github.com/vintagecottage/storefront/internal/utils"
)

// AuthService handles admin login. There is no self-registration; admins
// are seeded or created by other admins.
type AuthService struct {
	db     *gorm.DB
	config *config.Config
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     *models.Admin `json:"admin"`
}

var ErrInvalidCredentials = errors.New("invalid username or password")

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	return &AuthService{db: db, config: cfg}
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var admin models.Admin
	if err := s.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := admin.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminJWT(admin.ID, admin.Username, s.config.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	s.db.Model(&admin).Update("last_login_at", &now)
	admin.LastLoginAt = &now

	return &LoginResponse{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(s.config.JWT.AccessTokenTTL) * time.Hour),
		Admin:     &admin,
	}, nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (s *AuthService) ChangePassword(username string, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return fmt.Errorf("admin not found: %w", err)
	}

	if err := admin.CheckPassword(req.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}

	if err := admin.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&admin).Update("password_hash", admin.PasswordHash).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
