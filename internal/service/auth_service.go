package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/AppariLavanya/inventory-management-system/internal/cache"
	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/repository"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *cache.TokenCache
}

func NewAuthService(userRepo *repository.UserRepository, tokens *cache.TokenCache) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "user"
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	log.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("User registered")
	return user, nil
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	log.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("User logged in")
	return &LoginResponse{Token: token, User: user}, nil
}

// Logout revokes the presented token until its natural expiry. An already
// expired token is a no-op.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return utils.ErrInvalidToken
	}
	return s.tokens.Revoke(ctx, tokenID, time.Until(expiresAt))
}
