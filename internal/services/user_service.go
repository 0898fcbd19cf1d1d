package services

import (
	"context"
	"errors"
	"time"

	"teamfolio/internal/models"
	"teamfolio/internal/repositories"
	"teamfolio/internal/utils"
)

type UserService struct {
	userRepo  *repositories.UserRepository
	redisRepo *repositories.RedisRepository
}

func NewUserService(userRepo *repositories.UserRepository, redisRepo *repositories.RedisRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserService) Register(user *models.User) (string, string, error) {
	existing, _ := s.userRepo.FindByEmail(user.Email)
	if existing != nil {
		return "", "", errors.New("user already exists")
	}

	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return "", "", err
	}
	user.PasswordHash = hashedPassword
	user.Password = ""

	// Policy: first user becomes admin
	userCount, err := s.userRepo.Count()
	if err != nil {
		return "", "", err
	}
	if userCount == 0 {
		user.Role = "admin"
	} else if user.Role == "" {
		user.Role = "user"
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", "", err
	}

	accessToken, err := utils.GenerateJWT(user.ID, 15*time.Minute, utils.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateJWT(user.ID, 30*24*time.Hour, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *UserService) Login(email, password string) (string, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil || user == nil {
		return "", "", errors.New("user not found")
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", "", errors.New("invalid password")
	}

	accessToken, err := utils.GenerateJWT(user.ID, 15*time.Minute, utils.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateJWT(user.ID, 30*24*time.Hour, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Logout blacklists the refresh token's jti for its remaining lifetime.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return errors.New("invalid refresh token")
	}
	return s.redisRepo.Blacklist(ctx, claims.ID)
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}

	blacklisted, err := s.redisRepo.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return "", err
	}
	if blacklisted {
		return "", errors.New("refresh token revoked")
	}

	accessToken, err := utils.GenerateJWT(claims.UserID, 15*time.Minute, utils.AccessTokenSecret)
	if err != nil {
		return "", errors.New("could not generate new access token")
	}

	return accessToken, nil
}
