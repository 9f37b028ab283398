package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
	"gojournal/internal/dbmysql"
)

//go:generate mockgen -source=user_service.go -destination=mock_user_service_test.go -package=identity

type UserService interface {
	RegisterUser(ctx context.Context, username, email, password, displayName string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
}

type userService struct {
	userRepo UserRepository
	tokens   *common.JWTManager
	now      func() time.Time
}

func NewUserService(userRepo UserRepository, tokens *common.JWTManager) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var errBadCredentials = apperr.Unauthorized("invalid username or password")

func (s *userService) RegisterUser(ctx context.Context, username, email, password, displayName string) (*dbmysql.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.TrimSpace(displayName)

	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}
	if displayName == "" {
		displayName = username
	}
	if err := common.ValidateDisplayName(displayName); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username, email)
	if err != nil {
		return nil, "", fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, "", apperr.AlreadyExists("username or email already registered")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &dbmysql.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		DisplayName:  displayName,
		IsActive:     true,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", apperr.InvalidArg("username and password required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", errBadCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrPasswordMismatch) {
			return nil, "", errBadCredentials
		}
		return nil, "", fmt.Errorf("user %d: %w", user.ID, err)
	}
	if !user.IsActive {
		return nil, "", apperr.Forbidden("account is disabled")
	}

	now := s.now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", fmt.Errorf("update last login: %w", err)
	}
	user.LastLoginAt = &now

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
