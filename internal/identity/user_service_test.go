package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
	"gojournal/internal/config"
	"gojournal/internal/dbmysql"
)

func newTestTokens() *common.JWTManager {
	return common.NewJWTManager(config.JWTConfig{Secret: "test-secret", ExpiryHours: 1, Issuer: "gojournal"})
}

func TestUserService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	tokens := newTestTokens()
	svc := NewUserService(mockUserRepo, tokens)
	ctx := context.Background()

	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		displayName string
		setup       func()
		wantCode    apperr.Code
		wantErr     bool
	}{
		{
			name:        "success",
			username:    "alice",
			email:       "Alice@Example.com",
			password:    "Password123",
			displayName: "Alice",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "alice", "alice@example.com").Return(false, nil)
				mockUserRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						assert.NotEqual(t, "Password123", u.PasswordHash)
						assert.True(t, u.IsActive)
						u.ID = 1
						return nil
					})
			},
		},
		{
			name:     "display name defaults to username",
			username: "carol",
			email:    "carol@example.com",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "carol", "carol@example.com").Return(false, nil)
				mockUserRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						assert.Equal(t, "carol", u.DisplayName)
						u.ID = 3
						return nil
					})
			},
		},
		{
			name:     "duplicate username",
			username: "bob",
			email:    "bob@example.com",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "bob", "bob@example.com").Return(true, nil)
			},
			wantErr:  true,
			wantCode: apperr.CodeAlreadyExists,
		},
		{
			name:     "invalid username",
			username: "!",
			email:    "x@y.com",
			password: "Password123",
			setup:    func() {},
			wantErr:  true,
			wantCode: apperr.CodeInvalidArgument,
		},
		{
			name:     "invalid email",
			username: "alicegood",
			email:    "bademail",
			password: "Password123",
			setup:    func() {},
			wantErr:  true,
			wantCode: apperr.CodeInvalidArgument,
		},
		{
			name:     "short password",
			username: "alicegood",
			email:    "good@example.com",
			password: "short",
			setup:    func() {},
			wantErr:  true,
			wantCode: apperr.CodeInvalidArgument,
		},
		{
			name:     "repository failure",
			username: "dave",
			email:    "dave@example.com",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "dave", "dave@example.com").Return(false, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: apperr.CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			user, token, err := svc.RegisterUser(ctx, tt.username, tt.email, tt.password, tt.displayName)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperr.CodeOf(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)

			claims, err := tokens.ValidToken(token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
		})
	}
}

func TestUserService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, newTestTokens())
	ctx := context.Background()

	hash, err := common.HashPassword("Password123")
	require.NoError(t, err)
	active := &dbmysql.User{ID: 1, Username: "alice", PasswordHash: hash, IsActive: true}
	disabled := &dbmysql.User{ID: 2, Username: "bob", PasswordHash: hash, IsActive: false}
	corrupt := &dbmysql.User{ID: 3, Username: "carol", PasswordHash: "plaintext?", IsActive: true}

	tests := []struct {
		name     string
		username string
		password string
		setup    func()
		wantCode apperr.Code
		wantErr  bool
	}{
		{
			name:     "success",
			username: "alice",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(active, nil)
				mockUserRepo.EXPECT().TouchLastLogin(ctx, uint64(1), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "nope-nope",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(active, nil)
			},
			wantErr:  true,
			wantCode: apperr.CodeUnauthenticated,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr:  true,
			wantCode: apperr.CodeUnauthenticated,
		},
		{
			name:     "disabled account",
			username: "bob",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(disabled, nil)
			},
			wantErr:  true,
			wantCode: apperr.CodePermissionDenied,
		},
		{
			name:     "unreadable stored hash",
			username: "carol",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "carol").Return(corrupt, nil)
			},
			wantErr:  true,
			wantCode: apperr.CodeUnknown,
		},
		{
			name:     "missing fields",
			username: "",
			password: "",
			setup:    func() {},
			wantErr:  true,
			wantCode: apperr.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			user, token, err := svc.LoginUser(ctx, tt.username, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperr.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			require.NotNil(t, user.LastLoginAt)
			assert.WithinDuration(t, time.Now(), *user.LastLoginAt, time.Minute)
		})
	}
}

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, newTestTokens())
	ctx := context.Background()

	mockUserRepo.EXPECT().GetUserByID(ctx, uint64(1)).Return(&dbmysql.User{ID: 1, Username: "alice"}, nil)
	mockUserRepo.EXPECT().GetUserByID(ctx, uint64(2)).Return(nil, gorm.ErrRecordNotFound)

	user, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetProfile(ctx, 2)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
