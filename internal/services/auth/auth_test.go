package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/lib/jwt"
	"github.com/magabrotheeeer/contract-billing/internal/lib/password"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestAuthService(repo UserRepository) *AuthService {
	return NewAuthService(repo, jwt.NewJWTMaker("test-secret", time.Hour))
}

func TestRegister(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "anaoperator" && u.Role == "user" &&
			u.PasswordHash != "" && u.PasswordHash != "supersecret"
	})).Return("uid-1", nil)

	svc := newTestAuthService(repo)
	uid, err := svc.Register(context.Background(), "ana@example.com", "anaoperator", "supersecret")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	repo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hash, err := password.GetHash("supersecret")
	require.NoError(t, err)

	cases := []struct {
		name       string
		username   string
		password   string
		setupMocks func(repo *UserRepoMock)
		wantErr    error
	}{
		{
			name:     "успешный вход возвращает токен и роль",
			username: "anaoperator",
			password: "supersecret",
			setupMocks: func(repo *UserRepoMock) {
				repo.On("GetUserByUsername", mock.Anything, "anaoperator").Return(&models.User{
					UID: "uid-1", Username: "anaoperator", PasswordHash: hash, Role: "user",
				}, nil)
			},
		},
		{
			name:     "неверный пароль отклоняется",
			username: "anaoperator",
			password: "wrongpassword",
			setupMocks: func(repo *UserRepoMock) {
				repo.On("GetUserByUsername", mock.Anything, "anaoperator").Return(&models.User{
					UID: "uid-1", Username: "anaoperator", PasswordHash: hash, Role: "user",
				}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "несуществующий пользователь",
			username: "ghost",
			password: "supersecret",
			setupMocks: func(repo *UserRepoMock) {
				repo.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, apperrs.NotFound("user", 0))
			},
			wantErr: apperrs.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tc.setupMocks(repo)

			svc := newTestAuthService(repo)
			token, role, err := svc.Login(context.Background(), tc.username, tc.password)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, "user", role)
		})
	}
}

func TestValidateToken(t *testing.T) {
	hash, err := password.GetHash("supersecret")
	require.NoError(t, err)

	repo := new(UserRepoMock)
	repo.On("GetUserByUsername", mock.Anything, "anaoperator").Return(&models.User{
		UID: "uid-1", Username: "anaoperator", PasswordHash: hash, Role: "user",
	}, nil)

	svc := newTestAuthService(repo)
	token, _, err := svc.Login(context.Background(), "anaoperator", "supersecret")
	require.NoError(t, err)

	user, role, valid, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, "anaoperator", user.Username)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "user", role)

	_, _, valid, err = svc.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
	assert.False(t, valid)
}
