package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/server/config"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	cfg := &config.Config{SecretKey: "test-secret", TokenValidityDuration: time.Hour}
	return NewUserService(nil, repomanager.NewMemoryRepositoryManager(), cfg)
}

func TestUserService_EnsureUserThenLogin(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t)

	created, err := s.EnsureUser(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureUser(ctx, "admin", "other")
	require.NoError(t, err)
	assert.False(t, created, "existing account must be kept")

	user, token, err := s.Login(ctx, " admin ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEmpty(t, token)

	claims, err := s.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestUserService_LoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t)
	_, err := s.EnsureUser(ctx, "admin", "admin123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "admin123"},
		{"wrong password", "admin", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, token, err := s.Login(ctx, tt.username, tt.password)
			require.ErrorIs(t, err, common.ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestUserService_EnsureUserRequiresCredentials(t *testing.T) {
	s := newUserService(t)
	_, err := s.EnsureUser(context.Background(), " ", "x")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUserService_AuthenticateRejectsForeignToken(t *testing.T) {
	s := newUserService(t)
	other := NewUserService(nil, repomanager.NewMemoryRepositoryManager(),
		&config.Config{SecretKey: "another", TokenValidityDuration: time.Hour})

	ctx := context.Background()
	_, err := other.EnsureUser(ctx, "admin", "pw")
	require.NoError(t, err)
	_, token, err := other.Login(ctx, "admin", "pw")
	require.NoError(t, err)

	_, err = s.Authenticate(token)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	_, err = s.Authenticate("garbage")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}
