// Package services holds the API server's business logic: authentication of
// the admin accounts and the project catalogue. Handlers call services;
// services reach storage only through the repository manager.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/server/auth"
	"github.com/dmitrijs2005/showcase/internal/server/config"
	"github.com/dmitrijs2005/showcase/internal/server/models"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/repomanager"
)

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login checks the credentials and issues a bearer token. Unknown users and
// wrong passwords both return common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error searching user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, "", fmt.Errorf("error checking password: %w", err)
	}
	if !ok {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// Authenticate validates a bearer token.
func (s *UserService) Authenticate(token string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	return claims, nil
}

// EnsureUser creates username with password unless it already exists. It
// reports whether an account was created.
func (s *UserService) EnsureUser(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, common.Invalid("username and password are required")
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return false, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("error hashing password: %w", err)
	}

	if _, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: hash}); err != nil {
		return false, fmt.Errorf("error creating user: %w", err)
	}
	return true, nil
}
